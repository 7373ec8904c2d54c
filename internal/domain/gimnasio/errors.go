package gimnasio

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: el id no corresponde a ningún gimnasio.
	ErrNotFound = errors.New("gimnasio_not_found")

	// ErrEmailTaken: violación del índice único de email. El repositorio
	// traduce el error de constraint del motor a este sentinel, así el
	// chequeo previo de unicidad deja de ser la única defensa.
	ErrEmailTaken = errors.New("email_taken")

	// ErrForbidden: la sesión no corresponde al gimnasio objetivo.
	ErrForbidden = errors.New("forbidden")
)

// ClientesExistError bloquea el borrado de un gimnasio con clientes.
type ClientesExistError struct {
	Total int64
}

func (e ClientesExistError) Error() string {
	return fmt.Sprintf(
		"No se puede eliminar. El gimnasio tiene %d cliente(s) registrado(s)",
		e.Total,
	)
}
