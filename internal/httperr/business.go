package httperr

import "errors"

// BusinessError es una violación de regla de negocio con mensaje para el usuario.
type BusinessError struct {
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(message string) error {
	return BusinessError{Message: message}
}

func IsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}
