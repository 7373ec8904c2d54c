package validators

import "strings"

// IsEmailFormatValid hace una verificación estructural simple: algo@dominio
// con al menos un punto en el dominio. Sin lookup de red.
func IsEmailFormatValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	return strings.Contains(domain, ".")
}
