package validators

import "strings"

// IsPhoneFormatValid acepta dígitos con separadores comunes y un + inicial,
// con al menos 7 dígitos.
func IsPhoneFormatValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+':
			if i != 0 {
				return false
			}
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separadores permitidos
		default:
			return false
		}
	}

	return digits >= 7
}
