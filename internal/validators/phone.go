package validators

import "unicode"

// IsClientPhoneValid exige pelo menos 10 dígitos (DDD + número),
// ignorando separadores comuns.
func IsClientPhoneValid(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+':
			// separador aceito
		default:
			return false
		}
	}
	return digits >= 10
}
