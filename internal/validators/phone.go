package validators

// IsValidPhone aceita exatamente 10 dígitos numéricos (chave de identidade
// do cliente).
func IsValidPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
