package validators

import "strings"

// IsPhone accepts an optional leading + followed by 7 to 15 digits. Spaces
// and dashes are ignored.
func IsPhone(phone string) bool {
	p := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	p = strings.TrimPrefix(p, "+")
	if len(p) < 7 || len(p) > 15 {
		return false
	}
	return isDigits(p)
}

// IsZipCode accepts 3 to 10 letters, digits, spaces or dashes.
func IsZipCode(zip string) bool {
	z := strings.TrimSpace(zip)
	if len(z) < 3 || len(z) > 10 {
		return false
	}
	for _, r := range z {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == ' ', r == '-':
		default:
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
