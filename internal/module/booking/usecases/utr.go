package usecases

// ValidUTR reports whether s is a plausible bank transaction reference:
// twelve or more decimal digits and nothing else. This is a syntactic
// check only, it says nothing about the transfer having happened.
func ValidUTR(s string) bool {
	if len(s) < 12 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
