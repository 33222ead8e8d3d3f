package utils

// TruncateMiddle shortens s to at most maxLen runes by keeping its head and
// tail around an ellipsis. Public keys stay recognisable at both ends.
func TruncateMiddle(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}

	keep := maxLen - 1
	head := (keep + 1) / 2
	tail := keep - head

	return string(runes[:head]) + "…" + string(runes[len(runes)-tail:])
}
