package state

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	ContactIDPrefix = ""
	CreatorIDPrefix = "c"
)

// NextID returns prefix + (largest numeric id + 1). Ids whose remainder after
// the prefix has no leading digits contribute nothing, and neither do values
// with no successor in int; an empty or fully non-numeric collection yields
// prefix + "1".
func NextID(prefix string, ids []string) string {
	highest := 0
	for _, id := range ids {
		n, ok := parseLeadingInt(strings.TrimPrefix(id, prefix))
		if ok && n > highest && n < math.MaxInt {
			highest = n
		}
	}
	return prefix + strconv.Itoa(highest+1)
}

// parseLeadingInt reads an optionally signed run of decimal digits after any
// leading whitespace, ignoring whatever follows ("12abc" -> 12).
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
