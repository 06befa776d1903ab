package solver

import (
	"fmt"
	"strconv"
)

// FallbackSpeech is the sentence spoken when a query has no math result and
// no search results either.
func FallbackSpeech(query string) string {
	return fmt.Sprintf(`I couldn't find results for "%s". I currently support math calculations and limited on-device search. Try a math problem like 50 * 50, or search for users.`, query)
}

// ordinal renders 1 as "1st", 2 as "2nd", 11 as "11th" and so on.
func ordinal(n int64) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.FormatInt(n, 10) + suffix
}
