package roster

import "strings"

// phoneDigits is the length of a full Brazilian mobile number with area
// code; input beyond it is truncated.
const phoneDigits = 11

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone strips non-digits and re-applies the "(XX) XXXXX-XXXX"
// display mask progressively, so it works for partial input while the
// user is still typing.
func FormatPhone(raw string) string {
	d := onlyDigits(raw)
	if len(d) > phoneDigits {
		d = d[:phoneDigits]
	}

	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// LastFourDigits returns the final four digits of a phone in any
// formatting, or fewer if the input has fewer than four digits.
func LastFourDigits(s string) string {
	d := onlyDigits(s)
	if len(d) <= 4 {
		return d
	}
	return d[len(d)-4:]
}
