package generator

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	hexLowerChars  = "0123456789abcdef"
	hexUpperChars  = "0123456789ABCDEF"
)

// buildAlphabet assembles the character set selected by opts.
// Hex mode takes precedence over the individual class flags.
func buildAlphabet(opts Options) string {
	if opts.Hex {
		if opts.HexUppercase {
			return hexUpperChars
		}
		return hexLowerChars
	}

	var b strings.Builder
	if opts.Lowercase {
		b.WriteString(lowercaseChars)
	}
	if opts.Uppercase {
		b.WriteString(uppercaseChars)
	}
	if opts.Digits {
		b.WriteString(digitChars)
	}
	return b.String()
}
