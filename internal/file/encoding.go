package file

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknownEncoding = errors.New("unknown text encoding")

// LookupEncoding resolves an encoding by its WHATWG name or alias ("utf-8", "shift_jis", "cp1252", ...).
// "utf-8-sig" reads and writes UTF-8 with a byte order mark.
func LookupEncoding(name string) (encoding.Encoding, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", "utf8", "utf-8":
		return unicode.UTF8, nil
	case "utf-8-sig", "utf8-sig":
		return unicode.UTF8BOM, nil
	}

	enc, err := htmlindex.Get(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}
