// Package extract reads one column of codes out of a delimited text file.
package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"codegen/internal/file"
	"codegen/internal/log"
)

var (
	ErrColumnNotFound = errors.New("column not found in header")
	ErrHeaderRequired = errors.New("selecting a column by name requires a header row")
	ErrInvalidColumn  = errors.New("column index must not be negative")
	ErrInvalidDelim   = errors.New("delimiter must be a single character")
)

// Options controls column selection and normalization
type Options struct {
	Column    Column
	HasHeader bool
	Delimiter rune
	Encoding  string
	TrimSpace bool
	ToLower   bool
	ToUpper   bool
}

// DefaultOptions matches the check command defaults: column "code", header row, comma, UTF-8, trimmed.
func DefaultOptions() Options {
	return Options{
		Column:    ByName("code"),
		HasHeader: true,
		Delimiter: ',',
		Encoding:  "utf-8",
		TrimSpace: true,
	}
}

// ParseDelimiter accepts a single character, or "\t" / "tab" for tab-separated input.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab", "TAB":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelim, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '\n' || r == '\r' || r == '"' || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelim, s)
	}
	return r, nil
}

// Load opens path through fs and extracts codes from it
func Load(fs file.Service, path string, opts Options) ([]string, error) {
	r, err := fs.OpenReader(path, opts.Encoding)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	l := log.L()
	l.Debug().Str(log.FieldFile, r.Name()).Str(log.FieldEncoding, opts.Encoding).Msg("Decoding file")

	codes, err := Read(r, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return codes, nil
}

// Read parses delimited records from r and returns the normalized, non-empty
// values of the selected column. Rows too short to contain the column are skipped.
func Read(r io.Reader, opts Options) ([]string, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	codes := make([]string, 0, len(rows))
	if len(rows) == 0 {
		return codes, nil
	}

	var header []string
	if opts.HasHeader {
		header, rows = rows[0], rows[1:]
	}

	idx, err := opts.Column.resolve(header, opts.HasHeader)
	if err != nil {
		return nil, err
	}

	skipped := 0
	for _, row := range rows {
		if idx >= len(row) {
			skipped++
			continue
		}
		if code := normalize(row[idx], opts); code != "" {
			codes = append(codes, code)
		}
	}
	if skipped > 0 {
		l := log.L()
		l.Warn().Int(log.FieldSkipped, skipped).Stringer(log.FieldColumn, opts.Column).Msg("Skipped rows without column")
	}

	return codes, nil
}

func normalize(code string, opts Options) string {
	if opts.TrimSpace {
		code = strings.TrimSpace(code)
	}
	if opts.ToLower {
		code = strings.ToLower(code)
	}
	if opts.ToUpper {
		code = strings.ToUpper(code)
	}
	return code
}
