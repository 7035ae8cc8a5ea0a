package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// Column selects a field either by header name or by zero-based index
type Column struct {
	name   string
	index  int
	byName bool
}

// ByName selects the column whose header cell equals name. Requires a header row.
func ByName(name string) Column {
	return Column{name: name, byName: true}
}

// ByIndex selects the column at zero-based position i
func ByIndex(i int) Column {
	return Column{index: i}
}

// ParseColumn interprets a non-negative integer as an index and anything else as a header name
func ParseColumn(s string) Column {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil && i >= 0 {
		return ByIndex(i)
	}
	return ByName(s)
}

func (c Column) String() string {
	if c.byName {
		return fmt.Sprintf("%q", c.name)
	}
	return fmt.Sprintf("#%d", c.index)
}

// resolve turns the column into a concrete index, using header when selecting by name
func (c Column) resolve(header []string, hasHeader bool) (int, error) {
	if !c.byName {
		if c.index < 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, c.index)
		}
		return c.index, nil
	}
	if !hasHeader {
		return 0, fmt.Errorf("%w: column %s", ErrHeaderRequired, c)
	}
	for i, cell := range header {
		if strings.TrimSpace(cell) == c.name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s not in header %v", ErrColumnNotFound, c, header)
}
