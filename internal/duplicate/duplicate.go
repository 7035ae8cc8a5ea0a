// Package duplicate finds codes that occur more than once in a sequence.
package duplicate

import (
	"cmp"
	"slices"
)

// Record is a code seen more than once, with its occurrence count
type Record struct {
	Code  string `json:"code" yaml:"code"`
	Count int    `json:"count" yaml:"count"`
}

// FindDuplicates counts occurrences of each code and returns those seen more than once,
// ordered by descending count and then by code. Codes are compared as given.
func FindDuplicates(codes []string) []Record {
	counts := make(map[string]int, len(codes))
	for _, code := range codes {
		counts[code]++
	}

	records := make([]Record, 0)
	for code, n := range counts {
		if n > 1 {
			records = append(records, Record{Code: code, Count: n})
		}
	}

	slices.SortFunc(records, func(a, b Record) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return records
}

// Total returns the number of surplus occurrences across records,
// i.e. how many rows would have to go for every code to be unique.
func Total(records []Record) int {
	total := 0
	for _, r := range records {
		total += r.Count - 1
	}
	return total
}
