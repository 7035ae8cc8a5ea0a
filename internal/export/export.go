// Package export writes generated codes to CSV files or the terminal.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"codegen/internal/file"
)

// Options controls the CSV layout
type Options struct {
	WithIndex bool   // prepend a 1-based index column
	Header    bool   // write "index,code" or "code" as the first row
	Encoding  string // output encoding, see file.LookupEncoding
}

// ProgressReporter receives row-level progress while codes are written
type ProgressReporter interface {
	Start(description string, total int)
	Increment()
	Complete()
}

// WriteCSV writes codes as CSV rows to w
func WriteCSV(w io.Writer, codes []string, opts Options, progress ProgressReporter) error {
	writer := csv.NewWriter(w)

	if opts.Header {
		header := []string{"code"}
		if opts.WithIndex {
			header = []string{"index", "code"}
		}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	if progress != nil {
		progress.Start("Writing codes", len(codes))
		defer progress.Complete()
	}

	for i, code := range codes {
		record := []string{code}
		if opts.WithIndex {
			record = []string{strconv.Itoa(i + 1), code}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
		if progress != nil {
			progress.Increment()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// Print writes one code per line, as "i, code" when withIndex is set
func Print(w io.Writer, codes []string, withIndex bool) error {
	for i, code := range codes {
		var err error
		if withIndex {
			_, err = fmt.Fprintf(w, "%d, %s\n", i+1, code)
		} else {
			_, err = fmt.Fprintln(w, code)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Service saves code batches to files through a file.Service
type Service struct {
	files    file.Service
	progress ProgressReporter
}

// NewService creates an export service. progress may be nil.
func NewService(files file.Service, progress ProgressReporter) *Service {
	return &Service{
		files:    files,
		progress: progress,
	}
}

// Save writes codes to path as CSV, creating parent directories as needed
func (s *Service) Save(path string, codes []string, opts Options) (err error) {
	w, err := s.files.CreateWriter(path, opts.Encoding)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return WriteCSV(w, codes, opts, s.progress)
}
