package app

import (
	"encoding/json"
	"fmt"
	"io"

	"codegen/internal/config"

	"gopkg.in/yaml.v3"
)

// WriteReport renders result in the requested format
func WriteReport(w io.Writer, result *CheckResult, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode JSON report: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode YAML report: %w", err)
		}
		return enc.Close()
	case config.FormatText, "":
		return writeText(w, result)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

func writeText(w io.Writer, result *CheckResult) error {
	if !result.HasDuplicates() {
		_, err := fmt.Fprintf(w, "No duplicates (%d codes checked)\n", result.Codes)
		return err
	}

	if _, err := fmt.Fprintf(w, "Duplicates found: %d kinds\n", len(result.Duplicates)); err != nil {
		return err
	}
	for _, r := range result.Duplicates {
		if _, err := fmt.Fprintf(w, "- %s (count=%d)\n", r.Code, r.Count); err != nil {
			return err
		}
	}
	return nil
}
