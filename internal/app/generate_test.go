package app_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"codegen/internal/app"
	"codegen/internal/config"
	"codegen/internal/export"
	"codegen/internal/file"
	"codegen/internal/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerateApp(prompter *scriptedPrompter, out *bytes.Buffer) *app.GenerateApp {
	exporter := export.NewService(file.NewService(), nil)
	return app.NewGenerateApp(config.NewDefaultConfig(), prompter, exporter, out)
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerateApp_Terminal(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptedPrompter{}
	seed := uint64(9)

	err := newGenerateApp(prompter, &out).Run(context.Background(), &app.GenerateOptions{
		Generator: generator.Options{Length: 5, Digits: true, Seed: &seed},
		Count:     20,
		Output:    config.OutputTerminal,
	})
	require.NoError(t, err)

	got := lines(out.String())
	require.Len(t, got, 20)
	for _, code := range got {
		assert.Regexp(t, `^[0-9]{5}$`, code)
	}
	assert.Empty(t, prompter.messages)
}

func TestGenerateApp_TerminalWithIndex(t *testing.T) {
	var out bytes.Buffer

	err := newGenerateApp(&scriptedPrompter{}, &out).Run(context.Background(), &app.GenerateOptions{
		Generator: generator.Options{Length: 3, Hex: true},
		Count:     3,
		Output:    config.OutputTerminal,
		Export:    export.Options{WithIndex: true},
	})
	require.NoError(t, err)

	got := lines(out.String())
	require.Len(t, got, 3)
	for i, line := range got {
		assert.Regexp(t, regexp.MustCompile(`^`+string(rune('1'+i))+`, [0-9a-f]{3}$`), line)
	}
}

func TestGenerateApp_DefaultsToLowercase(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptedPrompter{}

	err := newGenerateApp(prompter, &out).Run(context.Background(), &app.GenerateOptions{
		Generator: generator.Options{Length: 4},
		Count:     5,
		Output:    config.OutputTerminal,
	})
	require.NoError(t, err)

	for _, code := range lines(out.String()) {
		assert.Regexp(t, `^[a-z]{4}$`, code)
	}
	require.Len(t, prompter.messages, 1)
	assert.Contains(t, prompter.messages[0], "lowercase")
}

func TestGenerateApp_CSV(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptedPrompter{}
	path := filepath.Join(t.TempDir(), "batch", "codes.csv")

	err := newGenerateApp(prompter, &out).Run(context.Background(), &app.GenerateOptions{
		Generator: generator.Options{Length: 8, Uppercase: true, Digits: true},
		Count:     50,
		Output:    config.OutputCSV,
		CSVPath:   path,
		Export:    export.Options{WithIndex: true, Header: true, Encoding: "utf-8"},
	})
	require.NoError(t, err)
	assert.Empty(t, out.String())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 51)
	assert.Equal(t, []string{"index", "code"}, rows[0])
	seen := map[string]bool{}
	for _, row := range rows[1:] {
		assert.Regexp(t, `^[A-Z0-9]{8}$`, row[1])
		assert.False(t, seen[row[1]])
		seen[row[1]] = true
	}
	assert.Contains(t, prompter.messages, "CSV written: "+path)
}

func TestGenerateApp_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts app.GenerateOptions
		err  error
	}{
		{
			"Capacity",
			app.GenerateOptions{Generator: generator.Options{Length: 2, Digits: true}, Count: 101, Output: config.OutputTerminal},
			generator.ErrCapacityExceeded,
		},
		{
			"Length",
			app.GenerateOptions{Generator: generator.Options{Length: 0, Digits: true}, Count: 1, Output: config.OutputTerminal},
			generator.ErrInvalidLength,
		},
		{
			"CSVPath",
			app.GenerateOptions{Generator: generator.Options{Length: 4, Digits: true}, Count: 1, Output: config.OutputCSV},
			app.ErrMissingCSVPath,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := newGenerateApp(&scriptedPrompter{}, &out).Run(context.Background(), &tc.opts)
			assert.ErrorIs(t, err, tc.err)
			assert.Empty(t, out.String())
		})
	}
}

func TestGenerateApp_CancelledBeforeGeneration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newGenerateApp(&scriptedPrompter{}, &out).Run(ctx, &app.GenerateOptions{
		Generator: generator.Options{Length: 4, Digits: true},
		Count:     1,
		Output:    config.OutputTerminal,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateApp_InteractiveHexTerminal(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptedPrompter{
		// hex?, uppercase A-F?, save to CSV?, show index?
		yes:  []bool{true, true, false, false},
		ints: []int{4, 6},
	}

	require.NoError(t, newGenerateApp(prompter, &out).RunInteractive(context.Background()))

	got := lines(out.String())
	require.Len(t, got, 8)
	assert.Equal(t, "", got[0])
	assert.Equal(t, "Generated codes:", got[1])
	for _, code := range got[2:] {
		assert.Regexp(t, `^[0-9A-F]{4}$`, code)
	}
}

func TestGenerateApp_InteractiveCSV(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "codes.csv")
	prompter := &scriptedPrompter{
		// hex?, lower?, upper?, digits?, save to CSV?, index?, header?
		yes:  []bool{false, false, false, true, true, false, true},
		ints: []int{3, 4},
		strs: []string{path, ""},
	}

	require.NoError(t, newGenerateApp(prompter, &out).RunInteractive(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := lines(string(data))
	require.Len(t, got, 5)
	assert.Equal(t, "code", got[0])
	for _, code := range got[1:] {
		assert.Regexp(t, `^[0-9]{3}$`, code)
	}
}

func TestGenerateApp_InteractiveCSVPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codes.csv")
	prompter := &scriptedPrompter{
		// hex?, uppercase A-F?, save to CSV?, index?, header?
		yes:  []bool{true, false, true, false, false},
		ints: []int{2, 3},
		strs: []string{dir, path, ""},
	}

	require.NoError(t, newGenerateApp(prompter, &bytes.Buffer{}).RunInteractive(context.Background()))

	require.NotEmpty(t, prompter.messages)
	assert.Contains(t, prompter.messages[0], "is a directory")
	assert.Contains(t, prompter.messages, "CSV written: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := lines(string(data))
	require.Len(t, got, 3)
	for _, code := range got {
		assert.Regexp(t, `^[0-9a-f]{2}$`, code)
	}
}

func TestGenerateApp_InteractiveAbort(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptedPrompter{yes: []bool{false}}

	err := newGenerateApp(prompter, &out).RunInteractive(context.Background())
	assert.ErrorIs(t, err, errNoAnswer)
	assert.Empty(t, out.String())
}
