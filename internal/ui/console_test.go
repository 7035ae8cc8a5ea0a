package ui_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"codegen/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleUI_AskYesNo(t *testing.T) {
	var out bytes.Buffer
	c := ui.NewConsoleUI(strings.NewReader("y\nYES\nn\nmaybe\n"), &out)
	ctx := context.Background()

	for _, want := range []bool{true, true, false, false} {
		got, err := c.AskYesNo(ctx, "Continue?")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Contains(t, out.String(), "Continue? (y/n): ")
}

func TestConsoleUI_AskIntRetries(t *testing.T) {
	var out bytes.Buffer
	c := ui.NewConsoleUI(strings.NewReader("abc\n0\n 8 \n"), &out)

	n, err := c.AskInt(context.Background(), "Code length", 1)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, 2, strings.Count(out.String(), "at least 1"))
}

func TestConsoleUI_AskStringDefault(t *testing.T) {
	var out bytes.Buffer
	c := ui.NewConsoleUI(strings.NewReader("\nout.csv\n"), &out)
	ctx := context.Background()

	got, err := c.AskString(ctx, "Path", "codes.csv")
	require.NoError(t, err)
	assert.Equal(t, "codes.csv", got)

	got, err = c.AskString(ctx, "Path", "codes.csv")
	require.NoError(t, err)
	assert.Equal(t, "out.csv", got)
	assert.Contains(t, out.String(), "Path (default: codes.csv): ")
}

func TestConsoleUI_EOF(t *testing.T) {
	c := ui.NewConsoleUI(strings.NewReader(""), io.Discard)

	_, err := c.AskYesNo(context.Background(), "Continue?")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestConsoleUI_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := ui.NewConsoleUI(pr, io.Discard)
	_, err := c.AskString(ctx, "Path", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProgressUI_Threshold(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewProgressUI(&out, 3)

	p.Start("Writing codes", 2)
	p.Increment()
	p.Complete()
	assert.Empty(t, out.String())

	p.Start("Writing codes", 3)
	assert.Contains(t, out.String(), "Writing codes")
	for i := 0; i < 3; i++ {
		p.Increment()
	}
	p.Complete()

	var quiet bytes.Buffer
	disabled := ui.NewProgressUI(&quiet, 0)
	disabled.Start("Writing codes", 1000)
	disabled.Increment()
	disabled.Complete()
	assert.Empty(t, quiet.String())
}
