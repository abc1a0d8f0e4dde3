package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/export"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const notes = "Rivers carry sediment from mountains to the sea over long periods. " +
	"Deltas form where rivers deposit that sediment at their mouths. " +
	"Meanders develop as water erodes the outer banks of bends."

func TestRunOfflineJSONToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"--offline", "-t", notes}, &stdout, &stderr)
	require.NoError(t, err)

	var cards []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &cards))
	assert.GreaterOrEqual(t, len(cards), 10)
	assert.LessOrEqual(t, len(cards), 20)
	assert.NotEmpty(t, cards[0]["question"])
}

func TestRunOfflineFromFileToCSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(in, []byte(notes), 0o600))
	out := filepath.Join(dir, "cards.csv")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--offline", "--file", in, "--format", "csv", "-o", out}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Question,Answer,Created At"), "got %q", string(data))
	assert.Empty(t, stdout.String())
}

func TestRunOfflineXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cards.xlsx")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--offline", "-t", notes, "--format", "xlsx", "-o", out}, &stdout, &stderr)
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Flashcards")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(rows), 11)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
		msg  string
	}{
		{name: "no content", args: []string{"--offline"}, want: domain.ErrNoContent},
		{name: "short content", args: []string{"--offline", "-t", "short"}, want: domain.ErrContentTooShort},
		{name: "bad format", args: []string{"--offline", "-t", notes, "--format", "pdf"}, want: export.ErrUnsupportedFormat},
		{name: "xlsx to stdout", args: []string{"--offline", "-t", notes, "--format", "xlsx"}, msg: "requires --out"},
		{name: "unsupported file", args: []string{"--offline", "-f", "slides.pptx"}, msg: "unsupported file type"},
		{name: "help", args: []string{"--help"}, want: pflag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}
