// Command flashgen generates flashcards from a local document or text and
// writes them in one of the export formats.
//
//	flashgen -f notes.pdf -t "extra notes" --format csv -o cards.csv
//
// Without --offline it uses the provider configured for the server
// (FLASHFORGE_* environment variables, .env or config.yaml).
package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/domain"
	"github.com/phrazzld/flashforge-api/internal/export"
	"github.com/phrazzld/flashforge-api/internal/extract"
	"github.com/phrazzld/flashforge-api/internal/generation"
	"github.com/phrazzld/flashforge-api/internal/platform/llmprovider"
	"github.com/spf13/pflag"
)

type options struct {
	file    string
	text    string
	format  string
	out     string
	offline bool
	verbose bool
}

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "flashgen: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("flashgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.file, "file", "f", "", "document to read (.txt or .pdf)")
	fs.StringVarP(&opts.text, "text", "t", "", "text to generate from, joined with the document text")
	fs.StringVar(&opts.format, "format", "json", "export format: json, csv, anki, quizlet or xlsx")
	fs.StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	fs.BoolVar(&opts.offline, "offline", false, "skip the LLM and use the fallback generator")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log generation details to stderr")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return options{}, err
	}
	if format == export.FormatXLSX && opts.out == "" {
		return options{}, errors.New("xlsx output requires --out")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	content, err := readContent(opts)
	if err != nil {
		return err
	}

	gen, err := newGenerator(ctx, opts, log)
	if err != nil {
		return err
	}

	result := gen.Generate(ctx, content)
	if result.UsedFallback() {
		log.Info("used fallback generator", "reason", string(result.FallbackReason))
	}

	exported, err := export.Export(toRecords(result.Cards), opts.format, time.Now())
	if err != nil {
		return fmt.Errorf("failed to export flashcards: %w", err)
	}
	return writeOutput(opts, exported, stdout)
}

func readContent(opts options) (string, error) {
	var fileText string
	if opts.file != "" {
		kind, ok := extract.KindFromFilename(opts.file)
		if !ok {
			return "", fmt.Errorf("unsupported file type: %s", opts.file)
		}
		text, err := extract.File(opts.file, kind)
		if err != nil {
			return "", err
		}
		fileText = text
	}

	content := domain.BuildContent(opts.text, fileText)
	if err := domain.ValidateContent(content); err != nil {
		return "", err
	}
	return content, nil
}

func newGenerator(ctx context.Context, opts options, log *slog.Logger) (*generation.Generator, error) {
	if opts.offline {
		return generation.NewGenerator(nil, nil, log)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	completer, err := llmprovider.NewCompleter(ctx, cfg.LLM, log)
	if err != nil {
		return nil, err
	}
	prompt, err := generation.LoadPrompt(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, err
	}
	return generation.NewGenerator(completer, prompt, log)
}

func toRecords(cards []domain.Flashcard) []export.Record {
	records := make([]export.Record, len(cards))
	for i, c := range cards {
		records[i] = export.Record{
			"id":         c.ID,
			"question":   c.Question,
			"answer":     c.Answer,
			"created_at": c.CreatedAt.Format(time.RFC3339),
		}
	}
	return records
}

func writeOutput(opts options, result export.Result, stdout io.Writer) error {
	data := []byte(result.Data)
	if result.MIMEType == export.MIMEXLSX {
		decoded, err := base64.StdEncoding.DecodeString(result.Data)
		if err != nil {
			return fmt.Errorf("failed to decode workbook: %w", err)
		}
		data = decoded
	}

	if opts.out == "" {
		_, err := stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(opts.out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}
	return nil
}
