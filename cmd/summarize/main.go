package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	"pdfsummarizer/internal/config"
	"pdfsummarizer/internal/extractor"
	"pdfsummarizer/internal/logging"
	"pdfsummarizer/internal/model"
	"pdfsummarizer/internal/prompt"
	"pdfsummarizer/internal/providers"
	"pdfsummarizer/internal/service"
)

func main() {
	app := &cli.App{
		Name:      "summarize",
		Usage:     "Summarize a local PDF with the configured model",
		ArgsUsage: "<file.pdf>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "style",
				Aliases: []string{"s"},
				Value:   string(prompt.StyleNormal),
				Usage:   "Summary length (" + prompt.StyleNames() + ")",
			},
			&cli.BoolFlag{
				Name:    "quiz-only",
				Aliases: []string{"q"},
				Usage:   "Print only the quiz",
			},
			&cli.StringFlag{
				Name:    "provider",
				Usage:   "Model provider (gemini, openai, mock)",
				EnvVars: []string{"MODEL_PROVIDER"},
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one PDF file argument", 2)
			}

			cfg := config.Load()
			if p := c.String("provider"); p != "" {
				cfg.Model.Provider = p
			}
			if err := cfg.Validate(); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			log := logging.New(os.Stderr, cfg.Location(), cfg.LogLevel)

			gen, err := providers.New(c.Context, cfg.Model)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			log.WithField("provider", gen.Info().Name).WithField("model", gen.Info().Model).Debug("provider ready")

			svc := service.NewSummarizerService(extractor.New(), gen, cfg.QuizQuestions)
			return run(c.Context, svc, c.Args().First(), c.String("style"), c.Bool("quiz-only"), c.App.Writer)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run validates the file like the HTTP endpoint does and writes the result as JSON.
func run(ctx context.Context, svc service.SummarizerService, path, style string, quizOnly bool, w io.Writer) error {
	st, err := prompt.ParseSummaryStyle(style)
	if err != nil {
		return fmt.Errorf("invalid style %q: use one of %s", style, prompt.StyleNames())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !extractor.IsPDF(data) {
		return fmt.Errorf("%s is not a valid PDF", path)
	}

	in := service.SummarizeInput{
		Upload: &model.Upload{
			Filename:    filepath.Base(path),
			ContentType: extractor.PDFMimeType,
			Size:        int64(len(data)),
			Data:        data,
		},
		Style: st,
	}

	var out any
	if quizOnly {
		out, err = svc.Quiz(ctx, in)
	} else {
		out, err = svc.Summarize(ctx, in)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
