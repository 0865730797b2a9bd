package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ocr-translator/internal/logger"
	"ocr-translator/internal/worker"
	"ocr-translator/models"
	"ocr-translator/services"
)

// fileReport is one translated file in the command output.
type fileReport struct {
	File      string                    `json:"file" yaml:"file"`
	Status    models.OutcomeStatus      `json:"status" yaml:"status"`
	AttemptID string                    `json:"attempt_id,omitempty" yaml:"attempt_id,omitempty"`
	Message   string                    `json:"message,omitempty" yaml:"message,omitempty"`
	Result    *models.TranslationResult `json:"result,omitempty" yaml:"result,omitempty"`
}

func newReport(path string, outcome models.Outcome) fileReport {
	return fileReport{
		File:      path,
		Status:    outcome.Status,
		AttemptID: outcome.AttemptID,
		Message:   outcome.Message,
		Result:    outcome.Result,
	}
}

func newTranslateCmd(opts *options) *cobra.Command {
	var (
		target  string
		ocr     string
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "translate FILE...",
		Short: "Extract and translate the text of one or more files",
		Long: `Upload each file to the OCR service and print the extracted text with its
translation. Files are sent concurrently, one request per file, and reported in
argument order. The exit status is non-zero when any file fails.`,
		Example: `  ocr-translator translate scan.png --to fra
  ocr-translator translate page1.png page2.png notes.txt --to spa --ocr deu --workers 2 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutputFormat(output); err != nil {
				return err
			}
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ocr") {
				ocr = cfg.DefaultOCRLanguage
			}

			client := services.NewBackendClient(cfg)

			if len(args) == 0 {
				// Nothing to upload: report the same message the form shows.
				outcome, _ := services.NewSubmissionController(client).Submit(cmd.Context(), models.Selection{
					TargetLanguageCode: target,
					OCRLanguageCode:    ocr,
				})
				return errors.New(outcome.Message)
			}

			reports := translateFiles(cmd.Context(), client, args, target, ocr, workers)

			if err := render(cmd.OutOrStdout(), output, reports, func(w io.Writer) error {
				return printReports(w, reports)
			}); err != nil {
				return err
			}

			failed := 0
			for _, r := range reports {
				if r.Status != models.StatusSuccess {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "to", "t", "", "Target language code, as listed by 'languages'")
	cmd.Flags().StringVar(&ocr, "ocr", "", "OCR language code (default from config, usually eng)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, json, yaml)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Number of files translated concurrently")

	return cmd
}

// translateFiles runs one submission controller per file through the worker
// pool and returns the reports in argument order.
func translateFiles(ctx context.Context, translator services.Translator, paths []string, target, ocr string, workers int) []fileReport {
	selections := make([]models.Selection, len(paths))
	for i, path := range paths {
		selections[i] = models.Selection{
			File:               models.LocalFile(path),
			TargetLanguageCode: target,
			OCRLanguageCode:    ocr,
		}
	}

	results := worker.Process(ctx, selections, workers,
		func(ctx context.Context, job worker.Job[models.Selection]) (models.Outcome, error) {
			path := paths[job.Index]
			if _, err := os.Stat(path); err != nil {
				return models.FailureOutcome("", fmt.Sprintf("cannot read %s: %v", filepath.Base(path), errors.Unwrap(err))), nil
			}
			controller := services.NewSubmissionController(translator)
			return controller.Submit(ctx, job.Data)
		},
		func(completed, total int) {
			logger.Debug("Translated %d/%d files", completed, total)
		},
	)

	reports := make([]fileReport, len(results))
	for i, res := range results {
		outcome := res.Value
		if res.Err != nil {
			outcome = models.FailureOutcome("", res.Err.Error())
		}
		reports[i] = newReport(paths[i], outcome)
	}
	return reports
}

func printReports(w io.Writer, reports []fileReport) error {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "== %s ==\n", r.File)

		if r.Status != models.StatusSuccess || r.Result == nil {
			fmt.Fprintf(&b, "Failed: %s\n", r.Message)
			continue
		}

		res := r.Result
		fmt.Fprintf(&b, "Detected language: %s | Target: %s | OCR: %s\n",
			res.DetectedLanguage, res.TargetLanguage, res.OCRLanguage)
		fmt.Fprintf(&b, "--- Original text ---\n%s\n", res.OriginalText)
		fmt.Fprintf(&b, "--- Translated text ---\n%s\n", res.TranslatedText)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
