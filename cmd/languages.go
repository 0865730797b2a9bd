package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ocr-translator/internal/text"
	"ocr-translator/models"
	"ocr-translator/services"
)

func newLanguagesCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the target languages offered by the service",
		Example: `  ocr-translator languages
  ocr-translator languages --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutputFormat(output); err != nil {
				return err
			}
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			loader := services.NewCatalogLoader(services.NewBackendClient(cfg))
			state := loader.Activate(cmd.Context())
			if state.Status == services.CatalogFailed {
				return errors.New(state.Message)
			}

			return render(cmd.OutOrStdout(), output, state.Languages, func(w io.Writer) error {
				return printLanguages(w, state.Languages)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, json, yaml)")
	return cmd
}

func printLanguages(w io.Writer, languages []models.LanguageOption) error {
	if len(languages) == 0 {
		_, err := fmt.Fprintln(w, "No languages available.")
		return err
	}
	for _, lang := range languages {
		if _, err := fmt.Fprintln(w, text.OptionLabel(lang.Name, lang.Code)); err != nil {
			return err
		}
	}
	return nil
}
