package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ocr-translator/internal/logger"
	"ocr-translator/models"
	"ocr-translator/ui"
)

// runGUI opens the desktop window; replaced in tests.
var runGUI = ui.Run

// options are the persistent flags and the config they resolve to.
type options struct {
	configPath string
	backendURL string
	logLevel   string

	cfg     *models.Config
	loadErr error
}

func (o *options) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return models.DefaultConfigPath()
}

// load reads the config file and environment, then applies flag overrides.
// The error is kept so commands that do not need a valid config still run.
func (o *options) load(cmd *cobra.Command) {
	cfg, err := models.LoadConfig(o.path())
	if err != nil {
		o.cfg, o.loadErr = nil, err
		return
	}

	if o.backendURL != "" {
		cfg.BackendURL = o.backendURL
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		o.cfg, o.loadErr = nil, err
		return
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
		o.cfg, o.loadErr = nil, err
		return
	}
	o.cfg, o.loadErr = cfg, nil
}

func (o *options) config() (*models.Config, error) {
	return o.cfg, o.loadErr
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ocr-translator",
		Short: "Extract text from images and translate it with a remote OCR service",
		Long: `ocr-translator uploads an image or plain text file to an OCR/translation
service and shows the extracted text next to its translation.

Run without a subcommand to open the desktop app.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchGUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.config/ocr-translator/config.json)")
	cmd.PersistentFlags().StringVar(&opts.backendURL, "backend-url", "", "Override the OCR service base URL")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Add subcommands
	cmd.AddCommand(newGUICmd(opts))
	cmd.AddCommand(newLanguagesCmd(opts))
	cmd.AddCommand(newTranslateCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}
