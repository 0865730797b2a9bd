package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/logger"
	"ocr-translator/models"
)

// SettingsDialog edits the persisted configuration.
type SettingsDialog struct {
	window     fyne.Window
	config     *models.Config
	configPath string

	backendURLEntry *widget.Entry
	ocrEntry        *widget.Entry
	timeoutEntry    *widget.Entry
	attemptsEntry   *widget.Entry
	logLevelSelect  *widget.Select

	OnSave func(config *models.Config)
}

// NewSettingsDialog creates a settings dialog for config, saved to configPath.
func NewSettingsDialog(window fyne.Window, config *models.Config, configPath string) *SettingsDialog {
	return &SettingsDialog{
		window:     window,
		config:     config,
		configPath: configPath,
	}
}

// Show displays the settings dialog
func (d *SettingsDialog) Show() {
	content := d.build()

	dialog.ShowCustomConfirm("Settings", "Save", "Cancel", content, func(save bool) {
		if !save {
			return
		}
		updated, err := d.apply()
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if err := updated.Save(d.configPath); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), d.window)
			return
		}
		logger.Info("Settings saved to %s", d.configPath)
		*d.config = *updated
		if d.OnSave != nil {
			d.OnSave(d.config)
		}
	}, d.window)
}

func (d *SettingsDialog) build() fyne.CanvasObject {
	d.backendURLEntry = widget.NewEntry()
	d.backendURLEntry.SetText(d.config.BackendURL)

	d.ocrEntry = widget.NewEntry()
	d.ocrEntry.SetText(d.config.DefaultOCRLanguage)

	d.timeoutEntry = widget.NewEntry()
	d.timeoutEntry.SetText(strconv.Itoa(d.config.RequestTimeoutSeconds))

	d.attemptsEntry = widget.NewEntry()
	d.attemptsEntry.SetText(strconv.Itoa(d.config.RetryMaxAttempts))

	d.logLevelSelect = widget.NewSelect([]string{"debug", "info", "warn", "error"}, nil)
	d.logLevelSelect.SetSelected(getOrDefault(d.config.LogLevel, "info"))

	form := widget.NewForm(
		widget.NewFormItem("Backend URL", d.backendURLEntry),
		widget.NewFormItem("Default OCR language", d.ocrEntry),
		widget.NewFormItem("Timeout (seconds, 0 = none)", d.timeoutEntry),
		widget.NewFormItem("Attempts per request", d.attemptsEntry),
		widget.NewFormItem("Log level", d.logLevelSelect),
	)

	note := widget.NewLabel("Backend and retry changes apply on next launch.")
	note.Importance = widget.LowImportance

	box := container.NewVBox(form, note)
	box.Resize(fyne.NewSize(480, box.MinSize().Height))
	return box
}

// apply returns a validated copy of the config with the form values.
func (d *SettingsDialog) apply() (*models.Config, error) {
	updated := *d.config
	updated.BackendURL = strings.TrimSpace(d.backendURLEntry.Text)
	updated.DefaultOCRLanguage = strings.TrimSpace(d.ocrEntry.Text)
	updated.LogLevel = d.logLevelSelect.Selected

	timeout, err := strconv.Atoi(strings.TrimSpace(d.timeoutEntry.Text))
	if err != nil {
		return nil, fmt.Errorf("timeout must be a whole number of seconds")
	}
	updated.RequestTimeoutSeconds = timeout

	attempts, err := strconv.Atoi(strings.TrimSpace(d.attemptsEntry.Text))
	if err != nil {
		return nil, fmt.Errorf("attempts must be a whole number")
	}
	updated.RetryMaxAttempts = attempts

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func getOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
