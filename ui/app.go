package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/logger"
	"ocr-translator/models"
	"ocr-translator/services"
	uicontainer "ocr-translator/ui/container"
	"ocr-translator/ui/dialogs"
	"ocr-translator/ui/layouts"
	appTheme "ocr-translator/ui/theme"
	"ocr-translator/ui/widgets"
)

// WindowTitle is the main window title
const WindowTitle = "Offline OCR Translator"

const appID = "com.github.ocr-translator"

// MainUI is the main application UI
type MainUI struct {
	window     fyne.Window
	config     *models.Config
	configPath string

	loader     *services.CatalogLoader
	controller *services.SubmissionController

	// UI Components
	uploadForm  *uicontainer.UploadForm
	resultPanel *uicontainer.ResultPanel
}

// NewMainUI creates the main UI over the given catalog source and translator.
func NewMainUI(w fyne.Window, cfg *models.Config, configPath string, fetcher services.CatalogFetcher, translator services.Translator) *MainUI {
	ui := &MainUI{
		window:     w,
		config:     cfg,
		configPath: configPath,
		loader:     services.NewCatalogLoader(fetcher),
		controller: services.NewSubmissionController(translator),
	}

	ui.uploadForm = uicontainer.NewUploadForm(w, cfg.DefaultOCRLanguage)
	ui.uploadForm.OnSubmit = ui.onSubmit
	ui.resultPanel = uicontainer.NewResultPanel()

	ui.loader.OnChange(func(state services.CatalogState) {
		fyne.Do(func() { ui.showCatalog(state) })
	})
	ui.controller.OnChange(func(outcome models.Outcome) {
		fyne.Do(func() { ui.showOutcome(outcome) })
	})

	return ui
}

// Build creates the complete UI layout
func (ui *MainUI) Build() fyne.CanvasObject {
	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), ui.showSettings),
	)

	body := container.New(
		layouts.NewTwoColumnLayout(0.35, 12),
		widgets.NewPanel(ui.uploadForm),
		widgets.NewPanel(ui.resultPanel),
	)

	return container.NewBorder(toolbar, nil, nil, nil, container.NewPadded(body))
}

// Start loads the language catalog in the background. Call once the app runs.
func (ui *MainUI) Start() {
	go ui.loader.Activate(context.Background())
}

// Controller exposes the submission controller.
func (ui *MainUI) Controller() *services.SubmissionController {
	return ui.controller
}

func (ui *MainUI) onSubmit(selection models.Selection) {
	if !ui.controller.SubmitAsync(selection) {
		logger.Debug("Submit ignored while a translation is pending")
	}
}

func (ui *MainUI) showCatalog(state services.CatalogState) {
	ui.uploadForm.SetLanguages(state.Languages)
	if state.Status == services.CatalogFailed {
		ui.resultPanel.SetOutcome(models.FailureOutcome("", state.Message))
	}
}

func (ui *MainUI) showOutcome(outcome models.Outcome) {
	ui.uploadForm.SetPending(outcome.IsPending())
	ui.resultPanel.SetOutcome(outcome)
}

func (ui *MainUI) showSettings() {
	settingsDialog := dialogs.NewSettingsDialog(ui.window, ui.config, ui.configPath)
	settingsDialog.OnSave = func(config *models.Config) {
		if err := logger.Setup(config.LogLevel, config.LogFormat, nil); err != nil {
			logger.Warn("Log settings not applied: %v", err)
		}
	}
	settingsDialog.Show()
}

// Run opens the main window and blocks until it is closed.
func Run(cfg *models.Config, configPath string) {
	a := app.NewWithID(appID)
	a.Settings().SetTheme(&appTheme.OCRTranslatorTheme{})

	w := a.NewWindow(WindowTitle)
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	client := services.NewBackendClient(cfg)
	mainUI := NewMainUI(w, cfg, configPath, client, client)
	w.SetContent(mainUI.Build())

	a.Lifecycle().SetOnStarted(mainUI.Start)
	w.ShowAndRun()
}
