package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"ocr-translator/models"
)

// Custom theme color names
const (
	ColorNameSurface        fyne.ThemeColorName = "surface"
	ColorNameSurfaceVariant fyne.ThemeColorName = "surfaceVariant"
	ColorNameDivider        fyne.ThemeColorName = "divider"
	ColorNameTextSecondary  fyne.ThemeColorName = "textSecondary"

	ColorNameOutcomeIdle    fyne.ThemeColorName = "outcomeIdle"
	ColorNameOutcomePending fyne.ThemeColorName = "outcomePending"
	ColorNameOutcomeSuccess fyne.ThemeColorName = "outcomeSuccess"
	ColorNameOutcomeFailure fyne.ThemeColorName = "outcomeFailure"
)

// SizeNameCardRadius is the corner radius of panels.
const SizeNameCardRadius fyne.ThemeSizeName = "cardRadius"

// OutcomeColor maps an outcome status to its theme color.
func OutcomeColor(status models.OutcomeStatus) fyne.ThemeColorName {
	switch status {
	case models.StatusPending:
		return ColorNameOutcomePending
	case models.StatusSuccess:
		return ColorNameOutcomeSuccess
	case models.StatusFailure:
		return ColorNameOutcomeFailure
	default:
		return ColorNameOutcomeIdle
	}
}

// OCRTranslatorTheme is the dark theme used by the desktop app.
type OCRTranslatorTheme struct{}

var _ fyne.Theme = (*OCRTranslatorTheme)(nil)

func (t *OCRTranslatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorTextPrimary
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return ColorPrimary

	case theme.ColorNameInputBackground:
		return ColorInputBg
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return ColorDivider
	case theme.ColorNamePlaceHolder:
		return ColorTextHint
	case theme.ColorNameFocus:
		return ColorFocusBorder

	case theme.ColorNameSelection:
		return WithAlpha(ColorPrimary, 80)
	case theme.ColorNameHover:
		return ColorHover
	case theme.ColorNamePressed:
		return ColorPressed

	case theme.ColorNameDisabled:
		return ColorTextDisabled
	case theme.ColorNameDisabledButton:
		return ColorDisabledBg
	case theme.ColorNameScrollBar:
		return ColorScrollbar

	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameWarning:
		return ColorWarning

	case theme.ColorNameOverlayBackground:
		return ColorOverlay
	case theme.ColorNameMenuBackground, theme.ColorNameHeaderBackground:
		return ColorSurface
	case theme.ColorNameHyperlink:
		return ColorSecondary

	case ColorNameSurface:
		return ColorSurface
	case ColorNameSurfaceVariant:
		return ColorSurfaceVariant
	case ColorNameDivider:
		return ColorDivider
	case ColorNameTextSecondary:
		return ColorTextSecondary
	case ColorNameOutcomeIdle:
		return ColorIdle
	case ColorNameOutcomePending:
		return ColorPending
	case ColorNameOutcomeSuccess:
		return ColorSuccess
	case ColorNameOutcomeFailure:
		return ColorError

	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *OCRTranslatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *OCRTranslatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *OCRTranslatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 6
	case SizeNameCardRadius:
		return 8
	default:
		return theme.DefaultTheme().Size(name)
	}
}
