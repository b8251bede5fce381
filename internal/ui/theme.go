package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Status colors used by the status line
var (
	StatusSuccessColor = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	StatusErrorColor   = color.RGBA{R: 204, G: 0, B: 0, A: 255}
)

// GeneratorTheme keeps the default Fyne look and overrides status colors
// and a few sizes so the fixed 600x700 window fits without scrolling.
type GeneratorTheme struct {
	base fyne.Theme
}

// NewGeneratorTheme creates the application theme
func NewGeneratorTheme() fyne.Theme {
	return &GeneratorTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *GeneratorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return StatusSuccessColor
	case theme.ColorNameError:
		return StatusErrorColor
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	}
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *GeneratorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *GeneratorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes
func (t *GeneratorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 14
	}
	return t.base.Size(name)
}
