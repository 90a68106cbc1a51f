package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme reduces padding and font sizes so the URL box, progress and
// log fit a small window. Disabled text stays readable because the log view
// is a disabled entry.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

var (
	colorSuccess  = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	colorError    = color.RGBA{R: 183, G: 28, B: 28, A: 255}
	colorWarning  = color.RGBA{R: 255, G: 193, B: 7, A: 255}
	colorPrimary  = color.RGBA{R: 25, G: 118, B: 210, A: 255}
	colorDarkBg   = color.RGBA{R: 18, G: 18, B: 18, A: 255}
	colorLightBg  = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	colorDarkFg   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorLightFg  = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	colorDarkDim  = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	colorLightDim = color.RGBA{R: 80, G: 80, B: 80, A: 255}
)

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorError
	case theme.ColorNameWarning:
		return colorWarning
	case theme.ColorNamePrimary:
		return colorPrimary
	case theme.ColorNameBackground:
		return pick(dark, colorDarkBg, colorLightBg)
	case theme.ColorNameForeground:
		return pick(dark, colorDarkFg, colorLightFg)
	case theme.ColorNameDisabled:
		return pick(dark, colorDarkDim, colorLightDim)
	}

	return theme.DefaultTheme().Color(name, variant)
}

func pick(dark bool, darkColor, lightColor color.Color) color.Color {
	if dark {
		return darkColor
	}
	return lightColor
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText, theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
