package app

import (
	"image/color"

	"mfd-charts/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CockpitTheme is a dark display theme for the MFD window.
type CockpitTheme struct{}

var _ fyne.Theme = (*CockpitTheme)(nil)

// Color maps the display palette onto fyne color names; the rest come from the dark default.
func (t *CockpitTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return colorutil.Black
	case theme.ColorNameForeground:
		return colorutil.Placeholder
	case theme.ColorNamePrimary:
		return colorutil.Cyan
	case theme.ColorNameError:
		return colorutil.Amber // "no georef" indicator
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

// Font returns the default fonts.
func (t *CockpitTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the default icons.
func (t *CockpitTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size enlarges text for reading at arm's length.
func (t *CockpitTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return 22
	default:
		return theme.DefaultTheme().Size(name)
	}
}
