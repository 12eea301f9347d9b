package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FloorCalcTheme wraps the default Fyne theme with a fixed light or dark
// variant and slightly compact sizing for the room list.
type FloorCalcTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool // false follows the variant the OS asks for
}

// NewFloorCalcTheme creates a new FloorCalcTheme that follows the system variant.
func NewFloorCalcTheme() *FloorCalcTheme {
	return &FloorCalcTheme{base: theme.DefaultTheme()}
}

// NewFloorCalcThemeWithVariant creates a FloorCalcTheme with a specific light/dark variant.
func NewFloorCalcThemeWithVariant(variant fyne.ThemeVariant) *FloorCalcTheme {
	return &FloorCalcTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		fixed:   true,
	}
}

// SetVariant pins the theme to a light or dark variant.
func (t *FloorCalcTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.fixed = true
}

// FollowSystem drops a pinned variant.
func (t *FloorCalcTheme) FollowSystem() {
	t.fixed = false
}

// Color delegates to the base theme with the pinned variant, if any.
func (t *FloorCalcTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *FloorCalcTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *FloorCalcTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *FloorCalcTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNamePadding:
		return 4
	default:
		return t.base.Size(name)
	}
}

// ThemeVariantFor maps the config's theme name to a variant. ok is false
// for "system" and unknown names, which should follow the OS setting.
func ThemeVariantFor(name string) (variant fyne.ThemeVariant, ok bool) {
	switch name {
	case "light":
		return theme.VariantLight, true
	case "dark":
		return theme.VariantDark, true
	default:
		return 0, false
	}
}

// ApplyThemeName pins or releases the variant according to a config theme name.
func (t *FloorCalcTheme) ApplyThemeName(name string) {
	if v, ok := ThemeVariantFor(name); ok {
		t.SetVariant(v)
		return
	}
	t.FollowSystem()
}
