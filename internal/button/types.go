package button

import "slices"

// Kind selects the structural variant of a button.
type Kind string

const (
	KindCell      Kind = "cell"
	KindPrimary   Kind = "primary"
	KindOutline   Kind = "outline"
	KindSecondary Kind = "secondary"
)

var kinds = []Kind{KindCell, KindPrimary, KindOutline, KindSecondary}

// Kinds lists every button kind.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return slices.Contains(kinds, k)
}

// Theme is one of the named brand colours.
type Theme string

const (
	ThemeBlue            Theme = "blue"
	ThemeCoral           Theme = "coral"
	ThemeQuartz          Theme = "quartz"
	ThemeMushroom        Theme = "mushroom"
	ThemeDanger          Theme = "danger"
	ThemeGreen           Theme = "green"
	ThemeEvolvedGreen    Theme = "evolved-green"
	ThemeEvolvedMushroom Theme = "evolved-mushroom"
	ThemeEvolvedBlue     Theme = "evolved-blue"
	ThemeEvolvedQuartz   Theme = "evolved-quartz"
)

var themes = []Theme{
	ThemeBlue,
	ThemeCoral,
	ThemeQuartz,
	ThemeMushroom,
	ThemeDanger,
	ThemeGreen,
	ThemeEvolvedGreen,
	ThemeEvolvedMushroom,
	ThemeEvolvedBlue,
	ThemeEvolvedQuartz,
}

// Themes lists every theme.
func Themes() []Theme {
	return slices.Clone(themes)
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return slices.Contains(themes, t)
}

// IconPosition places the icon before or after the label.
type IconPosition string

const (
	IconStart IconPosition = "start"
	IconEnd   IconPosition = "end"
)

// Valid reports whether p is a known position.
func (p IconPosition) Valid() bool {
	return p == IconStart || p == IconEnd
}

// Type is the HTML type attribute of the action trigger.
type Type string

const (
	TypeSubmit Type = "submit"
	TypeReset  Type = "reset"
	TypeButton Type = "button"
)

// Valid reports whether t is a known button type.
func (t Type) Valid() bool {
	return t == TypeSubmit || t == TypeReset || t == TypeButton
}
