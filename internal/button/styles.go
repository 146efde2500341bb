package button

import (
	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
)

// Label tints

const (
	labelOnBrand       cn.Fragment = "dark:text-marble-950 dark:fill-marble-950"
	labelDisabledOther cn.Fragment = "dark:text-volcanic-100 dark:fill-volcanic-100"
)

// fill-volcanic-100 stands in for a bare "volcanic-100" token, which matches no utility.
const labelOutline cn.Fragment = "text-volcanic-100 fill-volcanic-100 " +
	"group-hover:text-volcanic-150 group-hover:fill-volcanic-150 " +
	"dark:text-marble-950 dark:fill-marble-950 dark:disabled:text-volcanic-700 " +
	"dark:group-hover:text-marble-1000 dark:group-hover:fill-marble-1000"

var labelDisabled = map[Kind]cn.Fragment{
	KindPrimary:   "dark:text-volcanic-200 dark:fill-volcanic-200",
	KindCell:      "dark:text-volcanic-200 dark:fill-volcanic-200",
	KindOutline:   "dark:text-volcanic-200 dark:fill-volcanic-200",
	KindSecondary: "dark:text-volcanic-700 dark:fill-volcanic-700",
}

// Evolved themes need a darker label against their light fills.
var labelOnBrandOverrides = map[Theme]cn.Fragment{
	ThemeEvolvedGreen:    "dark:text-volcanic-150 dark:fill-volcanic-150",
	ThemeEvolvedMushroom: "dark:text-volcanic-150 dark:fill-volcanic-150",
}

var labelSecondaryAccents = map[Theme]cn.Fragment{
	ThemeEvolvedGreen: "text-coral-500 fill-coral-500 group-hover:text-coral-500 group-hover:fill-coral-500 " +
		"dark:text-evolved-green-700 dark:fill-evolved-green-700 " +
		"dark:group-hover:text-evolved-green-500 dark:group-hover:fill-evolved-green-500",
	ThemeDanger: "text-danger-500 fill-danger-500 group-hover:text-danger-350 group-hover:fill-danger-350",
}

// Container backgrounds and borders

const disabledFill cn.Fragment = "bg-volcanic-600"

var buttonFills = map[Theme]cn.Fragment{
	ThemeEvolvedGreen:    "bg-evolved-green-700 group-hover:bg-evolved-green-500",
	ThemeBlue:            "bg-blue-500 group-hover:bg-blue-400",
	ThemeCoral:           "fill-coral-700 bg-coral-700 group-hover:bg-coral-600",
	ThemeQuartz:          "bg-quartz-500 group-hover:bg-quartz-400",
	ThemeMushroom:        "bg-mushroom-500 group-hover:bg-mushroom-400",
	ThemeDanger:          "bg-danger-500 group-hover:bg-danger-350",
	ThemeEvolvedBlue:     "bg-evolved-blue-500 group-hover:bg-blue-400",
	ThemeEvolvedMushroom: "bg-evolved-mushroom-500 group-hover:bg-evolved-mushroom-600",
	ThemeEvolvedQuartz:   "bg-evolved-quartz-500 group-hover:bg-evolved-quartz-700",
	ThemeGreen:           "bg-green-250 group-hover:bg-green-200",
}

var outlineBorders = map[Theme]cn.Fragment{
	ThemeEvolvedGreen:    "border-evolved-green-700 group-hover:border-evolved-green-500",
	ThemeBlue:            "border-blue-500 group-hover:border-blue-400",
	ThemeCoral:           "border-coral-700 group-hover:border-coral-600",
	ThemeQuartz:          "border-quartz-500 group-hover:border-quartz-400",
	ThemeMushroom:        "border-mushroom-500 group-hover:border-mushroom-400",
	ThemeDanger:          "border-danger-500 group-hover:border-danger-350",
	ThemeEvolvedBlue:     "border-evolved-blue-500 group-hover:border-blue-400",
	ThemeEvolvedMushroom: "border-evolved-mushroom-500 group-hover:border-evolved-mushroom-600",
	ThemeEvolvedQuartz:   "border-evolved-quartz-500 group-hover:border-evolved-quartz-700",
	ThemeGreen:           "border-green-250 group-hover:border-green-200",
}

// Bevel accents

const disabledAccent cn.Fragment = "fill-volcanic-600"

var cellAccents = map[Theme]cn.Fragment{
	ThemeDanger:          "fill-danger-500 group-hover:fill-danger-350",
	ThemeEvolvedGreen:    "fill-evolved-green-700 group-hover:fill-evolved-green-500",
	ThemeBlue:            "fill-blue-500 group-hover:fill-blue-400",
	ThemeCoral:           "fill-coral-700 group-hover:fill-coral-600",
	ThemeQuartz:          "fill-quartz-500 group-hover:fill-quartz-400",
	ThemeMushroom:        "fill-mushroom-500 group-hover:fill-mushroom-400",
	ThemeEvolvedBlue:     "fill-evolved-blue-500 group-hover:fill-blue-400",
	ThemeEvolvedMushroom: "fill-evolved-mushroom-500 group-hover:fill-evolved-mushroom-600",
	ThemeEvolvedQuartz:   "fill-evolved-quartz-500 group-hover:fill-evolved-quartz-700",
	ThemeGreen:           "fill-green-250 group-hover:fill-green-200",
}

func lookup[K comparable](table map[K]cn.Fragment, key K, fallback cn.Fragment) cn.Fragment {
	if f, ok := table[key]; ok {
		return f
	}
	return fallback
}

// LabelStyle returns the tint applied to text labels and icons.
func LabelStyle(kind Kind, theme Theme, disabled bool) cn.Fragment {
	if disabled {
		return lookup(labelDisabled, kind, labelDisabledOther)
	}

	switch kind {
	case KindPrimary, KindCell:
		return cn.Merge(labelOnBrand, lookup(labelOnBrandOverrides, theme, ""))
	case KindSecondary:
		return cn.Merge(labelOnBrand, lookup(labelSecondaryAccents, theme, ""))
	default:
		return labelOutline
	}
}

// ButtonStyle returns the container background or border. Secondary buttons
// never get one; disabled wins over the theme for every other kind.
// Unmapped themes get no colour: outline keeps a bare border and filled
// kinds get nothing.
func ButtonStyle(kind Kind, theme Theme, disabled bool) cn.Fragment {
	if kind == KindSecondary {
		return ""
	}
	if disabled {
		return disabledFill
	}
	if kind == KindOutline {
		return cn.Merge("border", lookup(outlineBorders, theme, ""))
	}
	return lookup(buttonFills, theme, "")
}

// CellAccentStyle returns the fill of the bevel shapes on cell buttons.
// Unmapped themes receive no override and inherit the surrounding fill.
func CellAccentStyle(theme Theme, disabled bool) cn.Fragment {
	if disabled {
		return disabledAccent
	}
	return lookup(cellAccents, theme, "")
}
