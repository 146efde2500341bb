package classnames

import (
	"slices"
	"strings"
)

// Utility is a single class broken into its variant prefixes and base utility.
type Utility struct {
	Raw       string
	Variants  []string
	Base      string
	Important bool
	Negative  bool
	group     string
}

// Parse splits a class such as "dark:group-hover:-mx-0.5" into its parts.
func Parse(class string) Utility {
	return parseUtility(class)
}

// Group returns the conflict group the utility belongs to.
func (u Utility) Group() string {
	return u.group
}

// HasVariant reports whether the utility is gated by the given variant.
func (u Utility) HasVariant(variant string) bool {
	return slices.Contains(u.Variants, variant)
}

func (u Utility) key(group string) string {
	var b strings.Builder
	for _, v := range u.Variants {
		b.WriteString(v)
		b.WriteByte(':')
	}
	if u.Important {
		b.WriteByte('!')
	}
	b.WriteString(group)
	return b.String()
}

func parseUtility(class string) Utility {
	parts := strings.Split(class, ":")
	base := parts[len(parts)-1]
	variants := slices.Clone(parts[:len(parts)-1])
	slices.Sort(variants)

	u := Utility{Raw: class, Variants: variants}
	if strings.HasPrefix(base, "!") {
		u.Important = true
		base = base[1:]
	}
	if strings.HasPrefix(base, "-") {
		u.Negative = true
		base = base[1:]
	}
	u.Base = base
	u.group = classify(base)
	return u
}

var exactGroups = map[string]string{
	"block":        "display",
	"inline-block": "display",
	"inline":       "display",
	"flex":         "display",
	"inline-flex":  "display",
	"grid":         "display",
	"inline-grid":  "display",
	"hidden":       "display",
	"contents":     "display",
	"static":       "position",
	"fixed":        "position",
	"absolute":     "position",
	"relative":     "position",
	"sticky":       "position",
	"border":       "border-w",
	"rounded":      "rounded",
	"transition":   "transition",
	"truncate":     "overflow",
	"shrink":       "shrink",
	"grow":         "grow",
}

type prefixRule struct {
	prefix string
	group  func(value string) string
}

func fixed(group string) func(string) string {
	return func(string) string { return group }
}

// Longer prefixes must precede shorter ones that share a stem.
var prefixRules = []prefixRule{
	{"min-w-", fixed("min-w")},
	{"max-w-", fixed("max-w")},
	{"min-h-", fixed("min-h")},
	{"max-h-", fixed("max-h")},
	{"px-", fixed("px")},
	{"py-", fixed("py")},
	{"pt-", fixed("pt")},
	{"pr-", fixed("pr")},
	{"pb-", fixed("pb")},
	{"pl-", fixed("pl")},
	{"p-", fixed("p")},
	{"mx-", fixed("mx")},
	{"my-", fixed("my")},
	{"mt-", fixed("mt")},
	{"mr-", fixed("mr")},
	{"mb-", fixed("mb")},
	{"ml-", fixed("ml")},
	{"m-", fixed("m")},
	{"w-", fixed("w")},
	{"h-", fixed("h")},
	{"gap-", fixed("gap")},
	{"bg-", fixed("bg-color")},
	{"fill-", fixed("fill")},
	{"stroke-", func(v string) string {
		if isNumeric(v) {
			return "stroke-w"
		}
		return "stroke"
	}},
	{"text-", textGroup},
	{"font-", fontGroup},
	{"border-", borderGroup},
	{"rounded-", roundedGroup},
	{"scale-x-", fixed("scale-x")},
	{"scale-y-", fixed("scale-y")},
	{"scale-", fixed("scale")},
	{"transition-", fixed("transition")},
	{"duration-", fixed("duration")},
	{"ease-", fixed("ease")},
	{"delay-", fixed("delay")},
	{"items-", fixed("align-items")},
	{"justify-", fixed("justify-content")},
	{"cursor-", fixed("cursor")},
	{"select-", fixed("user-select")},
	{"opacity-", fixed("opacity")},
	{"shrink-", fixed("shrink")},
	{"grow-", fixed("grow")},
	{"z-", fixed("z")},
}

func classify(base string) string {
	if g, ok := exactGroups[base]; ok {
		return g
	}
	for _, rule := range prefixRules {
		if value, ok := strings.CutPrefix(base, rule.prefix); ok && value != "" {
			return rule.group(value)
		}
	}
	return "class:" + base
}

var fontSizes = map[string]struct{}{
	"xs": {}, "sm": {}, "base": {}, "lg": {}, "xl": {}, "2xl": {}, "3xl": {},
	"4xl": {}, "5xl": {}, "6xl": {}, "7xl": {}, "8xl": {}, "9xl": {},
}

var textAligns = map[string]struct{}{
	"left": {}, "center": {}, "right": {}, "justify": {}, "start": {}, "end": {},
}

func textGroup(value string) string {
	if _, ok := fontSizes[value]; ok {
		return "font-size"
	}
	if _, ok := textAligns[value]; ok {
		return "text-align"
	}
	return "text-color"
}

var fontWeights = map[string]struct{}{
	"thin": {}, "extralight": {}, "light": {}, "normal": {}, "medium": {},
	"semibold": {}, "bold": {}, "extrabold": {}, "black": {},
}

func fontGroup(value string) string {
	if _, ok := fontWeights[value]; ok {
		return "font-weight"
	}
	return "font-family"
}

var borderStyles = map[string]struct{}{
	"solid": {}, "dashed": {}, "dotted": {}, "double": {}, "none": {},
}

func borderGroup(value string) string {
	if isNumeric(value) {
		return "border-w"
	}
	if _, ok := borderStyles[value]; ok {
		return "border-style"
	}
	for _, side := range []string{"x", "y", "t", "r", "b", "l"} {
		if value == side {
			return "border-w-" + side
		}
		if rest, ok := strings.CutPrefix(value, side+"-"); ok && isNumeric(rest) {
			return "border-w-" + side
		}
	}
	return "border-color"
}

func roundedGroup(value string) string {
	for _, corner := range []string{"tl", "tr", "bl", "br", "t", "r", "b", "l"} {
		if value == corner || strings.HasPrefix(value, corner+"-") {
			return "rounded-" + corner
		}
	}
	return "rounded"
}

func isNumeric(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if (r < '0' || r > '9') && r != '.' && r != '/' {
			return false
		}
	}
	return true
}

// subsumes lists the narrower groups a broader utility overrides.
var subsumes = map[string][]string{
	"p":          {"px", "py", "pt", "pr", "pb", "pl"},
	"px":         {"pr", "pl"},
	"py":         {"pt", "pb"},
	"m":          {"mx", "my", "mt", "mr", "mb", "ml"},
	"mx":         {"mr", "ml"},
	"my":         {"mt", "mb"},
	"rounded":    {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-tl", "rounded-tr", "rounded-bl", "rounded-br"},
	"rounded-t":  {"rounded-tl", "rounded-tr"},
	"rounded-r":  {"rounded-tr", "rounded-br"},
	"rounded-b":  {"rounded-bl", "rounded-br"},
	"rounded-l":  {"rounded-tl", "rounded-bl"},
	"scale":      {"scale-x", "scale-y"},
	"border-w":   {"border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
	"border-w-x": {"border-w-r", "border-w-l"},
	"border-w-y": {"border-w-t", "border-w-b"},
}
