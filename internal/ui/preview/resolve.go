package preview

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
)

// State is the interaction state classes are evaluated under.
type State struct {
	Hover    bool
	Dark     bool
	Disabled bool
}

func (s State) active(variant string) bool {
	switch variant {
	case "hover", "group-hover":
		return s.Hover
	case "dark":
		return s.Dark
	case "disabled":
		return s.Disabled
	default:
		return false
	}
}

// Resolved is the terminal-relevant subset of an element's computed style.
type Resolved struct {
	Background  lipgloss.Color
	Foreground  lipgloss.Color
	Fill        lipgloss.Color
	BorderColor lipgloss.Color
	Border      bool
	PadLeft     int
	PadRight    int
	FullWidth   bool
	NotAllowed  bool
}

type pick struct {
	value string
	rank  int
}

// Resolve evaluates class under state. A class applies only when all its
// variants are active; among applying classes for the same property the one
// with more variants wins, then the later one.
func Resolve(class cn.Fragment, state State, palette Palette) Resolved {
	picks := make(map[string]pick)
	set := func(prop, value string, rank int) {
		if cur, ok := picks[prop]; ok && cur.rank > rank {
			return
		}
		picks[prop] = pick{value: value, rank: rank}
	}

	for i, raw := range class.Classes() {
		u := cn.Parse(raw)
		if u.Negative || !applies(u, state) {
			continue
		}
		rank := len(u.Variants)*10000 + i
		base := u.Base

		switch {
		case base == "border":
			set("border", "on", rank)
		case base == "w-full":
			set("width", "full", rank)
		case base == "cursor-not-allowed":
			set("cursor", "not-allowed", rank)
		}

		if token, ok := strings.CutPrefix(base, "bg-"); ok && palette.Has(token) {
			set("bg", token, rank)
		}
		if token, ok := strings.CutPrefix(base, "text-"); ok && palette.Has(token) {
			set("text", token, rank)
		}
		if token, ok := strings.CutPrefix(base, "fill-"); ok && palette.Has(token) {
			set("fill", token, rank)
		}
		if token, ok := strings.CutPrefix(base, "border-"); ok && palette.Has(token) {
			set("border-color", token, rank)
		}

		for _, pad := range []struct{ prefix, left, right string }{
			{"p-", "pl", "pr"},
			{"px-", "pl", "pr"},
			{"pl-", "pl", ""},
			{"pr-", "", "pr"},
		} {
			value, ok := strings.CutPrefix(base, pad.prefix)
			if !ok {
				continue
			}
			if pad.left != "" {
				set(pad.left, value, rank)
			}
			if pad.right != "" {
				set(pad.right, value, rank)
			}
		}
	}

	color := func(prop string) lipgloss.Color {
		if p, ok := picks[prop]; ok {
			return palette.Color(p.value)
		}
		return ""
	}
	cells := func(prop string) int {
		if p, ok := picks[prop]; ok {
			return SpacingCells(p.value)
		}
		return 0
	}
	_, border := picks["border"]
	_, full := picks["width"]
	_, notAllowed := picks["cursor"]

	return Resolved{
		Background:  color("bg"),
		Foreground:  color("text"),
		Fill:        color("fill"),
		BorderColor: color("border-color"),
		Border:      border,
		PadLeft:     cells("pl"),
		PadRight:    cells("pr"),
		FullWidth:   full,
		NotAllowed:  notAllowed,
	}
}

func applies(u cn.Utility, state State) bool {
	for _, v := range u.Variants {
		if !state.active(v) {
			return false
		}
	}
	return true
}

// SpacingCells converts a spacing scale value to terminal cells. One unit is
// a quarter rem and a cell is roughly half a rem wide, so values are halved
// and rounded up.
func SpacingCells(value string) int {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return int(math.Ceil(n / 2))
}
