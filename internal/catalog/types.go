// Package catalog loads and validates YAML documents describing a set of
// buttons to render, preview and snapshot.
package catalog

import (
	"slices"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/primitives"
)

// Catalog is a named, versioned list of button entries.
type Catalog struct {
	Version     string  `yaml:"version" validate:"required,semver"`
	Name        string  `yaml:"name" validate:"required,min=1,max=100"`
	Description string  `yaml:"description,omitempty"`
	Buttons     []Entry `yaml:"buttons" validate:"required,min=1,dive"`
}

// Entry describes one button.
type Entry struct {
	ID           string      `yaml:"id" validate:"required,entry_id"`
	Description  string      `yaml:"description,omitempty" validate:"max=200"`
	Kind         string      `yaml:"kind,omitempty" validate:"omitempty,button_kind"`
	Theme        string      `yaml:"theme,omitempty" validate:"omitempty,button_theme"`
	Label        string      `yaml:"label,omitempty"`
	Icon         string      `yaml:"icon,omitempty" validate:"omitempty,icon_name"`
	IconPosition string      `yaml:"icon_position,omitempty" validate:"omitempty,icon_position"`
	IconOptions  IconOptions `yaml:"icon_options,omitempty"`
	Disabled     bool        `yaml:"disabled,omitempty"`
	Loading      bool        `yaml:"loading,omitempty"`
	Animate      *bool       `yaml:"animate,omitempty"`
	Stretch      bool        `yaml:"stretch,omitempty"`
	ClassName    string      `yaml:"class_name,omitempty"`
	ButtonType   string      `yaml:"button_type,omitempty" validate:"omitempty,button_type"`
	Href         string      `yaml:"href,omitempty"`
	Rel          string      `yaml:"rel,omitempty"`
	Target       string      `yaml:"target,omitempty" validate:"omitempty,oneof=_self _blank _parent _top"`
}

// IconOptions mirrors button.IconOptions without the custom node, which
// cannot be expressed in YAML.
type IconOptions struct {
	ClassName string `yaml:"class_name,omitempty"`
	Kind      string `yaml:"kind,omitempty" validate:"omitempty,icon_kind"`
}

// Props converts the entry into render props.
func (e Entry) Props() button.Props {
	return button.Props{
		ID:           e.ID,
		Kind:         button.Kind(e.Kind),
		Theme:        button.Theme(e.Theme),
		Label:        e.Label,
		Icon:         primitives.IconName(e.Icon),
		Disabled:     e.Disabled,
		IsLoading:    e.Loading,
		ClassName:    cn.Fragment(e.ClassName),
		IconPosition: button.IconPosition(e.IconPosition),
		IconOptions: button.IconOptions{
			ClassName: cn.Fragment(e.IconOptions.ClassName),
			Kind:      primitives.IconKind(e.IconOptions.Kind),
		},
		Type:    button.Type(e.ButtonType),
		Href:    e.Href,
		Rel:     e.Rel,
		Target:  e.Target,
		Animate: e.Animate,
		Stretch: e.Stretch,
	}
}

// Title returns the description, or the id when there is none.
func (e Entry) Title() string {
	if e.Description != "" {
		return e.Description
	}
	return e.ID
}

// Find returns the entry with the given id.
func (c *Catalog) Find(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i := slices.IndexFunc(c.Buttons, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return Entry{}, false
	}
	return c.Buttons[i], true
}

// IDs lists entry ids in document order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Buttons))
	for _, e := range c.Buttons {
		ids = append(ids, e.ID)
	}
	return ids
}

// Matrix builds a catalog with one entry for every kind and theme pair, in
// enabled and disabled form.
func Matrix() *Catalog {
	cat := &Catalog{
		Version:     CurrentVersion,
		Name:        "Kind and theme matrix",
		Description: "Every kind rendered in every theme",
	}
	for _, kind := range button.Kinds() {
		for _, theme := range button.Themes() {
			for _, disabled := range []bool{false, true} {
				id := string(kind) + "_" + string(theme)
				desc := string(kind) + " / " + string(theme)
				if disabled {
					id += "_disabled"
					desc += " (disabled)"
				}
				cat.Buttons = append(cat.Buttons, Entry{
					ID:          id,
					Description: desc,
					Kind:        string(kind),
					Theme:       string(theme),
					Label:       "Continue",
					Disabled:    disabled,
				})
			}
		}
	}
	return cat
}
