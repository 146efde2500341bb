package button

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
	"github.com/alexisbeaulieu97/cellbutton/internal/primitives"
)

func hasBackground(f cn.Fragment) bool {
	for _, c := range f.Classes() {
		u := cn.Parse(c)
		if u.Group() == "bg-color" {
			return true
		}
	}
	return false
}

func TestResolversAreDeterministic(t *testing.T) {
	for _, kind := range Kinds() {
		for _, theme := range Themes() {
			for _, disabled := range []bool{false, true} {
				assert.Equal(t, LabelStyle(kind, theme, disabled), LabelStyle(kind, theme, disabled))
				assert.Equal(t, ButtonStyle(kind, theme, disabled), ButtonStyle(kind, theme, disabled))
				assert.Equal(t, CellAccentStyle(theme, disabled), CellAccentStyle(theme, disabled))
			}
		}
	}
}

func TestDisabledIgnoresTheme(t *testing.T) {
	for _, kind := range Kinds() {
		label := LabelStyle(kind, ThemeBlue, true)
		fill := ButtonStyle(kind, ThemeBlue, true)
		for _, theme := range Themes() {
			assert.Equal(t, label, LabelStyle(kind, theme, true), "label %s/%s", kind, theme)
			assert.Equal(t, fill, ButtonStyle(kind, theme, true), "fill %s/%s", kind, theme)
			assert.Equal(t, disabledAccent, CellAccentStyle(theme, true), "accent %s", theme)
		}
	}
}

func TestDisabledLabelShades(t *testing.T) {
	assert.Equal(t, cn.Fragment("dark:text-volcanic-200 dark:fill-volcanic-200"), LabelStyle(KindPrimary, ThemeCoral, true))
	assert.Equal(t, LabelStyle(KindPrimary, ThemeCoral, true), LabelStyle(KindCell, ThemeCoral, true))
	assert.Equal(t, LabelStyle(KindPrimary, ThemeCoral, true), LabelStyle(KindOutline, ThemeCoral, true))
	assert.Equal(t, cn.Fragment("dark:text-volcanic-700 dark:fill-volcanic-700"), LabelStyle(KindSecondary, ThemeCoral, true))
	assert.Equal(t, labelDisabledOther, LabelStyle(Kind("ghost"), ThemeCoral, true))
}

func TestLabelStyleByKind(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		theme Theme
		want  cn.Fragment
	}{
		{"primary default", KindPrimary, ThemeBlue, "dark:text-marble-950 dark:fill-marble-950"},
		{"cell default", KindCell, ThemeCoral, "dark:text-marble-950 dark:fill-marble-950"},
		{"evolved green contrast", KindPrimary, ThemeEvolvedGreen, "dark:text-volcanic-150 dark:fill-volcanic-150"},
		{"evolved mushroom contrast", KindCell, ThemeEvolvedMushroom, "dark:text-volcanic-150 dark:fill-volcanic-150"},
		{"secondary plain", KindSecondary, ThemeMushroom, "dark:text-marble-950 dark:fill-marble-950"},
		{
			"secondary danger",
			KindSecondary, ThemeDanger,
			"dark:text-marble-950 dark:fill-marble-950 text-danger-500 fill-danger-500 group-hover:text-danger-350 group-hover:fill-danger-350",
		},
		{"outline ignores theme", KindOutline, ThemeCoral, labelOutline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelStyle(tt.kind, tt.theme, false))
		})
	}
}

func TestSecondaryEvolvedGreenAccent(t *testing.T) {
	got := LabelStyle(KindSecondary, ThemeEvolvedGreen, false)
	assert.True(t, got.Has("group-hover:text-coral-500"))
	assert.True(t, got.Has("dark:text-evolved-green-700"))
	assert.True(t, got.Has("dark:group-hover:text-evolved-green-500"))
	assert.False(t, got.Has("dark:text-marble-950"), "the darker evolved tint replaces the on-brand one")
}

func TestSecondaryNeverHasBackground(t *testing.T) {
	for _, theme := range Themes() {
		for _, disabled := range []bool{false, true} {
			assert.Empty(t, ButtonStyle(KindSecondary, theme, disabled))

			root := Render(Props{Kind: KindSecondary, Theme: theme, Disabled: disabled, Label: "x"})
			assert.False(t, hasBackground(root.Class()), "theme %s disabled %v", theme, disabled)
		}
	}
}

func TestButtonStyleTables(t *testing.T) {
	assert.Equal(t, cn.Fragment("bg-blue-500 group-hover:bg-blue-400"), ButtonStyle(KindPrimary, ThemeBlue, false))
	assert.Equal(t, cn.Fragment("bg-danger-500 group-hover:bg-danger-350"), ButtonStyle(KindCell, ThemeDanger, false))
	assert.Equal(t, cn.Fragment("border border-coral-700 group-hover:border-coral-600"), ButtonStyle(KindOutline, ThemeCoral, false))

	for _, theme := range Themes() {
		assert.NotEmpty(t, buttonFills[theme], "fill for %s", theme)
		assert.NotEmpty(t, outlineBorders[theme], "border for %s", theme)
		assert.NotEmpty(t, cellAccents[theme], "accent for %s", theme)
	}
}

func TestUnmappedThemeFallbacks(t *testing.T) {
	unknown := Theme("teal")
	assert.Equal(t, cn.Fragment(""), ButtonStyle(KindPrimary, unknown, false))
	assert.Equal(t, cn.Fragment(""), ButtonStyle(KindCell, unknown, false))
	assert.Equal(t, cn.Fragment("border"), ButtonStyle(KindOutline, unknown, false))
	assert.Empty(t, CellAccentStyle(unknown, false))
	assert.Equal(t, labelOnBrand, LabelStyle(KindPrimary, unknown, false))
}

func TestUnmappedThemeCellHasNoThemeFill(t *testing.T) {
	root := Render(Props{Kind: KindCell, Theme: Theme("teal"), Label: "Go"})
	root.Walk(func(n *markup.Node) bool {
		for _, class := range n.Class().Classes() {
			assert.NotEqual(t, "bg-color", cn.Parse(class).Group(), "node %s has %s", n.Tag, class)
		}
		return true
	})
}

func TestDefaults(t *testing.T) {
	p := Props{}.WithDefaults()
	assert.Equal(t, KindPrimary, p.Kind)
	assert.Equal(t, ThemeBlue, p.Theme)
	assert.Equal(t, IconStart, p.IconPosition)
	assert.True(t, p.Animated())

	assert.Equal(t, ThemeMushroom, Props{Kind: KindSecondary}.WithDefaults().Theme)
	assert.Equal(t, IconEnd, Props{Kind: KindCell}.WithDefaults().IconPosition)
	assert.Equal(t, IconStart, Props{Kind: KindOutline}.WithDefaults().IconPosition)
	assert.Equal(t, IconStart, Props{Kind: KindCell, IconPosition: IconStart}.WithDefaults().IconPosition)
	assert.False(t, Props{Animate: Bool(false)}.WithDefaults().Animated())
}

func TestIconSlotPriority(t *testing.T) {
	custom := markup.El("i")
	tests := []struct {
		name  string
		props Props
		want  IconSlot
	}{
		{"nothing", Props{Kind: KindPrimary}, SlotNone},
		{"loading beats icon", Props{Kind: KindPrimary, IsLoading: true, Icon: primitives.IconAdd}, SlotSpinner},
		{"loading beats cell default", Props{Kind: KindCell, IsLoading: true}, SlotSpinner},
		{"explicit icon", Props{Kind: KindOutline, Icon: primitives.IconAdd}, SlotNamed},
		{"cell always named", Props{Kind: KindCell}, SlotNamed},
		{"named beats custom", Props{Kind: KindPrimary, Icon: primitives.IconAdd, IconOptions: IconOptions{Custom: custom}}, SlotNamed},
		{"custom", Props{Kind: KindPrimary, IconOptions: IconOptions{Custom: custom}}, SlotCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIconSlot(tt.props.WithDefaults()))
		})
	}
}

func TestCellDefaultsToArrowIcon(t *testing.T) {
	root := Render(Props{Kind: KindCell, Label: "Next"})
	icon := root.Find(markup.ByAttr("data-icon", string(primitives.IconArrowRight)))
	require.NotNil(t, icon)
	kind, _ := icon.Attr("data-icon-kind")
	assert.Equal(t, string(primitives.IconKindOutline), kind)

	root = Render(Props{Kind: KindCell, Label: "Add", Icon: primitives.IconAdd})
	assert.NotNil(t, root.Find(markup.ByAttr("data-icon", string(primitives.IconAdd))))
	assert.Nil(t, root.Find(markup.ByAttr("data-icon", string(primitives.IconArrowRight))))
}

func TestPrimaryDoesNotRequestIcon(t *testing.T) {
	root := Render(Props{Label: "Save"})
	assert.Empty(t, root.FindAll(markup.ByTag("svg")))
}

func TestIconIsTintedAndOptionsApplied(t *testing.T) {
	root := Render(Props{
		Icon:        primitives.IconCheck,
		Label:       "Done",
		IconOptions: IconOptions{ClassName: "h-5 w-5", Kind: primitives.IconKindDefault},
	})
	icon := root.Find(markup.ByTag("svg"))
	require.NotNil(t, icon)
	assert.Equal(t, cn.Fragment("dark:text-marble-950 dark:fill-marble-950 h-5 w-5"), icon.Class())
	kind, _ := icon.Attr("data-icon-kind")
	assert.Equal(t, "default", kind)
}

func TestLoadingShowsSpinner(t *testing.T) {
	root := Render(Props{Icon: primitives.IconAdd, IsLoading: true, Label: "Saving"})
	assert.NotNil(t, root.Find(markup.ByAttr("data-spinner", "true")))
	assert.Nil(t, root.Find(markup.ByAttr("data-icon", string(primitives.IconAdd))))
	assert.False(t, root.Disabled())
}

func TestLabelResolution(t *testing.T) {
	t.Run("text is tinted", func(t *testing.T) {
		root := Render(Props{Label: "Save"})
		span := root.Find(markup.ByTag("span"))
		require.NotNil(t, span)
		assert.Equal(t, labelOnBrand, span.Class())
	})

	t.Run("node passes through", func(t *testing.T) {
		node := markup.El("strong", markup.Text("Bold"))
		root := Render(Props{LabelNode: node})
		assert.Same(t, node, root.Find(markup.ByTag("strong")))
		assert.Empty(t, node.Class())
	})

	t.Run("children fallback", func(t *testing.T) {
		root := Render(Props{Children: []*markup.Node{markup.Text("one"), markup.Text(" two")}})
		assert.Equal(t, "one two", root.TextContent())
	})

	t.Run("string wins over node", func(t *testing.T) {
		root := Render(Props{Label: "text", LabelNode: markup.El("strong")})
		assert.Nil(t, root.Find(markup.ByTag("strong")))
	})
}

func TestElementSelection(t *testing.T) {
	t.Run("link when enabled with href", func(t *testing.T) {
		root := Render(Props{ID: "go", Href: "/docs", Rel: "noopener", Target: "_blank", Label: "Docs"})
		assert.Equal(t, "a", root.Tag)
		href, _ := root.Attr("href")
		assert.Equal(t, "/docs", href)
		rel, _ := root.Attr("rel")
		assert.Equal(t, "noopener", rel)
		target, _ := root.Attr("target")
		assert.Equal(t, "_blank", target)
	})

	t.Run("button when disabled with href", func(t *testing.T) {
		root := Render(Props{Href: "/docs", Disabled: true, Label: "Docs", Type: TypeSubmit})
		assert.Equal(t, "button", root.Tag)
		assert.False(t, root.HasAttr("href"))
		assert.True(t, root.Disabled())
		typ, _ := root.Attr("type")
		assert.Equal(t, "submit", typ)
	})

	t.Run("button without href", func(t *testing.T) {
		root := Render(Props{Label: "Go"})
		assert.Equal(t, "button", root.Tag)
		assert.False(t, root.HasAttr("type"))
		assert.False(t, root.HasAttr("disabled"))
	})

	t.Run("same inner content", func(t *testing.T) {
		link := Render(Props{Href: "/x", Label: "Go", Icon: primitives.IconAdd})
		btn := Render(Props{Label: "Go", Icon: primitives.IconAdd})
		linkHTML, err := markup.RenderString(markup.Fragment(link.Children...))
		require.NoError(t, err)
		btnHTML, err := markup.RenderString(markup.Fragment(btn.Children...))
		require.NoError(t, err)
		assert.Equal(t, btnHTML, linkHTML)
		assert.Equal(t, btn.Class(), link.Class())
	})
}

func TestClickHandling(t *testing.T) {
	var calls []string
	onClick := func() { calls = append(calls, "click") }
	navigate := func(href string) { calls = append(calls, "navigate "+href) }

	link := Render(Props{Href: "/next", OnClick: onClick}, WithNavigator(navigate))
	require.True(t, link.Click())
	assert.Equal(t, []string{"click", "navigate /next"}, calls)

	calls = nil
	btn := Render(Props{OnClick: onClick})
	require.True(t, btn.Click())
	assert.Equal(t, []string{"click"}, calls)

	calls = nil
	disabled := Render(Props{Href: "/next", Disabled: true, OnClick: onClick}, WithNavigator(navigate))
	assert.False(t, disabled.Click())
	assert.Empty(t, calls)
}

func TestAnimatedPaddingIff(t *testing.T) {
	for _, animate := range []bool{false, true} {
		for _, withIcon := range []bool{false, true} {
			for _, disabled := range []bool{false, true} {
				p := Props{Kind: KindPrimary, Label: "Go", Animate: Bool(animate), Disabled: disabled}
				if withIcon {
					p.Icon = primitives.IconAdd
				}
				wrapper := Render(p).Find(func(n *markup.Node) bool {
					return n.Tag == "div"
				})
				require.NotNil(t, wrapper)

				want := animate && withIcon && !disabled
				assert.Equal(t, want, wrapper.Class().Has("pl-4"), "animate=%v icon=%v disabled=%v", animate, withIcon, disabled)
				assert.Equal(t, want, wrapper.Class().Has("transition-spacing"), "animate=%v icon=%v disabled=%v", animate, withIcon, disabled)
			}
		}
	}
}

func TestStandardLayoutOrder(t *testing.T) {
	start := Render(Props{Label: "Go", Icon: primitives.IconAdd})
	require.Len(t, start.Children, 2)
	assert.Equal(t, "svg", start.Children[0].Tag)
	assert.Equal(t, "div", start.Children[1].Tag)

	end := Render(Props{Label: "Go", Icon: primitives.IconAdd, IconPosition: IconEnd})
	require.Len(t, end.Children, 2)
	assert.Equal(t, "div", end.Children[0].Tag)
	assert.Equal(t, "svg", end.Children[1].Tag)
	assert.True(t, end.Children[0].Class().Has("pr-4"))
	assert.True(t, end.Children[0].Class().Has("group-hover:pr-2"))
}

func cellBlocks(t *testing.T, root *markup.Node) []*markup.Node {
	t.Helper()
	require.Len(t, root.Children, 1)
	blocks := root.Children[0].Flatten()
	require.Len(t, blocks, 4)
	return blocks
}

func TestCellLayoutEnd(t *testing.T) {
	root := Render(Props{Kind: KindCell, Theme: ThemeCoral, Label: "Next"})
	blocks := cellBlocks(t, root)

	label, right, left, icon := blocks[0], blocks[1], blocks[2], blocks[3]
	assert.Equal(t, "Next", label.TextContent())
	assert.True(t, label.Class().Has("rounded-l-md"))
	assert.False(t, icon.Class().Has("rounded-l-md"))
	assert.True(t, icon.Class().Has("rounded-r-md"))
	assert.NotNil(t, icon.Find(markup.ByTag("svg")))

	side, _ := right.Attr("data-bevel")
	assert.Equal(t, "right", side)
	side, _ = left.Attr("data-bevel")
	assert.Equal(t, "left", side)
	assert.True(t, right.Class().Has("-scale-y-100"))
	assert.True(t, left.Class().Has("-scale-y-100"))
	assert.True(t, right.Class().Has("fill-coral-700"))
	assert.True(t, icon.Class().Has("group-hover:pl-2"))
}

func TestCellLayoutStart(t *testing.T) {
	root := Render(Props{Kind: KindCell, Label: "Back", IconPosition: IconStart, Icon: primitives.IconArrowLeft})
	blocks := cellBlocks(t, root)

	icon, right, left, label := blocks[0], blocks[1], blocks[2], blocks[3]
	assert.True(t, icon.Class().Has("rounded-l-md"))
	assert.True(t, label.Class().Has("rounded-r-md"))
	assert.False(t, label.Class().Has("rounded-l-md"))

	side, _ := right.Attr("data-bevel")
	assert.Equal(t, "right", side)
	side, _ = left.Attr("data-bevel")
	assert.Equal(t, "left", side)
	assert.False(t, right.Class().Has("-scale-y-100"))
	assert.True(t, label.Class().Has("group-hover:pr-2"))
}

func TestCellRootHasNoBackground(t *testing.T) {
	root := Render(Props{Kind: KindCell, Label: "Go", Stretch: true})
	assert.Equal(t, cn.Fragment("group select-none"), root.Class())
}

func TestCellDisabledDanger(t *testing.T) {
	assert.Equal(t, cn.Fragment("fill-volcanic-600"), CellAccentStyle(ThemeDanger, true))
	assert.Equal(t, cn.Fragment("bg-volcanic-600"), ButtonStyle(KindCell, ThemeDanger, true))

	root := Render(Props{Kind: KindCell, Theme: ThemeDanger, Disabled: true, Label: "Delete"})
	html, err := markup.RenderString(root)
	require.NoError(t, err)
	assert.NotContains(t, html, "danger")
	assert.Contains(t, html, "fill-volcanic-600")
	assert.Contains(t, html, "bg-volcanic-600")
	assert.NotContains(t, html, "transition-spacing")
	assert.True(t, root.Class().Has("cursor-not-allowed"))
}

func TestRootClassComposition(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  cn.Fragment
	}{
		{"primary", Props{}, "group select-none bg-blue-500 group-hover:bg-blue-400 px-5"},
		{"stretch", Props{Stretch: true}, "group select-none bg-blue-500 group-hover:bg-blue-400 w-full px-5"},
		{"secondary no padding", Props{Kind: KindSecondary}, "group select-none"},
		{"disabled", Props{Disabled: true}, "group select-none cursor-not-allowed bg-volcanic-600 px-5"},
		{"caller overrides last", Props{ClassName: "px-2 bg-coral-700"}, "group select-none group-hover:bg-blue-400 px-2 bg-coral-700"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RootClass(tt.props.WithDefaults()))
		})
	}
}

func TestRenderPrimaryBlueHTML(t *testing.T) {
	got, err := markup.RenderString(Render(Props{Label: "Save"}))
	require.NoError(t, err)
	assert.Equal(t,
		`<button class="group select-none bg-blue-500 group-hover:bg-blue-400 px-5"><div><span class="dark:text-marble-950 dark:fill-marble-950">Save</span></div></button>`,
		got)
}

func TestRenderIsDeterministic(t *testing.T) {
	props := Props{Kind: KindCell, Theme: ThemeEvolvedQuartz, Label: "Go", Href: "/go", ID: "go"}
	first, err := markup.RenderString(Render(props))
	require.NoError(t, err)
	for range 5 {
		again, err := markup.RenderString(Render(props))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

type recordingIcons struct {
	names []primitives.IconName
}

func (r *recordingIcons) Icon(name primitives.IconName, kind primitives.IconKind, class cn.Fragment) *markup.Node {
	r.names = append(r.names, name)
	return markup.El("i").SetAttr("data-icon", string(name))
}

func TestWithIconsReplacesRenderer(t *testing.T) {
	icons := &recordingIcons{}
	Render(Props{Kind: KindCell, Label: "Go"}, WithIcons(icons))
	assert.Equal(t, []primitives.IconName{primitives.IconArrowRight}, icons.names)
}
