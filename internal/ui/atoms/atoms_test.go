package atoms

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-studio/lodestone/internal/ui"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestAtomRolesMatchElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		element components.Element
		want    components.Role
	}{
		{"button", NewButton("Go"), components.RoleButton},
		{"icon button", NewIconButton("search", "Search"), components.RoleButton},
		{"fab", NewFloatingActionButton("plus", "Add"), components.RoleButton},
		{"menu toggle", NewMenuToggle(), components.RoleButton},
		{"icon", NewIcon("star"), components.RoleImage},
		{"image", NewImage("/a.png", "A picture"), components.RoleImage},
		{"logo", NewLogoPlaceholder("LODESTONE"), components.RoleAnchor},
		{"checkbox", NewCheckbox("terms", "Accept"), components.RoleInput},
		{"radio", NewRadioButton("size", "s", "Small"), components.RoleInput},
		{"toggle", NewToggleSwitch("Dark"), components.RoleInput},
		{"select", NewDropdownSelect(Option{Label: "One", Value: "1"}), components.RoleSelect},
		{"text field", NewTextField("email", "you@example.com"), components.RoleInput},
		{"text area", NewTextArea("notes", ""), components.RoleTextArea},
		{"divider", NewDivider(), components.RoleSeparator},
		{"list item", NewListItem("Row"), components.RoleListItem},
		{"grid", NewGridLayout(2), components.RoleContainer},
		{"nav link", NewNavLink("/art", "Art"), components.RoleAnchor},
		{"tab", NewTab("a", "A", "a"), components.RoleButton},
		{"breadcrumb", NewBreadcrumb(), components.RoleNav},
		{"link", NewLink("/about", "About"), components.RoleAnchor},
		{"heading", NewHeading(2, "Title"), components.RoleHeading},
		{"body text", NewBodyText("Hello"), components.RoleText},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.element.Role())
		})
	}
}

func TestAtomClassNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		element components.Element
		want    string
	}{
		{"button defaults", NewButton("Go"), "btn medium primary"},
		{"button props", NewButton("Go").WithSize(SizeLarge).WithStyleType(StyleOutline), "btn large outline"},
		{"button empty props", NewButton("Go").WithSize("").WithStyleType(""), "btn medium primary"},
		{"button disabled", NewButton("Go").WithDisabled(true), "btn medium primary disabled"},
		{"button extra class", NewButton("Go").WithClass("shop-cta"), "btn medium primary shop-cta"},
		{"icon button", NewIconButton("search", "Search").WithSize(SizeSmall), "icon-btn small primary"},
		{"fab", NewFloatingActionButton("plus", "Add"), "fab"},
		{"menu toggle", NewMenuToggle(), "menu-toggle-button"},
		{"icon", NewIcon("star").WithSize(SizeLarge), "icon icon-large"},
		{"checkbox", NewCheckbox("terms", "Accept").WithChecked(true), "checkbox checkbox-terms checked"},
		{"radio", NewRadioButton("size", "s", "Small"), "radio-button"},
		{"toggle", NewToggleSwitch(""), "toggle-switch"},
		{"nav link active", NewNavLink("/art", "Art").WithActive(true), "nav-link active"},
		{"tab inactive", NewTab("a", "A", "b"), "tab"},
		{"link visited", NewLink("/about", "About").WithVisited(true), "achromatic-link visited"},
		{"heading", NewHeading(3, "Title"), "heading h3"},
		{"heading clamped", NewHeading(9, "Title"), "heading h6"},
		{"image", NewImage("/a.png", "A"), "custom-image"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.element.ClassName())
		})
	}
}

type toggler interface {
	components.Element
	Click()
}

func TestTogglesFlipOnEachActivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func(record func(bool)) toggler
		offClass string
		onClass  string
	}{
		{
			name:     "menu toggle",
			build:    func(record func(bool)) toggler { return NewMenuToggle().OnToggle(record) },
			offClass: "menu-toggle-button",
			onClass:  "menu-toggle-button active",
		},
		{
			name:     "checkbox",
			build:    func(record func(bool)) toggler { return NewCheckbox("news", "News").OnChange(record) },
			offClass: "checkbox checkbox-news",
			onClass:  "checkbox checkbox-news checked",
		},
		{
			name:     "toggle switch",
			build:    func(record func(bool)) toggler { return NewToggleSwitch("Dark").OnChange(record) },
			offClass: "toggle-switch",
			onClass:  "toggle-switch on",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen []bool
			el := tt.build(func(v bool) { seen = append(seen, v) })
			assert.Equal(t, tt.offClass, el.ClassName())

			el.Click()
			assert.Equal(t, tt.onClass, el.ClassName())

			el.Click()
			assert.Equal(t, tt.offClass, el.ClassName())
			assert.Equal(t, []bool{true, false}, seen)
		})
	}
}

func TestTogglesWithoutHandler(t *testing.T) {
	t.Parallel()

	toggle := NewMenuToggle()
	assert.NotPanics(t, toggle.Toggle)
	assert.True(t, toggle.Active())

	assert.NotPanics(t, NewButton("Go").Click)
	assert.NotPanics(t, NewNavLink("/", "Home").Click)
}

func TestMenuToggleGlyph(t *testing.T) {
	t.Parallel()

	toggle := NewMenuToggle()
	assert.Contains(t, toggle.View(), Glyph("menu"))
	toggle.Toggle()
	assert.Contains(t, toggle.View(), Glyph("close"))
}

func TestButtonClick(t *testing.T) {
	t.Parallel()

	clicks := 0
	button := NewButton("Save").OnClick(func() { clicks++ })
	button.Click()
	assert.Equal(t, 1, clicks)

	button.WithDisabled(true).Click()
	assert.Equal(t, 1, clicks, "disabled buttons ignore clicks")
	assert.Contains(t, button.View(), "Save")
}

func TestKeysActivateOnlyWhenFocused(t *testing.T) {
	t.Parallel()

	var seen []bool
	toggle := NewToggleSwitch("Dark").OnChange(func(on bool) { seen = append(seen, on) })

	toggle.Update(enterKey)
	assert.Empty(t, seen)

	toggle.Focus()
	assert.Equal(t, "toggle-switch focus", toggle.ClassName())
	toggle.Update(enterKey)
	toggle.Update(spaceKey)
	toggle.Update(downKey)
	assert.Equal(t, []bool{true, false}, seen)

	toggle.Blur()
	toggle.Update(enterKey)
	assert.Len(t, seen, 2)
}

func TestRadioButtonReportsValue(t *testing.T) {
	t.Parallel()

	var got string
	radio := NewRadioButton("size", "m", "Medium").OnChange(func(v string) { got = v })
	assert.Contains(t, radio.View(), "( ) Medium")

	radio.Click()
	assert.Equal(t, "m", got)
	assert.True(t, radio.Checked())
	assert.Contains(t, radio.View(), "(•) Medium")
}

func TestDropdownSelect(t *testing.T) {
	t.Parallel()

	var changes []string
	sel := NewDropdownSelect(
		Option{Label: "Small", Value: "s"},
		Option{Label: "Medium", Value: "m"},
		Option{Label: "Large", Value: "l"},
	).OnChange(func(v string) { changes = append(changes, v) })

	assert.Equal(t, "s", sel.Value())
	assert.False(t, sel.IsOpen())
	assert.NotContains(t, sel.View(), "Medium")

	sel.Focus()
	sel.Update(enterKey)
	require.True(t, sel.IsOpen())
	assert.Contains(t, sel.View(), "Medium")

	sel.Update(downKey)
	sel.Update(enterKey)
	assert.False(t, sel.IsOpen())
	assert.Equal(t, "m", sel.Value())
	assert.Equal(t, []string{"m"}, changes)

	sel.Update(enterKey)
	sel.Update(escKey)
	assert.False(t, sel.IsOpen())

	sel.Select("missing")
	assert.Equal(t, "m", sel.Value())

	assert.Equal(t, "", NewDropdownSelect().Value())
}

func TestTextFieldTyping(t *testing.T) {
	t.Parallel()

	var got []string
	field := NewTextField("name", "Your name").OnChange(func(v string) { got = append(got, v) })

	field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Empty(t, got, "unfocused fields ignore keys")

	field.Focus()
	assert.Equal(t, "text-field input-focus", field.ClassName())
	field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	assert.Equal(t, "ab", field.Value())
	assert.Equal(t, []string{"a", "ab"}, got)
}

func TestTextFieldPasswordMasksValue(t *testing.T) {
	t.Parallel()

	field := NewTextField("pw", "").WithType(FieldPassword).WithValue("secret")
	assert.Equal(t, FieldPassword, field.Type())
	assert.Equal(t, "secret", field.Value())
	assert.NotContains(t, field.View(), "secret")
}

func TestTextAreaMaxLength(t *testing.T) {
	t.Parallel()

	var got string
	area := NewTextArea("notes", "Notes").WithMaxLength(4).OnChange(func(v string) { got = v })
	area.SetValue("abcdef")

	assert.Equal(t, 4, area.MaxLength())
	assert.Equal(t, "abcd", area.Value())
	assert.Equal(t, "abcd", got)
}

func TestGridLayoutWrapsRows(t *testing.T) {
	t.Parallel()

	children := []ui.Renderable{
		components.NewText("a"),
		components.NewText("b"),
		components.NewText("c"),
		components.NewText("d"),
	}
	grid := NewGridLayout(2, children...)
	assert.Len(t, grid.Children(), 4)

	view := grid.ViewWithContext(components.NewContext(components.DefaultTheme(), 20))
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "a"))
	assert.Contains(t, lines[0], "b")
	assert.Empty(t, strings.TrimSpace(lines[1]))
	assert.True(t, strings.HasPrefix(lines[2], "c"))
	assert.Contains(t, lines[2], "d")
}

func TestBreadcrumbRendersTrail(t *testing.T) {
	t.Parallel()

	crumb := NewBreadcrumb(
		BreadcrumbItem{Label: "Home", Path: "/"},
		BreadcrumbItem{Label: "Design", Path: "/design", Active: true},
	)
	assert.Contains(t, crumb.View(), "Home / Design")
	assert.Len(t, crumb.Items(), 2)
}

func TestListItemTruncates(t *testing.T) {
	t.Parallel()

	item := NewListItem("A rather long primary line").WithSecondary("secondary").WithIcon("star")
	view := item.ViewWithContext(components.NewContext(components.DefaultTheme(), 12))
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len([]rune(strings.TrimRight(line, " "))), 12)
	}
	assert.Contains(t, view, "…")
}

func TestLinkClickMarksVisited(t *testing.T) {
	t.Parallel()

	var href string
	link := NewLink("/about", "About").OnNavigate(func(h string) { href = h })
	link.Click()
	assert.Equal(t, "/about", href)
	assert.Equal(t, "achromatic-link visited", link.ClassName())
}

func TestGlyphFallsBackToName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "☰", Glyph("menu"))
	assert.Equal(t, "unknown", Glyph("unknown"))
}

func TestBodyTextMarkdown(t *testing.T) {
	t.Parallel()

	body := NewBodyText("# Title\n\nSome **bold** words.").WithMarkdown()
	view := body.ViewWithContext(components.NewContext(components.DefaultTheme(), 60))
	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "bold")

	plain := NewBodyText("plain words")
	assert.Contains(t, plain.View(), "plain words")
}
