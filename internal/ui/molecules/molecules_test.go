package molecules

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

func TestNavLinksCollectionPreservesOrder(t *testing.T) {
	t.Parallel()

	data := []NavLinkData{
		{Href: "/philosophy", Label: "Philosophy"},
		{Href: "/design", Label: "Design", Active: true},
		{Href: "/design", Label: "Design"},
	}
	collection := NewNavLinksCollection(data...)

	links := collection.Links()
	require.Len(t, links, len(data))
	for i, link := range links {
		assert.Equal(t, data[i].Href, link.Href())
		assert.Equal(t, data[i].Label, link.Label())
		assert.Equal(t, data[i].Active, link.Active())
	}
	assert.Len(t, collection.Focusables(), 3)
	assert.Equal(t, components.RoleList, collection.Role())

	view := collection.View()
	assert.Less(t, strings.Index(view, "Philosophy"), strings.Index(view, "Design"))
}

func TestNavLinksCollectionEmpty(t *testing.T) {
	t.Parallel()

	collection := NewNavLinksCollection()
	assert.Empty(t, collection.Links())
	assert.NotPanics(t, func() { _ = collection.View() })
}

func TestNavLinksCollectionNavigate(t *testing.T) {
	t.Parallel()

	var got []string
	collection := NewNavLinksCollection(
		NavLinkData{Href: "/art", Label: "Art"},
		NavLinkData{Href: "/design", Label: "Design"},
	).OnNavigate(func(href string) { got = append(got, href) })

	for _, link := range collection.Links() {
		link.Click()
	}
	assert.Equal(t, []string{"/art", "/design"}, got)
}

func TestDropdownMenuToggle(t *testing.T) {
	t.Parallel()

	var states []bool
	menu := NewDropdownMenu(
		MenuItemData{Label: "Prints", Link: "/shop/prints"},
		MenuItemData{Label: "Books", Link: "/shop/books", Icon: "star"},
	).OnToggle(func(open bool) { states = append(states, open) })

	closed := menu.View()
	assert.Contains(t, closed, "Menu ▼")
	assert.NotContains(t, closed, "Prints")

	menu.Click()
	open := menu.View()
	assert.True(t, menu.IsOpen())
	assert.Contains(t, open, "Prints")
	assert.Contains(t, open, "★ Books")
	assert.Less(t, strings.Index(open, "Prints"), strings.Index(open, "Books"))

	menu.Click()
	assert.False(t, menu.IsOpen())
	assert.Equal(t, []bool{true, false}, states)
}

func TestDropdownMenuKeyboard(t *testing.T) {
	t.Parallel()

	var clicked, navigated string
	menu := NewDropdownMenu(
		MenuItemData{Label: "Prints", Link: "/shop/prints"},
		MenuItemData{Label: "Books", Link: "/shop/books", OnClick: func() { clicked = "books" }},
	).OnNavigate(func(href string) { navigated = href })

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	down := tea.KeyMsg{Type: tea.KeyDown}

	menu.Update(enter)
	assert.False(t, menu.IsOpen(), "unfocused menus ignore keys")

	menu.Focus()
	menu.Update(enter)
	require.True(t, menu.IsOpen())
	menu.Update(down)
	menu.Update(down)
	menu.Update(down)
	menu.Update(enter)

	assert.False(t, menu.IsOpen())
	assert.Equal(t, "books", clicked)
	assert.Equal(t, "/shop/books", navigated)

	menu.Update(enter)
	menu.Blur()
	assert.False(t, menu.IsOpen())
}

func TestMegaDropdownMenu(t *testing.T) {
	t.Parallel()

	menu := NewMegaDropdownMenu(
		DropdownCategory{Title: "Design", Items: []MenuItemData{{Label: "Type"}, {Label: "Colour"}}},
		DropdownCategory{Title: "Art", Items: []MenuItemData{{Label: "Prints"}}},
	)

	assert.Equal(t, []string{"Design", "Art"}, menu.Categories())
	require.Len(t, menu.Items(0), 2)
	assert.Equal(t, "Colour", menu.Items(0)[1].Label())
	assert.Len(t, menu.Items(1), 1)
	assert.Nil(t, menu.Items(5))

	view := menu.View()
	for _, want := range []string{"Design", "Type", "Colour", "Art", "Prints"} {
		assert.Contains(t, view, want)
	}
}

func TestMenuItemClick(t *testing.T) {
	t.Parallel()

	var order []string
	item := NewMenuItem(MenuItemData{Label: "About", Link: "/about", OnClick: func() { order = append(order, "click") }}).
		OnNavigate(func(href string) { order = append(order, href) })
	item.Click()
	assert.Equal(t, []string{"click", "/about"}, order)
	assert.Equal(t, components.RoleListItem, item.Role())

	assert.NotPanics(t, NewMenuItem(MenuItemData{Label: "Plain"}).Click)
}

func TestShopCTAButton(t *testing.T) {
	t.Parallel()

	cta := NewShopCTAButton("Shop")
	assert.Equal(t, "btn medium primary shop-cta", cta.ClassName())
	assert.Equal(t, components.RoleButton, cta.Role())
	assert.Contains(t, cta.View(), "Shop")
}
