package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lodestone-studio/lodestone/internal/config"
	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/ui"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
	"github.com/lodestone-studio/lodestone/internal/ui/molecules"
	"github.com/lodestone-studio/lodestone/internal/ui/organisms"
)

type specimen struct {
	name string
	view ui.Renderable
}

type gallerySection struct {
	name      string
	specimens func() []specimen
}

var gallerySections = []gallerySection{
	{name: "atoms", specimens: atomSpecimens},
	{name: "molecules", specimens: moleculeSpecimens},
	{name: "organisms", specimens: organismSpecimens},
}

func newGalleryCmd(v *viper.Viper) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:       "gallery [section...]",
		Short:     "Render every component of the design system",
		ValidArgs: []string{"atoms", "molecules", "organisms"},
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			theme, err := cfg.Theme.Build()
			if err != nil {
				return err
			}
			ctx := components.NewContext(theme, resolveWidth(width, cmd.OutOrStdout()))
			return renderGallery(cmd.OutOrStdout(), ctx, args)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "render width in cells (default: terminal width, or 80)")
	return cmd
}

func renderGallery(out io.Writer, ctx components.RenderContext, only []string) error {
	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}

	label := components.NewBaseComponent()
	for _, section := range gallerySections {
		if len(want) > 0 && !want[section.name] {
			continue
		}
		title := atoms.NewHeading(2, strings.ToUpper(section.name[:1])+section.name[1:]).ViewWithContext(ctx)
		if _, err := fmt.Fprintf(out, "%s\n\n", title); err != nil {
			return err
		}
		for _, s := range section.specimens() {
			name := label.StyleForClass(ctx.Theme, "list-item-secondary").Render(s.name)
			body := components.Render(s.view, ctx)
			if _, err := fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left, name, body, "")); err != nil {
				return err
			}
		}
	}
	return nil
}

func atomSpecimens() []specimen {
	return []specimen{
		{"Button", atoms.NewButton("Continue")},
		{"Button (outline, small)", atoms.NewButton("Cancel").WithStyleType(atoms.StyleOutline).WithSize(atoms.SizeSmall)},
		{"Button (disabled)", atoms.NewButton("Unavailable").WithDisabled(true)},
		{"IconButton", atoms.NewIconButton("search", "Search")},
		{"FloatingActionButton", atoms.NewFloatingActionButton("plus", "Add")},
		{"MenuToggle", atoms.NewMenuToggle()},
		{"Checkbox", atoms.NewCheckbox("news", "Send me news").WithChecked(true)},
		{"RadioButton", atoms.NewRadioButton("size", "m", "Medium")},
		{"ToggleSwitch", atoms.NewToggleSwitch("Dark mode")},
		{"DropdownSelect", atoms.NewDropdownSelect(atoms.Option{Label: "Print", Value: "print"}, atoms.Option{Label: "Digital", Value: "digital"})},
		{"TextField", atoms.NewTextField("email", "you@example.com").WithType(atoms.FieldEmail)},
		{"TextArea", atoms.NewTextArea("message", "Say hello")},
		{"Heading", atoms.NewHeading(1, "Heading one")},
		{"BodyText", atoms.NewBodyText("Body copy set in the base text style.")},
		{"Link", atoms.NewLink("/about", "About the studio")},
		{"NavLink", atoms.NewNavLink("/art", "Art").WithActive(true)},
		{"Tab", atoms.NewTab("overview", "Overview", "overview")},
		{"Breadcrumb", atoms.NewBreadcrumb(
			atoms.BreadcrumbItem{Label: "Home", Path: routes.Home},
			atoms.BreadcrumbItem{Label: "Art", Path: "/art", Active: true},
		)},
		{"Icon", atoms.NewIcon("star")},
		{"Image", atoms.NewImage(organisms.DefaultShowcaseImage, "Studio print")},
		{"LogoPlaceholder", atoms.NewLogoPlaceholder(organisms.Brand)},
		{"ListItem", atoms.NewListItem("Lodestone").WithSecondary("A naturally magnetised rock").WithIcon("info")},
		{"Divider", atoms.NewDivider()},
		{"GridLayout", atoms.NewGridLayout(3, atoms.NewIcon("home"), atoms.NewIcon("cart"), atoms.NewIcon("check"))},
	}
}

func moleculeSpecimens() []specimen {
	items := []molecules.MenuItemData{
		{Label: "Design", Link: "/design"},
		{Label: "Art", Link: "/art"},
	}
	open := molecules.NewDropdownMenu(items...)
	open.Toggle()

	return []specimen{
		{"MenuItem", molecules.NewMenuItem(items[0])},
		{"DropdownMenu (closed)", molecules.NewDropdownMenu(items...)},
		{"DropdownMenu (open)", open},
		{"MegaDropdownMenu", molecules.NewMegaDropdownMenu(
			molecules.DropdownCategory{Title: "Work", Items: items},
			molecules.DropdownCategory{Title: "Studio", Items: []molecules.MenuItemData{{Label: "About", Link: "/about"}}},
		)},
		{"NavLinksCollection", molecules.NewNavLinksCollection(
			molecules.NavLinkData{Href: "/design", Label: "Design", Active: true},
			molecules.NavLinkData{Href: "/art", Label: "Art"},
		)},
		{"ShopCTAButton", molecules.NewShopCTAButton("Shop")},
	}
}

func organismSpecimens() []specimen {
	projects := organisms.Showcases([]organisms.Project{
		{ID: 1, Title: "Wayfinding", Description: "Signage for a harbour museum."},
		{ID: 2, Title: "Field notes", Description: "A printed journal."},
	})
	return []specimen{
		{"HorizontalNavigationBar", organisms.NewHorizontalNavigationBar("/design")},
		{"Breadcrumbs", organisms.NewBreadcrumbs("/projects/wayfinding")},
		{"HomeHero", organisms.NewHomeHero("Lodestone", "Design, art and the systems between them.", "Explore Projects")},
		{"ProjectShowcase", projects[0]},
		{"OrganismGrid", organisms.NewOrganismGrid(organisms.Renderables(projects)...)},
	}
}
