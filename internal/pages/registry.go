package pages

import (
	"sort"

	"github.com/lodestone-studio/lodestone/internal/routes"
)

type staticContent struct {
	title string
	body  string
}

var static = map[string]staticContent{
	"/design": {
		title: "Design",
		body: "Design at Lodestone starts from **tokens**: colour, spacing, type and motion " +
			"are named once and reused everywhere.\n\n" +
			"- Atoms are the smallest pieces: buttons, links, icons.\n" +
			"- Molecules combine atoms into menus and link rows.\n" +
			"- Organisms assemble whole sections of a page.",
	},
	"/art": {
		title: "Art",
		body:  "Prints, studies and experiments made alongside the design work.",
	},
	"/philosophy": {
		title: "Philosophy",
		body: "A lodestone is a naturally magnetised rock. It points the way without " +
			"being asked to.\n\nWe aim for interfaces that do the same: quiet, consistent " +
			"and easy to find your way through.",
	},
	"/projects": {
		title: "Projects",
		body:  "Every project is listed on the home page. Pick one from the grid to read more.",
	},
	"/about": {
		title: "About",
		body:  "Lodestone is a small studio for design, art and the systems between them.",
	},
	"/contact": {
		title: "Contact",
		body:  "Write to `hello@lodestone.studio`.",
	},
}

// NotFoundTitle is the heading of pages for unknown paths.
const NotFoundTitle = "Not found"

// New builds the page for path: the home page at "/", a static page for the
// other known routes, and a not found page otherwise.
func New(path string, opts Options) Page {
	path = routes.Normalize(path)
	if path == routes.Home {
		return NewHomePage(opts)
	}
	if content, ok := static[path]; ok {
		return NewStaticPage(path, content.title, content.body, opts)
	}
	return NewStaticPage(path, NotFoundTitle, "Nothing lives at `"+path+"`. Follow a link above to continue.", opts)
}

// Paths returns every path with a dedicated page, sorted.
func Paths() []string {
	out := []string{routes.Home}
	for path := range static {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}
