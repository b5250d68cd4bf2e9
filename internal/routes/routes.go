// Package routes holds the fixed route table of the site and the helpers that
// derive navigation state from the current path: which link is active and
// the breadcrumb trail.
package routes

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Home is the root path.
const Home = "/"

// Route is one page reachable from the site chrome.
type Route struct {
	Path  string
	Label string
}

var (
	primary = []Route{
		{Path: "/design", Label: "Design"},
		{Path: "/art", Label: "Art"},
		{Path: "/philosophy", Label: "Philosophy"},
	}
	secondary = []Route{
		{Path: "/projects", Label: "Projects"},
		{Path: "/about", Label: "About"},
		{Path: "/contact", Label: "Contact"},
	}
)

// Primary returns the header navigation routes in display order.
func Primary() []Route {
	return append([]Route(nil), primary...)
}

// Secondary returns the footer routes in display order.
func Secondary() []Route {
	return append([]Route(nil), secondary...)
}

// All returns home followed by the primary and secondary routes.
func All() []Route {
	out := make([]Route, 0, 1+len(primary)+len(secondary))
	out = append(out, Route{Path: Home, Label: "Home"})
	out = append(out, primary...)
	return append(out, secondary...)
}

// Lookup finds the route registered for path.
func Lookup(path string) (Route, bool) {
	path = Normalize(path)
	for _, r := range All() {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Known reports whether path is in the route table.
func Known(path string) bool {
	_, ok := Lookup(path)
	return ok
}

// Normalize drops the query and fragment, ensures a leading slash and
// removes trailing slashes. The empty path is home.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// Segments splits a path into its non-empty segments.
func Segments(path string) []string {
	parts := strings.Split(Normalize(path), "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CurrentPage returns the first segment of path ("design" for /design/x),
// or "" at home.
func CurrentPage(path string) string {
	segments := Segments(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}

// IsActive reports whether a link to href should be marked active while
// current is shown. Home is only active on the home page itself.
func IsActive(current, href string) bool {
	current, href = Normalize(current), Normalize(href)
	if href == Home {
		return current == Home
	}
	return current == href || strings.HasPrefix(current, href+"/")
}

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Label  string
	Path   string
	Active bool
}

// Trail builds the breadcrumb trail for path: Home, then one crumb per
// segment. The last crumb is active.
func Trail(path string) []Crumb {
	segments := Segments(path)
	trail := make([]Crumb, 0, len(segments)+1)
	trail = append(trail, Crumb{Label: "Home", Path: Home})

	prefix := ""
	for _, segment := range segments {
		prefix += "/" + segment
		trail = append(trail, Crumb{Label: Capitalize(segment), Path: prefix})
	}
	trail[len(trail)-1].Active = true
	return trail
}

// Capitalize upper-cases the first letter of a path segment.
func Capitalize(segment string) string {
	r, size := utf8.DecodeRuneInString(segment)
	if r == utf8.RuneError {
		return segment
	}
	return string(unicode.ToUpper(r)) + segment[size:]
}
