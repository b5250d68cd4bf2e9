package tokens

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminal geometry used to turn CSS lengths into cells.
const (
	PixelsPerCell = 8
	PixelsPerRem  = 16
)

// Cells converts a single CSS length ("16px", "1rem", "1.5em", "0") into
// terminal cells. Values that are not lengths report false.
func Cells(value string) (int, bool) {
	px, ok := Pixels(value)
	if !ok {
		return 0, false
	}
	return int(math.Round(px / PixelsPerCell)), true
}

// Pixels converts a single CSS length into pixels.
func Pixels(value string) (float64, bool) {
	v := strings.TrimSpace(strings.ToLower(value))
	switch v {
	case "":
		return 0, false
	case "0", "none":
		return 0, true
	}

	unit := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "rem"):
		v = strings.TrimSuffix(v, "rem")
		unit = PixelsPerRem
	case strings.HasSuffix(v, "em"):
		v = strings.TrimSuffix(v, "em")
		unit = PixelsPerRem
	default:
		return 0, false
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n * unit, true
}

// Box converts CSS shorthand ("0.5rem 1rem") into top, right, bottom, left
// cells following the usual one to four value expansion.
func Box(value string) ([4]int, bool) {
	var out [4]int
	parts := strings.Fields(value)
	if len(parts) == 0 || len(parts) > 4 {
		return out, false
	}
	cells := make([]int, len(parts))
	for i, part := range parts {
		c, ok := Cells(part)
		if !ok {
			return out, false
		}
		cells[i] = c
	}
	switch len(cells) {
	case 1:
		out = [4]int{cells[0], cells[0], cells[0], cells[0]}
	case 2:
		out = [4]int{cells[0], cells[1], cells[0], cells[1]}
	case 3:
		out = [4]int{cells[0], cells[1], cells[2], cells[1]}
	default:
		out = [4]int{cells[0], cells[1], cells[2], cells[3]}
	}
	return out, true
}

// Color converts "#rgb" or "#rrggbb" into a lipgloss colour. Keywords such as
// "transparent", rgba() and var() references are not terminal colours.
func Color(value string) (lipgloss.Color, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	hex := strings.ToUpper(v[1:])
	for _, r := range hex {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return "", false
		}
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return "", false
	}
	return lipgloss.Color("#" + hex), true
}

// Duration parses an animation duration such as "200ms".
func Duration(value string) (time.Duration, bool) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

// Weight parses a numeric or keyword font weight. Unknown values map to 400.
func Weight(value string) int {
	v := strings.TrimSpace(strings.ToLower(value))
	switch v {
	case "bold", "bolder":
		return 700
	case "normal", "":
		return 400
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 400
	}
	return n
}

// IsBold reports whether a font weight should render bold in a terminal.
func IsBold(value string) bool {
	return Weight(value) >= 600
}
