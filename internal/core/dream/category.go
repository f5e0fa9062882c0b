// Package dream holds the dream record value type and the closed set of
// dream categories with their sentiment weights
package dream

import "strings"

// Category is one of the fixed dream themes
type Category string

// Declaration order is significant: it is the iteration order used when
// tallying categories, so it decides dominant theme ties.
const (
	Nightmare Category = "Nightmare"
	Surreal   Category = "Surreal"
	Romantic  Category = "Romantic"
	Prophetic Category = "Prophetic"
	Mundane   Category = "Mundane"
	Lucid     Category = "Lucid"
	Stress    Category = "Stress"
	Adventure Category = "Adventure"

	// None is reported as the dominant theme of a region without dreams
	None Category = "N/A"
)

// Info carries presentation metadata for a category
type Info struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Sentiment   float64  `json:"sentiment"`
}

var catalog = [...]Info{
	{Nightmare, "Fear, anxiety, or danger.", "#FF4444", -0.9},
	{Surreal, "Bizarre, logic-defying visuals.", "#D300FF", 0.2},
	{Romantic, "Love, connection, or longing.", "#FFC0CB", 0.9},
	{Prophetic, "Visions of the future or deep intuition.", "#00FFCC", 0.4},
	{Mundane, "Everyday life, normal events.", "#AAAAAA", 0.0},
	{Lucid, "Awareness and control within the dream.", "#FFD700", 0.8},
	{Stress, "Pressure, deadlines, or feelings of inadequacy.", "#FFA500", -0.7},
	{Adventure, "Exploration, flying, or epic journeys.", "#0088FF", 0.7},
}

// Count is the number of real categories (None excluded)
const Count = len(catalog)

// All returns the categories in declaration order
func All() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		out[i] = c.Category
	}
	return out
}

// Catalog returns a copy of the category metadata in declaration order
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog[:])
	return out
}

// Index returns the declaration position of c, or -1 for unknown values
func (c Category) Index() int {
	for i, info := range catalog {
		if info.Category == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is one of the declared categories
func (c Category) Valid() bool { return c.Index() >= 0 }

// Sentiment returns the fixed mood weight of c in [-1, 1]; unknown values weigh 0
func (c Category) Sentiment() float64 {
	if i := c.Index(); i >= 0 {
		return catalog[i].Sentiment
	}
	return 0
}

// String implements fmt.Stringer
func (c Category) String() string { return string(c) }

// Parse resolves a category name case-insensitively
func Parse(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, info := range catalog {
		if strings.EqualFold(string(info.Category), s) {
			return info.Category, true
		}
	}
	return "", false
}
