package engine

// ColorOption is one entry of the fixed task color palette.
type ColorOption struct {
	ID   string
	Name string
	Hex  string
}

var ColorOptions = []ColorOption{
	{ID: "red", Name: "Red", Hex: "#FF6B6B"},
	{ID: "orange", Name: "Orange", Hex: "#FF9E5E"},
	{ID: "yellow", Name: "Yellow", Hex: "#FFD93D"},
	{ID: "green", Name: "Green", Hex: "#50C878"},
	{ID: "teal", Name: "Teal", Hex: "#17A2B8"},
	{ID: "blue", Name: "Blue", Hex: "#4A90E2"},
	{ID: "purple", Name: "Purple", Hex: "#9B59B6"},
	{ID: "pink", Name: "Pink", Hex: "#E91E63"},
	{ID: "brown", Name: "Brown", Hex: "#8D6E63"},
	{ID: "gray", Name: "Gray", Hex: "#78909C"},
}

// DefaultColor is assigned to new tasks and filled in during the load-time
// migration of tasks saved before the color field existed.
var DefaultColor = ColorOptions[1].Hex // orange

// ColorByID resolves a palette id (or hex value) to the stored hex value.
// Unknown input falls back to the default color.
func ColorByID(id string) string {
	for _, c := range ColorOptions {
		if c.ID == id || c.Hex == id {
			return c.Hex
		}
	}
	return DefaultColor
}
