package event

// PaletteColor pairs a color token with its display hex value. Tokens are
// cosmetic only; the set is closed.
type PaletteColor struct {
	Token string
	Hex   string
}

// DefaultColor is applied when a draft omits the color field.
const DefaultColor = "blue"

var palette = []PaletteColor{
	{Token: "blue", Hex: "#3B82F6"},
	{Token: "green", Hex: "#10B981"},
	{Token: "purple", Hex: "#8B5CF6"},
	{Token: "pink", Hex: "#EC4899"},
	{Token: "orange", Hex: "#F97316"},
	{Token: "red", Hex: "#EF4444"},
	{Token: "yellow", Hex: "#EAB308"},
	{Token: "indigo", Hex: "#6366F1"},
	{Token: "teal", Hex: "#14B8A6"},
	{Token: "cyan", Hex: "#06B6D4"},
}

// Palette returns the fixed set of renderable colors.
func Palette() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// ValidColor reports whether token belongs to the palette.
func ValidColor(token string) bool {
	for _, c := range palette {
		if c.Token == token {
			return true
		}
	}
	return false
}
