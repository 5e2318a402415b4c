// Package brand holds the static registry of supported tool brands. Each
// brand carries the pack voltages it sells and the color palette the web UI
// is themed with when that brand is selected.
package brand

import "sort"

// Palette is the set of color tokens a brand theme is built from. Values
// are emitted verbatim into CSS custom properties.
type Palette struct {
	Primary     string
	Bright      string
	Dim         string
	Dark        string
	Ghost       string
	Glow        string
	TextOnBrand string
}

// Brand is one entry in the registry.
type Brand struct {
	// Voltages are the pack voltages this brand sells, ascending.
	Voltages []int
	Palette  Palette
}

// DefaultName is used when no brand has been selected yet.
const DefaultName = "Makita"

// registry is fixed at compile time. Only the *selected* brand name is
// runtime state (a persisted setting), never the registry itself.
var registry = map[string]Brand{
	"Makita": {
		Voltages: []int{12, 18, 40},
		Palette: Palette{
			Primary:     "#00b2a9",
			Bright:      "#00cec3",
			Dim:         "#008a83",
			Dark:        "#1b2d2b",
			Ghost:       "rgba(0, 178, 169, 0.08)",
			Glow:        "rgba(0, 178, 169, 0.22)",
			TextOnBrand: "#ffffff",
		},
	},
	"DeWalt": {
		Voltages: []int{12, 20, 60},
		Palette: Palette{
			Primary:     "#febd17",
			Bright:      "#ffd54f",
			Dim:         "#d49a00",
			Dark:        "#1a1a1a",
			Ghost:       "rgba(254, 189, 23, 0.10)",
			Glow:        "rgba(254, 189, 23, 0.25)",
			TextOnBrand: "#1a1a1a",
		},
	},
	"Milwaukee": {
		Voltages: []int{12, 18},
		Palette: Palette{
			Primary:     "#db0032",
			Bright:      "#ff1744",
			Dim:         "#b0002a",
			Dark:        "#1a1a1a",
			Ghost:       "rgba(219, 0, 50, 0.08)",
			Glow:        "rgba(219, 0, 50, 0.22)",
			TextOnBrand: "#ffffff",
		},
	},
	"AEG": {
		Voltages: []int{12, 18},
		Palette: Palette{
			Primary:     "#ff6600",
			Bright:      "#ff8533",
			Dim:         "#cc5200",
			Dark:        "#1a1a1a",
			Ghost:       "rgba(255, 102, 0, 0.08)",
			Glow:        "rgba(255, 102, 0, 0.22)",
			TextOnBrand: "#ffffff",
		},
	},
	"Ryobi": {
		Voltages: []int{18, 36, 40},
		Palette: Palette{
			Primary:     "#9bc53d",
			Bright:      "#b0d95f",
			Dim:         "#7da32e",
			Dark:        "#1a1a1a",
			Ghost:       "rgba(155, 197, 61, 0.10)",
			Glow:        "rgba(155, 197, 61, 0.25)",
			TextOnBrand: "#1a1a1a",
		},
	},
	"Bosch": {
		Voltages: []int{12, 18},
		Palette: Palette{
			Primary:     "#005ca9",
			Bright:      "#0077cc",
			Dim:         "#004080",
			Dark:        "#0d1b2a",
			Ghost:       "rgba(0, 92, 169, 0.08)",
			Glow:        "rgba(0, 92, 169, 0.22)",
			TextOnBrand: "#ffffff",
		},
	},
	"Hikoki": {
		Voltages: []int{18, 36},
		Palette: Palette{
			Primary:     "#00a651",
			Bright:      "#00c965",
			Dim:         "#008040",
			Dark:        "#0d1f12",
			Ghost:       "rgba(0, 166, 81, 0.08)",
			Glow:        "rgba(0, 166, 81, 0.22)",
			TextOnBrand: "#ffffff",
		},
	},
}

// Get returns the named brand. ok is false if the name is not registered.
func Get(name string) (Brand, bool) {
	b, ok := registry[name]
	return b, ok
}

// GetOrDefault returns the named brand, falling back to the default brand
// for unknown names (e.g. a stale setting after a registry change).
func GetOrDefault(name string) Brand {
	if b, ok := registry[name]; ok {
		return b
	}
	return registry[DefaultName]
}

// IsValid reports whether name is a registered brand.
func IsValid(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the registered brand names, sorted for stable iteration in
// templates.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VoltagesFor returns the voltage options to offer when editing a battery:
// the brand's own voltages plus the battery's current voltage, deduplicated
// and ascending. A battery bought under a since-changed brand keeps its
// legacy voltage selectable instead of being silently reassigned.
func VoltagesFor(b Brand, current int) []int {
	out := make([]int, 0, len(b.Voltages)+1)
	seen := map[int]bool{}
	for _, v := range append(append([]int{}, b.Voltages...), current) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
