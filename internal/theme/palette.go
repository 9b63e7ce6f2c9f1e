package theme

import "hospital-admin-core/internal/models"

// Palette is the set of colours the presentation layer derives from the
// resolved scheme.
type Palette struct {
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Border     string `json:"border"`
}

var palettes = map[models.Scheme]Palette{
	models.SchemeLight: {
		Background: "#f8fafc",
		Surface:    "#ffffff",
		Text:       "#0f172a",
		Muted:      "#64748b",
		Primary:    "#2563eb",
		Accent:     "#0ea5e9",
		Border:     "#e2e8f0",
	},
	models.SchemeDark: {
		Background: "#0f172a",
		Surface:    "#1e293b",
		Text:       "#f1f5f9",
		Muted:      "#94a3b8",
		Primary:    "#3b82f6",
		Accent:     "#38bdf8",
		Border:     "#334155",
	},
}

// PaletteFor returns the palette for the given scheme, defaulting to light.
func PaletteFor(scheme models.Scheme) Palette {
	if p, ok := palettes[scheme]; ok {
		return p
	}
	return palettes[models.SchemeLight]
}
