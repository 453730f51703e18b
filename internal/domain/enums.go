package domain

type WorkType string

const (
	WorkInHouse       WorkType = "in-house"
	WorkSubcontractor WorkType = "subcontractor"
)

// ValidWorkTypes is the canonical set of accepted work type strings.
var ValidWorkTypes = map[string]bool{
	"in-house": true, "subcontractor": true,
}

// DefaultPhaseColors is the palette offered when creating a phase.
// Any hex color is accepted; these are just the suggested ones.
var DefaultPhaseColors = []string{
	"#4a90d9", "#8ec07c", "#fabd2f", "#fe8019", "#d3869b", "#fb4934", "#83a598",
}
