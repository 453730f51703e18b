package gantt

import (
	"sort"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// PhaseNode is a main phase with its attached sub-phases. Holding the
// children inside the main-phase node makes a third hierarchy level
// structurally impossible.
type PhaseNode struct {
	Phase    domain.Phase
	Children []domain.Phase
	Expanded bool
}

// Row is one horizontal slot in the timeline: a visible phase plus its
// depth (0 for main phases, 1 for sub-phases). The sidebar and the grid
// both derive their vertical positions from the same row slice, so a
// task bar can never drift from its phase label.
type Row struct {
	Phase domain.Phase
	Depth int
}

// BuildTree turns a flat phase list into the two-level hierarchy.
// Main phases are sorted by Order (ties keep list order); each main
// phase carries its children sorted the same way and an Expanded flag
// from the expansion set. Sub-phases whose parent is absent from the
// list are dropped; this is expected when view-mode filtering hides
// the parent.
func BuildTree(phases []domain.Phase, expanded map[string]bool) []PhaseNode {
	byParent := make(map[string][]domain.Phase)
	var mains []domain.Phase
	for _, p := range phases {
		if p.IsMain() {
			mains = append(mains, p)
		} else {
			byParent[*p.ParentPhaseID] = append(byParent[*p.ParentPhaseID], p)
		}
	}

	sortByOrder(mains)

	nodes := make([]PhaseNode, 0, len(mains))
	for _, m := range mains {
		children := byParent[m.ID]
		sortByOrder(children)
		nodes = append(nodes, PhaseNode{
			Phase:    m,
			Children: children,
			Expanded: expanded[m.ID],
		})
	}
	return nodes
}

// FlattenRows produces the display-order row list: each main phase
// contributes one row, immediately followed by one row per sub-phase
// when it is expanded.
func FlattenRows(nodes []PhaseNode) []Row {
	var rows []Row
	for _, n := range nodes {
		rows = append(rows, Row{Phase: n.Phase, Depth: 0})
		if !n.Expanded {
			continue
		}
		for _, c := range n.Children {
			rows = append(rows, Row{Phase: c, Depth: 1})
		}
	}
	return rows
}

// BuildRows is the common path: flat phase list + expansion set → rows.
func BuildRows(phases []domain.Phase, expanded map[string]bool) []Row {
	return FlattenRows(BuildTree(phases, expanded))
}

// RowIndex finds the row occupied by a phase, or false when the phase
// is not visible (collapsed parent or filtered out).
func RowIndex(rows []Row, phaseID string) (int, bool) {
	for i := range rows {
		if rows[i].Phase.ID == phaseID {
			return i, true
		}
	}
	return 0, false
}

func sortByOrder(phases []domain.Phase) {
	sort.SliceStable(phases, func(i, j int) bool {
		return phases[i].Order < phases[j].Order
	})
}
