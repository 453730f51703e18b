package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestPhaseIsMain(t *testing.T) {
	main := Phase{ID: "ph-1"}
	sub := Phase{ID: "ph-2", ParentPhaseID: strptr("ph-1")}

	assert.True(t, main.IsMain())
	assert.False(t, sub.IsMain())
}

func TestPhaseValidate(t *testing.T) {
	assert.NoError(t, (&Phase{ProjectID: "p-1", Name: "Framing"}).Validate())
	assert.Error(t, (&Phase{ProjectID: "p-1"}).Validate())
	assert.Error(t, (&Phase{Name: "Framing"}).Validate())
}

func TestValidateParent_RequiresExistingMainPhase(t *testing.T) {
	phases := []Phase{
		{ID: "main-1"},
		{ID: "sub-1", ParentPhaseID: strptr("main-1")},
	}

	ok := Phase{ID: "sub-2", ParentPhaseID: strptr("main-1")}
	assert.NoError(t, ok.ValidateParent(phases))

	missing := Phase{ID: "sub-3", ParentPhaseID: strptr("gone")}
	assert.Error(t, missing.ValidateParent(phases))

	// Nesting under a sub-phase would make the hierarchy three levels deep.
	tooDeep := Phase{ID: "sub-4", ParentPhaseID: strptr("sub-1")}
	assert.Error(t, tooDeep.ValidateParent(phases))

	mainPhase := Phase{ID: "main-2"}
	assert.NoError(t, mainPhase.ValidateParent(phases))
}
