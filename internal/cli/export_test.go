package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
	"github.com/mustafashaheen1/girder/internal/gantt"
	"github.com/mustafashaheen1/girder/internal/repository"
	"github.com/mustafashaheen1/girder/internal/schedule"
	"github.com/mustafashaheen1/girder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSchedule struct {
	phases []domain.Phase
	tasks  []domain.Task
}

func (s stubSchedule) Phases() []domain.Phase { return s.phases }
func (s stubSchedule) Tasks() []domain.Task   { return s.tasks }

func exportFixture() stubSchedule {
	parent := "ph-1"
	demo := domain.Task{ID: "t-1", PhaseID: "ph-1", Category: "Demolition", WorkType: domain.WorkInHouse, VisibleToClient: true}
	demo.SetSpan(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), 4)
	rough := domain.Task{ID: "t-2", PhaseID: "ph-2", Category: "Rough Plumbing", WorkType: domain.WorkSubcontractor, VisibleToClient: true, Completed: true}
	rough.SetSpan(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 5)
	secret := domain.Task{ID: "t-3", PhaseID: "ph-1", Category: "Budget Review", WorkType: domain.WorkInHouse, VisibleToClient: false}
	secret.SetSpan(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 1)

	return stubSchedule{
		phases: []domain.Phase{
			{ID: "ph-1", Name: "Interior", Order: 0, VisibleToClient: true},
			{ID: "ph-2", Name: "Plumbing", ParentPhaseID: &parent, Order: 0, VisibleToClient: true},
			{ID: "ph-3", Name: "Contingency", Order: 1, VisibleToClient: false},
		},
		tasks: []domain.Task{demo, rough, secret},
	}
}

func TestWriteExportInternalMode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, exportFixture(), gantt.ModeInternal))
	out := buf.String()

	assert.Contains(t, out, "Interior")
	assert.Contains(t, out, "  Plumbing")
	assert.Contains(t, out, "Contingency")
	assert.Contains(t, out, "Demolition")
	assert.Contains(t, out, "2026-03-09")
	assert.Contains(t, out, "2026-03-12")
	assert.Contains(t, out, "subcontractor")
	assert.Contains(t, out, "✓")

	// Tasks inside a phase come out in start-date order.
	assert.Less(t, strings.Index(out, "Budget Review"), strings.Index(out, "Demolition"))
}

func TestWriteExportClientMode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, exportFixture(), gantt.ModeClient))
	out := buf.String()

	assert.Contains(t, out, "Interior")
	assert.Contains(t, out, "Plumbing")
	assert.NotContains(t, out, "Contingency")
	assert.NotContains(t, out, "Budget Review")
}

func TestWriteExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, stubSchedule{}, gantt.ModeInternal))
	assert.Contains(t, buf.String(), "No phases")
}

func TestExportCommand(t *testing.T) {
	database := testutil.NewTestDB(t)
	gw := repository.NewLocalGateway(database)
	seedSchedule(t, gw)

	app := &App{Store: schedule.NewStore(gw), ProjectID: testProjectID}
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"export", "--project", testProjectID})

	require.NoError(t, root.Execute())
	out := buf.String()
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "Excavation")
}

func TestExportCommandRequiresProject(t *testing.T) {
	app := &App{Store: schedule.NewStore(repository.NewLocalGateway(testutil.NewTestDB(t)))}
	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project id")
}

func TestClientFlagSwitchesMode(t *testing.T) {
	database := testutil.NewTestDB(t)
	gw := repository.NewLocalGateway(database)
	seedSchedule(t, gw)

	app := &App{Store: schedule.NewStore(gw), ProjectID: testProjectID}
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"export", "--client"})

	require.NoError(t, root.Execute())
	assert.Equal(t, gantt.ModeClient, app.ViewMode)
	assert.NotContains(t, buf.String(), "Punch List")
}
