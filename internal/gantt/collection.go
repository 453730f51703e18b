package gantt

import (
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// Collection is the mutable local task set the gesture controllers
// operate on. Mutations are optimistic, synchronous, and purely local;
// persistence happens separately, once, when a gesture ends.
type Collection interface {
	Task(id string) (domain.Task, bool)
	ShiftTask(id string, newStart time.Time)
	ResizeTask(id string, duration int)
}
