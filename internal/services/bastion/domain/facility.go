package domain

import (
	"errors"
	"fmt"

	"github.com/louisbranch/bastionhearth/internal/platform/id"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
)

// TaskKind distinguishes the work a facility can be busy with.
type TaskKind int

const (
	// TaskKindUnspecified represents an invalid task kind value.
	TaskKindUnspecified TaskKind = iota
	// TaskKindOrder is a special facility executing an issued order.
	TaskKindOrder
	// TaskKindConstruction is a basic facility still being built.
	TaskKindConstruction
	// TaskKindEnlargement is a basic facility growing to a larger size.
	TaskKindEnlargement
)

var taskKindNames = map[TaskKind]string{
	TaskKindOrder:        "order",
	TaskKindConstruction: "construction",
	TaskKindEnlargement:  "enlargement",
}

// String returns the wire name of the task kind.
func (k TaskKind) String() string {
	if name, ok := taskKindNames[k]; ok {
		return name
	}
	return "unspecified"
}

// ParseTaskKind maps a wire name onto a TaskKind.
func ParseTaskKind(value string) (TaskKind, bool) {
	for kind, name := range taskKindNames {
		if name == value {
			return kind, true
		}
	}
	return TaskKindUnspecified, false
}

var (
	// ErrFacilityBusy indicates a facility already has a task in progress.
	ErrFacilityBusy = errors.New("facility is busy")
	// ErrFacilityIdle indicates a facility has no task to cancel.
	ErrFacilityIdle = errors.New("facility is idle")
	// ErrTaskDurationInvalid indicates a task needs a positive day count.
	ErrTaskDurationInvalid = errors.New("task duration must be at least one day")
)

// Task is the single unit of timed work a facility can hold. Exactly one
// task may be in progress per facility; an idle facility has none.
type Task struct {
	Kind       TaskKind
	OrderName  string
	TargetSize rules.Size
	Progress   int
	Duration   int
}

// Facility is one room of a bastion. Special facilities run orders; basic
// facilities provide space and can be built and enlarged.
type Facility struct {
	ID        string
	BastionID string
	Name      string
	Kind      rules.FacilityKind
	Size      rules.Size
	Task      *Task
}

// Completion describes one task that finished during a day tick.
type Completion struct {
	FacilityID   string
	FacilityName string
	Kind         TaskKind
	OrderName    string
	NewSize      rules.Size
}

// CreateFacility creates a facility record with a generated ID. The caller
// supplies catalog-validated kind and size.
func CreateFacility(bastionID, name string, kind rules.FacilityKind, size rules.Size, idGenerator func() (string, error)) (Facility, error) {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	facilityID, err := idGenerator()
	if err != nil {
		return Facility{}, fmt.Errorf("generate facility id: %w", err)
	}
	return Facility{
		ID:        facilityID,
		BastionID: bastionID,
		Name:      name,
		Kind:      kind,
		Size:      size,
	}, nil
}

// Idle reports whether the facility has no task in progress.
func (f Facility) Idle() bool {
	return f.Task == nil
}

// StatusLabel renders the facility state for listings. Status is derived
// from the task; it is never stored separately.
func (f Facility) StatusLabel() string {
	if f.Task == nil {
		return "Idle"
	}
	switch f.Task.Kind {
	case TaskKindOrder:
		return f.Task.OrderName
	case TaskKindConstruction:
		return "Under Construction"
	case TaskKindEnlargement:
		return fmt.Sprintf("Enlarging to %s", f.Task.TargetSize)
	default:
		return "Idle"
	}
}

// DaysRemaining reports how many day ticks until the current task finishes.
// Idle facilities report zero.
func (f Facility) DaysRemaining() int {
	if f.Task == nil {
		return 0
	}
	remaining := f.Task.Duration - f.Task.Progress
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BeginOrder starts an order on an idle facility.
func (f *Facility) BeginOrder(orderName string, durationDays int) error {
	if f.Task != nil {
		return ErrFacilityBusy
	}
	if durationDays < 1 {
		return ErrTaskDurationInvalid
	}
	f.Task = &Task{
		Kind:      TaskKindOrder,
		OrderName: orderName,
		Duration:  durationDays,
	}
	return nil
}

// BeginConstruction marks a newly created facility as under construction.
func (f *Facility) BeginConstruction(durationDays int) error {
	if f.Task != nil {
		return ErrFacilityBusy
	}
	if durationDays < 1 {
		return ErrTaskDurationInvalid
	}
	f.Task = &Task{
		Kind:     TaskKindConstruction,
		Duration: durationDays,
	}
	return nil
}

// BeginEnlargement starts growing an idle facility toward target size.
func (f *Facility) BeginEnlargement(target rules.Size, durationDays int) error {
	if f.Task != nil {
		return ErrFacilityBusy
	}
	if durationDays < 1 {
		return ErrTaskDurationInvalid
	}
	f.Task = &Task{
		Kind:       TaskKindEnlargement,
		TargetSize: target,
		Duration:   durationDays,
	}
	return nil
}

// CancelTask abandons the task in progress. Elapsed days and any spent cost
// are forfeit.
func (f *Facility) CancelTask() error {
	if f.Task == nil {
		return ErrFacilityIdle
	}
	f.Task = nil
	return nil
}

// Tick advances the current task by one day. When the task reaches its
// duration it is applied and cleared, and the returned completion reports
// what finished. Idle facilities tick as a no-op.
func (f *Facility) Tick() (Completion, bool) {
	if f.Task == nil {
		return Completion{}, false
	}
	f.Task.Progress++
	if f.Task.Progress < f.Task.Duration {
		return Completion{}, false
	}
	completion := Completion{
		FacilityID:   f.ID,
		FacilityName: f.Name,
		Kind:         f.Task.Kind,
		OrderName:    f.Task.OrderName,
	}
	if f.Task.Kind == TaskKindEnlargement {
		f.Size = f.Task.TargetSize
	}
	completion.NewSize = f.Size
	f.Task = nil
	return completion, true
}
