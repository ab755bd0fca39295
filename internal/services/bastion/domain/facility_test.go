package domain

import (
	"errors"
	"testing"

	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
)

func TestBeginOrder(t *testing.T) {
	facility := Facility{ID: "fac-1", Name: "Smithy", Kind: rules.KindSpecial, Size: rules.SizeRoomy}

	if err := facility.BeginOrder("Craft: Smith's Tools Item", 14); err != nil {
		t.Fatalf("BeginOrder() error = %v", err)
	}
	if facility.Idle() {
		t.Error("facility should be busy after BeginOrder")
	}
	if got := facility.StatusLabel(); got != "Craft: Smith's Tools Item" {
		t.Errorf("StatusLabel() = %q, want order name", got)
	}

	if err := facility.BeginOrder("Craft: Magic Item (Armament)", 7); !errors.Is(err, ErrFacilityBusy) {
		t.Errorf("BeginOrder on busy facility error = %v, want ErrFacilityBusy", err)
	}
}

func TestBeginOrderInvalidDuration(t *testing.T) {
	facility := Facility{ID: "fac-1", Name: "Smithy"}
	if err := facility.BeginOrder("Craft: Smith's Tools Item", 0); !errors.Is(err, ErrTaskDurationInvalid) {
		t.Errorf("BeginOrder(0 days) error = %v, want ErrTaskDurationInvalid", err)
	}
}

func TestCancelTask(t *testing.T) {
	facility := Facility{ID: "fac-1", Name: "Smithy"}
	if err := facility.CancelTask(); !errors.Is(err, ErrFacilityIdle) {
		t.Errorf("CancelTask on idle facility error = %v, want ErrFacilityIdle", err)
	}

	if err := facility.BeginOrder("Craft: Smith's Tools Item", 14); err != nil {
		t.Fatalf("BeginOrder() error = %v", err)
	}
	if err := facility.CancelTask(); err != nil {
		t.Fatalf("CancelTask() error = %v", err)
	}
	if !facility.Idle() {
		t.Error("facility should be idle after cancel")
	}
	if err := facility.CancelTask(); !errors.Is(err, ErrFacilityIdle) {
		t.Errorf("second CancelTask error = %v, want ErrFacilityIdle", err)
	}
}

func TestTickCompletesOrder(t *testing.T) {
	facility := Facility{ID: "fac-1", Name: "Smithy", Kind: rules.KindSpecial, Size: rules.SizeRoomy}
	if err := facility.BeginOrder("Craft: Smith's Tools Item", 3); err != nil {
		t.Fatalf("BeginOrder() error = %v", err)
	}

	for day := 1; day <= 2; day++ {
		if _, done := facility.Tick(); done {
			t.Fatalf("task completed after %d of 3 days", day)
		}
	}
	if got := facility.DaysRemaining(); got != 1 {
		t.Errorf("DaysRemaining() = %d, want 1", got)
	}

	completion, done := facility.Tick()
	if !done {
		t.Fatal("task should complete on final day")
	}
	if completion.Kind != TaskKindOrder || completion.OrderName != "Craft: Smith's Tools Item" {
		t.Errorf("completion = %+v, want order completion", completion)
	}
	if !facility.Idle() {
		t.Error("facility should be idle after completion")
	}
}

func TestTickIdleNoop(t *testing.T) {
	facility := Facility{ID: "fac-1", Name: "Bedroom", Kind: rules.KindBasic, Size: rules.SizeCramped}
	if _, done := facility.Tick(); done {
		t.Error("idle facility tick should not complete anything")
	}
}

func TestTickAppliesEnlargement(t *testing.T) {
	facility := Facility{ID: "fac-1", Name: "Bedroom", Kind: rules.KindBasic, Size: rules.SizeCramped}
	if err := facility.BeginEnlargement(rules.SizeRoomy, 2); err != nil {
		t.Fatalf("BeginEnlargement() error = %v", err)
	}
	if got := facility.StatusLabel(); got != "Enlarging to roomy" {
		t.Errorf("StatusLabel() = %q, want %q", got, "Enlarging to roomy")
	}

	facility.Tick()
	completion, done := facility.Tick()
	if !done {
		t.Fatal("enlargement should complete after two days")
	}
	if facility.Size != rules.SizeRoomy {
		t.Errorf("size = %s, want roomy after enlargement", facility.Size)
	}
	if completion.Kind != TaskKindEnlargement || completion.NewSize != rules.SizeRoomy {
		t.Errorf("completion = %+v, want enlargement to roomy", completion)
	}
}

func TestTickCompletesConstruction(t *testing.T) {
	facility := Facility{ID: "fac-1", Name: "Kitchen", Kind: rules.KindBasic, Size: rules.SizeRoomy}
	if err := facility.BeginConstruction(1); err != nil {
		t.Fatalf("BeginConstruction() error = %v", err)
	}
	if got := facility.StatusLabel(); got != "Under Construction" {
		t.Errorf("StatusLabel() = %q, want %q", got, "Under Construction")
	}

	completion, done := facility.Tick()
	if !done {
		t.Fatal("construction should complete after one day")
	}
	if completion.Kind != TaskKindConstruction {
		t.Errorf("completion kind = %v, want construction", completion.Kind)
	}
	if completion.NewSize != rules.SizeRoomy {
		t.Errorf("completion size = %s, want roomy", completion.NewSize)
	}
}

func TestStatusLabelIdle(t *testing.T) {
	facility := Facility{ID: "fac-1", Name: "Smithy"}
	if got := facility.StatusLabel(); got != "Idle" {
		t.Errorf("StatusLabel() = %q, want Idle", got)
	}
	if got := facility.DaysRemaining(); got != 0 {
		t.Errorf("DaysRemaining() = %d, want 0", got)
	}
}
