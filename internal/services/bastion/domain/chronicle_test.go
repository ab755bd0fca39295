package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewChronicleEntry(t *testing.T) {
	moment := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	entry, err := NewChronicleEntry("camp-1", 12, "Day 12: Elara's Smithy has completed the order: Craft: Smith's Tools Item.", fixedClock(moment), fixedID("chr-1"))
	if err != nil {
		t.Fatalf("NewChronicleEntry() error = %v", err)
	}
	if entry.ID != "chr-1" || entry.CampaignID != "camp-1" || entry.Day != 12 {
		t.Errorf("entry identity = %+v", entry)
	}
	if entry.Category != CategoryComplete {
		t.Errorf("Category = %q, want complete", entry.Category)
	}
	if !entry.CreatedAt.Equal(moment) {
		t.Errorf("CreatedAt = %v, want %v", entry.CreatedAt, moment)
	}
}

func TestNewChronicleEntryEmptyMessage(t *testing.T) {
	if _, err := NewChronicleEntry("camp-1", 1, "  ", nil, nil); !errors.Is(err, ErrEmptyChronicleMessage) {
		t.Errorf("NewChronicleEntry(blank) error = %v, want ErrEmptyChronicleMessage", err)
	}
}

func TestClassifyChronicleMessage(t *testing.T) {
	tests := []struct {
		message string
		want    ChronicleCategory
	}{
		{"Day 3: Elara's Smithy began the order: Craft: Smith's Tools Item.", CategoryProgress},
		{"Day 17: Elara's Smithy has completed the order: Craft: Smith's Tools Item.", CategoryComplete},
		{"Day 20: the bastion was attacked! 2 defenders were lost.", CategoryNegative},
		{"Day 20: Kaelen abandoned the order: Trade: Goods.", CategoryNegative},
		{"Day 21: maintenance passed quietly. All is well.", CategoryPositive},
		{"Day 22: a hidden treasure was found in the cellars.", CategoryPositive},
		{"Day 23: strangers arrived asking for shelter.", CategoryNeutral},
	}
	for _, tc := range tests {
		if got := ClassifyChronicleMessage(tc.message); got != tc.want {
			t.Errorf("ClassifyChronicleMessage(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}
