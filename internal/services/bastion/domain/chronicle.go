package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/bastionhearth/internal/platform/id"
)

// ChronicleCategory tags a chronicle entry for display grouping. Categories
// are derived from the message at append time and stored alongside it.
type ChronicleCategory string

const (
	// CategoryNeutral is the default tone.
	CategoryNeutral ChronicleCategory = "neutral"
	// CategoryProgress marks work starting or continuing.
	CategoryProgress ChronicleCategory = "progress"
	// CategoryComplete marks finished work.
	CategoryComplete ChronicleCategory = "complete"
	// CategoryPositive marks fortunate events.
	CategoryPositive ChronicleCategory = "positive"
	// CategoryNegative marks attacks, losses, and abandoned work.
	CategoryNegative ChronicleCategory = "negative"
)

// ErrEmptyChronicleMessage indicates a chronicle entry needs a message.
var ErrEmptyChronicleMessage = errors.New("chronicle message is required")

// ChronicleEntry is one line of the shared campaign narrative log.
type ChronicleEntry struct {
	ID         string
	CampaignID string
	Day        int
	Message    string
	Category   ChronicleCategory
	CreatedAt  time.Time
}

// NewChronicleEntry builds an entry for the given campaign day, deriving
// its category from the message.
func NewChronicleEntry(campaignID string, day int, message string, now func() time.Time, idGenerator func() (string, error)) (ChronicleEntry, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return ChronicleEntry{}, ErrEmptyChronicleMessage
	}
	entryID, err := idGenerator()
	if err != nil {
		return ChronicleEntry{}, fmt.Errorf("generate chronicle id: %w", err)
	}
	return ChronicleEntry{
		ID:         entryID,
		CampaignID: campaignID,
		Day:        day,
		Message:    message,
		Category:   ClassifyChronicleMessage(message),
		CreatedAt:  now().UTC(),
	}, nil
}

// ClassifyChronicleMessage derives a display category from message wording.
func ClassifyChronicleMessage(message string) ChronicleCategory {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "attack"), strings.Contains(lowered, "lost"),
		strings.Contains(lowered, "abandoned"), strings.Contains(lowered, "criminal"):
		return CategoryNegative
	case strings.Contains(lowered, "completed"), strings.Contains(lowered, "finished"):
		return CategoryComplete
	case strings.Contains(lowered, "treasure"), strings.Contains(lowered, "discovery"),
		strings.Contains(lowered, "all is well"):
		return CategoryPositive
	case strings.Contains(lowered, "began"), strings.Contains(lowered, "under construction"),
		strings.Contains(lowered, "enlarg"):
		return CategoryProgress
	default:
		return CategoryNeutral
	}
}
