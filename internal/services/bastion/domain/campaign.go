package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/bastionhearth/internal/platform/id"
)

// ThreatLevel is a narrative campaign-wide flag set by the game master. It
// has no mechanical effect on orders or events.
type ThreatLevel int

const (
	// ThreatLevelUnspecified represents an invalid threat level value.
	ThreatLevelUnspecified ThreatLevel = iota
	// ThreatLevelNone indicates no looming danger.
	ThreatLevelNone
	// ThreatLevelLow indicates rumors of trouble.
	ThreatLevelLow
	// ThreatLevelModerate indicates credible danger nearby.
	ThreatLevelModerate
	// ThreatLevelHigh indicates an imminent threat.
	ThreatLevelHigh
	// ThreatLevelSevere indicates the bastion is under direct menace.
	ThreatLevelSevere
)

var threatLevelNames = map[ThreatLevel]string{
	ThreatLevelNone:     "none",
	ThreatLevelLow:      "low",
	ThreatLevelModerate: "moderate",
	ThreatLevelHigh:     "high",
	ThreatLevelSevere:   "severe",
}

// String returns the wire name of the threat level.
func (t ThreatLevel) String() string {
	if name, ok := threatLevelNames[t]; ok {
		return name
	}
	return "unspecified"
}

// ParseThreatLevel maps a wire name onto a ThreatLevel.
func ParseThreatLevel(value string) (ThreatLevel, bool) {
	for level, name := range threatLevelNames {
		if name == value {
			return level, true
		}
	}
	return ThreatLevelUnspecified, false
}

var (
	// ErrEmptyCampaignName indicates a missing campaign name.
	ErrEmptyCampaignName = errors.New("campaign name is required")
	// ErrEmptyBastionName indicates a missing bastion name.
	ErrEmptyBastionName = errors.New("bastion name is required")
)

// Campaign represents one play session and its shared day counter.
type Campaign struct {
	ID         string
	Name       string
	CurrentDay int
	Threat     ThreatLevel
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Character is a player character able to own a bastion.
type Character struct {
	ID         string
	CampaignID string
	Name       string
	Level      int
}

// Bastion is one character-owned stronghold holding facilities and a
// defender roster.
type Bastion struct {
	ID          string
	CampaignID  string
	CharacterID string
	Name        string
	Defenders   int
}

// CreateCampaign creates a campaign with a generated ID and timestamps.
func CreateCampaign(name string, now func() time.Time, idGenerator func() (string, error)) (Campaign, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Campaign{}, ErrEmptyCampaignName
	}
	campaignID, err := idGenerator()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}
	createdAt := now().UTC()
	return Campaign{
		ID:        campaignID,
		Name:      name,
		Threat:    ThreatLevelNone,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// CreateBastion creates a bastion owned by a character.
func CreateBastion(campaignID, characterID, name string, idGenerator func() (string, error)) (Bastion, error) {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Bastion{}, ErrEmptyBastionName
	}
	bastionID, err := idGenerator()
	if err != nil {
		return Bastion{}, fmt.Errorf("generate bastion id: %w", err)
	}
	return Bastion{
		ID:          bastionID,
		CampaignID:  campaignID,
		CharacterID: characterID,
		Name:        name,
	}, nil
}
