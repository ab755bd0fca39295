package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrStoreUnavailable indicates the persistence layer failed.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Store is the persistence boundary for campaign state. Implementations
// return ErrNotFound for missing records and wrap backend failures with
// ErrStoreUnavailable.
type Store interface {
	GetCampaign(ctx context.Context, campaignID string) (Campaign, error)
	PutCampaign(ctx context.Context, campaign Campaign) error

	GetCharacter(ctx context.Context, characterID string) (Character, error)
	ListCharacters(ctx context.Context, campaignID string) ([]Character, error)
	PutCharacter(ctx context.Context, character Character) error

	GetBastion(ctx context.Context, bastionID string) (Bastion, error)
	ListBastions(ctx context.Context, campaignID string) ([]Bastion, error)
	PutBastion(ctx context.Context, bastion Bastion) error

	GetFacility(ctx context.Context, facilityID string) (Facility, error)
	ListFacilities(ctx context.Context, bastionID string) ([]Facility, error)
	PutFacility(ctx context.Context, facility Facility) error

	AppendChronicle(ctx context.Context, entry ChronicleEntry) error
	ListChronicle(ctx context.Context, campaignID string, limit int) ([]ChronicleEntry, error)
}
