package service

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
)

// fakeStore is an in-memory Store with stable listing order and per-record
// failure injection.
type fakeStore struct {
	campaigns  map[string]domain.Campaign
	characters map[string]domain.Character
	bastions   map[string]domain.Bastion
	facilities map[string]domain.Facility
	chronicle  []domain.ChronicleEntry

	bastionOrder  []string
	facilityOrder []string

	putFacilityErr map[string]error
	putCampaignErr error
	appendErr      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		campaigns:      make(map[string]domain.Campaign),
		characters:     make(map[string]domain.Character),
		bastions:       make(map[string]domain.Bastion),
		facilities:     make(map[string]domain.Facility),
		putFacilityErr: make(map[string]error),
	}
}

func (f *fakeStore) GetCampaign(_ context.Context, campaignID string) (domain.Campaign, error) {
	campaign, ok := f.campaigns[campaignID]
	if !ok {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return campaign, nil
}

func (f *fakeStore) PutCampaign(_ context.Context, campaign domain.Campaign) error {
	if f.putCampaignErr != nil {
		return f.putCampaignErr
	}
	f.campaigns[campaign.ID] = campaign
	return nil
}

func (f *fakeStore) GetCharacter(_ context.Context, characterID string) (domain.Character, error) {
	character, ok := f.characters[characterID]
	if !ok {
		return domain.Character{}, domain.ErrNotFound
	}
	return character, nil
}

func (f *fakeStore) ListCharacters(_ context.Context, campaignID string) ([]domain.Character, error) {
	var characters []domain.Character
	for _, character := range f.characters {
		if character.CampaignID == campaignID {
			characters = append(characters, character)
		}
	}
	return characters, nil
}

func (f *fakeStore) PutCharacter(_ context.Context, character domain.Character) error {
	f.characters[character.ID] = character
	return nil
}

func (f *fakeStore) GetBastion(_ context.Context, bastionID string) (domain.Bastion, error) {
	bastion, ok := f.bastions[bastionID]
	if !ok {
		return domain.Bastion{}, domain.ErrNotFound
	}
	return bastion, nil
}

func (f *fakeStore) ListBastions(_ context.Context, campaignID string) ([]domain.Bastion, error) {
	var bastions []domain.Bastion
	for _, id := range f.bastionOrder {
		if bastion := f.bastions[id]; bastion.CampaignID == campaignID {
			bastions = append(bastions, bastion)
		}
	}
	return bastions, nil
}

func (f *fakeStore) PutBastion(_ context.Context, bastion domain.Bastion) error {
	if _, exists := f.bastions[bastion.ID]; !exists {
		f.bastionOrder = append(f.bastionOrder, bastion.ID)
	}
	f.bastions[bastion.ID] = bastion
	return nil
}

func (f *fakeStore) GetFacility(_ context.Context, facilityID string) (domain.Facility, error) {
	facility, ok := f.facilities[facilityID]
	if !ok {
		return domain.Facility{}, domain.ErrNotFound
	}
	return facility, nil
}

func (f *fakeStore) ListFacilities(_ context.Context, bastionID string) ([]domain.Facility, error) {
	var facilities []domain.Facility
	for _, id := range f.facilityOrder {
		if facility := f.facilities[id]; facility.BastionID == bastionID {
			facilities = append(facilities, facility)
		}
	}
	return facilities, nil
}

func (f *fakeStore) PutFacility(_ context.Context, facility domain.Facility) error {
	if err := f.putFacilityErr[facility.ID]; err != nil {
		return err
	}
	if _, exists := f.facilities[facility.ID]; !exists {
		f.facilityOrder = append(f.facilityOrder, facility.ID)
	}
	f.facilities[facility.ID] = facility
	return nil
}

func (f *fakeStore) AppendChronicle(_ context.Context, entry domain.ChronicleEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.chronicle = append(f.chronicle, entry)
	return nil
}

func (f *fakeStore) ListChronicle(_ context.Context, campaignID string, limit int) ([]domain.ChronicleEntry, error) {
	var entries []domain.ChronicleEntry
	for i := len(f.chronicle) - 1; i >= 0 && len(entries) < limit; i-- {
		if f.chronicle[i].CampaignID == campaignID {
			entries = append(entries, f.chronicle[i])
		}
	}
	return entries, nil
}

var _ domain.Store = (*fakeStore)(nil)

// fakeForwarder records forwarded entries and can fail on demand.
type fakeForwarder struct {
	entries []domain.ChronicleEntry
	err     error
}

func (f *fakeForwarder) Forward(_ context.Context, entry domain.ChronicleEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func sequentialIDs(prefix string) func() (string, error) {
	next := 0
	return func() (string, error) {
		next++
		return fmt.Sprintf("%s-%d", prefix, next), nil
	}
}

func fixedClock(moment time.Time) func() time.Time {
	return func() time.Time { return moment }
}

func fixedSeed(seed int64) func() (int64, error) {
	return func() (int64, error) { return seed, nil }
}
