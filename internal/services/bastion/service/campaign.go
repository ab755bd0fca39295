package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/bastionhearth/internal/platform/errors"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
)

const defaultChronicleLimit = 50

// SetThreatLevel updates the campaign-wide narrative threat flag.
func (s *Service) SetThreatLevel(ctx context.Context, campaignID, level string) (campaign domain.Campaign, err error) {
	defer func() { s.recordCommand("set_threat_level", err) }()

	threat, ok := domain.ParseThreatLevel(level)
	if !ok {
		return domain.Campaign{}, apperrors.WithMetadata(apperrors.CodeThreatLevelUnknown,
			"unknown threat level", map[string]string{"Level": level})
	}
	campaign, err = s.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, storeErr("get campaign", err)
	}
	campaign.Threat = threat
	campaign.UpdatedAt = s.clock().UTC()
	if err := s.store.PutCampaign(ctx, campaign); err != nil {
		return domain.Campaign{}, storeErr("put campaign", err)
	}
	s.chronicle(ctx, campaign.ID, campaign.CurrentDay,
		fmt.Sprintf("Day %d: the threat level is now %s.", campaign.CurrentDay, threat))
	return campaign, nil
}

// BastionSummary pairs a bastion with its owner and facility listing for
// the communal dashboard.
type BastionSummary struct {
	Bastion    domain.Bastion
	Owner      domain.Character
	Facilities []domain.Facility
}

// Dashboard is the communal campaign view: the shared day counter, the
// threat flag, and every bastion with its facilities.
type Dashboard struct {
	Campaign       domain.Campaign
	TotalDefenders int
	Bastions       []BastionSummary
}

// GetDashboard assembles the communal campaign view.
func (s *Service) GetDashboard(ctx context.Context, campaignID string) (Dashboard, error) {
	campaign, err := s.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return Dashboard{}, storeErr("get campaign", err)
	}
	bastions, err := s.store.ListBastions(ctx, campaignID)
	if err != nil {
		return Dashboard{}, storeErr("list bastions", err)
	}

	dashboard := Dashboard{Campaign: campaign}
	for _, bastion := range bastions {
		owner, err := s.store.GetCharacter(ctx, bastion.CharacterID)
		if err != nil {
			return Dashboard{}, storeErr("get character", err)
		}
		facilities, err := s.store.ListFacilities(ctx, bastion.ID)
		if err != nil {
			return Dashboard{}, storeErr("list facilities", err)
		}
		dashboard.TotalDefenders += bastion.Defenders
		dashboard.Bastions = append(dashboard.Bastions, BastionSummary{
			Bastion:    bastion,
			Owner:      owner,
			Facilities: facilities,
		})
	}
	return dashboard, nil
}

// Chronicle lists recent chronicle entries, newest first. A non-positive
// limit uses the default page size.
func (s *Service) Chronicle(ctx context.Context, campaignID string, limit int) ([]domain.ChronicleEntry, error) {
	if limit < 1 {
		limit = defaultChronicleLimit
	}
	entries, err := s.store.ListChronicle(ctx, campaignID, limit)
	if err != nil {
		return nil, storeErr("list chronicle", err)
	}
	return entries, nil
}

// CreateCampaign starts a new campaign at day zero.
func (s *Service) CreateCampaign(ctx context.Context, name string) (domain.Campaign, error) {
	campaign, err := domain.CreateCampaign(name, s.clock, s.newID)
	if err != nil {
		return domain.Campaign{}, apperrors.Wrap(apperrors.CodeUnknown, "create campaign", err)
	}
	if err := s.store.PutCampaign(ctx, campaign); err != nil {
		return domain.Campaign{}, storeErr("put campaign", err)
	}
	return campaign, nil
}

// AddCharacter registers an owner in a campaign. Level changes afterwards
// are driven externally.
func (s *Service) AddCharacter(ctx context.Context, campaignID, name string, level int) (domain.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Character{}, apperrors.New(apperrors.CodeUnknown, "character name is required")
	}
	if level < 1 {
		return domain.Character{}, apperrors.New(apperrors.CodeUnknown, "character level must be positive")
	}
	characterID, err := s.newID()
	if err != nil {
		return domain.Character{}, apperrors.Wrap(apperrors.CodeUnknown, "generate character id", err)
	}
	character := domain.Character{
		ID:         characterID,
		CampaignID: campaignID,
		Name:       name,
		Level:      level,
	}
	if err := s.store.PutCharacter(ctx, character); err != nil {
		return domain.Character{}, storeErr("put character", err)
	}
	return character, nil
}

// AddBastion creates a bastion owned by a character.
func (s *Service) AddBastion(ctx context.Context, campaignID, characterID, name string, defenders int) (domain.Bastion, error) {
	bastion, err := domain.CreateBastion(campaignID, characterID, name, s.newID)
	if err != nil {
		return domain.Bastion{}, apperrors.Wrap(apperrors.CodeUnknown, "create bastion", err)
	}
	if defenders > 0 {
		bastion.Defenders = defenders
	}
	if err := s.store.PutBastion(ctx, bastion); err != nil {
		return domain.Bastion{}, storeErr("put bastion", err)
	}
	return bastion, nil
}
