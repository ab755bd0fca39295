package service

import (
	"context"
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/bastionhearth/internal/platform/errors"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
)

// AcquireSpecial adds a special facility to a bastion. The owner's level
// gates both the facility itself and how many special facilities the bastion
// may hold in total.
func (s *Service) AcquireSpecial(ctx context.Context, bastionID, facilityName string) (facility domain.Facility, err error) {
	defer func() { s.recordCommand("acquire_special", err) }()

	def, ok := rules.Facility(facilityName)
	if !ok {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityUnknownName,
			"facility is not in the rules catalog", map[string]string{"Facility": facilityName})
	}
	if def.Kind != rules.KindSpecial {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityNotSpecial,
			"acquisition only applies to special facilities", map[string]string{"Facility": facilityName})
	}

	bastion, err := s.store.GetBastion(ctx, bastionID)
	if err != nil {
		return domain.Facility{}, storeErr("get bastion", err)
	}
	character, err := s.store.GetCharacter(ctx, bastion.CharacterID)
	if err != nil {
		return domain.Facility{}, storeErr("get character", err)
	}
	if character.Level < def.RequiredLevel {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeCharacterLevelTooLow,
			"character level is below the facility requirement",
			map[string]string{"Facility": facilityName, "Level": strconv.Itoa(def.RequiredLevel)})
	}

	facilities, err := s.store.ListFacilities(ctx, bastion.ID)
	if err != nil {
		return domain.Facility{}, storeErr("list facilities", err)
	}
	specialCount := 0
	for _, existing := range facilities {
		if existing.Name == facilityName {
			return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityAlreadyPresent,
				"bastion already holds this facility", map[string]string{"Facility": facilityName})
		}
		if existing.Kind == rules.KindSpecial {
			specialCount++
		}
	}
	limit := rules.SpecialFacilityLimit(character.Level)
	if specialCount >= limit {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeLimitExceeded,
			"special facility limit reached",
			map[string]string{"Limit": strconv.Itoa(limit)})
	}

	facility, err = domain.CreateFacility(bastion.ID, facilityName, rules.KindSpecial, def.DefaultSize, s.newID)
	if err != nil {
		return domain.Facility{}, apperrors.Wrap(apperrors.CodeUnknown, "create facility", err)
	}
	if err := s.store.PutFacility(ctx, facility); err != nil {
		return domain.Facility{}, storeErr("put facility", err)
	}

	campaign, err := s.store.GetCampaign(ctx, bastion.CampaignID)
	if err != nil {
		return facility, nil
	}
	s.chronicle(ctx, campaign.ID, campaign.CurrentDay,
		fmt.Sprintf("Day %d: %s acquired a new facility: %s.", campaign.CurrentDay, bastion.Name, facilityName))
	return facility, nil
}

// BuildBasicInput identifies the basic facility to build and its size.
type BuildBasicInput struct {
	BastionID    string
	FacilityName string
	Size         string
}

// BuildBasic starts construction of a basic facility. The record exists
// immediately with a construction task; it becomes usable once time
// advancement completes the task.
func (s *Service) BuildBasic(ctx context.Context, input BuildBasicInput) (facility domain.Facility, err error) {
	defer func() { s.recordCommand("build_basic", err) }()

	def, ok := rules.Facility(input.FacilityName)
	if !ok {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityUnknownName,
			"facility is not in the rules catalog", map[string]string{"Facility": input.FacilityName})
	}
	if def.Kind != rules.KindBasic {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityNotBasic,
			"construction only applies to basic facilities", map[string]string{"Facility": input.FacilityName})
	}
	size, ok := rules.ParseSize(input.Size)
	if !ok {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeSizeUnknown,
			"unknown facility size", map[string]string{"Size": input.Size})
	}
	row, ok := rules.ConstructionCost(input.FacilityName, size)
	if !ok {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeSizeUnknown,
			"no construction cost for this size", map[string]string{"Size": input.Size})
	}

	bastion, err := s.store.GetBastion(ctx, input.BastionID)
	if err != nil {
		return domain.Facility{}, storeErr("get bastion", err)
	}

	facility, err = domain.CreateFacility(bastion.ID, input.FacilityName, rules.KindBasic, size, s.newID)
	if err != nil {
		return domain.Facility{}, apperrors.Wrap(apperrors.CodeUnknown, "create facility", err)
	}
	if err := facility.BeginConstruction(row.DurationDays); err != nil {
		return domain.Facility{}, apperrors.Wrap(apperrors.CodeUnknown, "begin construction", err)
	}
	if err := s.store.PutFacility(ctx, facility); err != nil {
		return domain.Facility{}, storeErr("put facility", err)
	}

	campaign, err := s.store.GetCampaign(ctx, bastion.CampaignID)
	if err != nil {
		return facility, nil
	}
	s.chronicle(ctx, campaign.ID, campaign.CurrentDay,
		fmt.Sprintf("Day %d: a %s %s at %s is now under construction.", campaign.CurrentDay, size, input.FacilityName, bastion.Name))
	return facility, nil
}

// EnlargeBasic starts growing an idle basic facility to the next size up.
func (s *Service) EnlargeBasic(ctx context.Context, facilityID, targetSize string) (facility domain.Facility, err error) {
	defer func() { s.recordCommand("enlarge_basic", err) }()

	facility, err = s.store.GetFacility(ctx, facilityID)
	if err != nil {
		return domain.Facility{}, storeErr("get facility", err)
	}
	if facility.Kind != rules.KindBasic {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityNotBasic,
			"enlargement only applies to basic facilities", map[string]string{"Facility": facility.Name})
	}
	if !facility.Idle() {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityNotIdle,
			"facility already has a task in progress", map[string]string{"Facility": facility.Name})
	}
	target, ok := rules.ParseSize(targetSize)
	if !ok {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeSizeUnknown,
			"unknown facility size", map[string]string{"Size": targetSize})
	}
	row, ok := rules.EnlargementCost(facility.Size, target)
	if !ok {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeSizeTransitionInvalid,
			"no enlargement path between these sizes",
			map[string]string{"Size": string(facility.Size), "Target": string(target)})
	}

	bastion, err := s.store.GetBastion(ctx, facility.BastionID)
	if err != nil {
		return domain.Facility{}, storeErr("get bastion", err)
	}

	if err := facility.BeginEnlargement(target, row.DurationDays); err != nil {
		return domain.Facility{}, apperrors.Wrap(apperrors.CodeUnknown, "begin enlargement", err)
	}
	if err := s.store.PutFacility(ctx, facility); err != nil {
		return domain.Facility{}, storeErr("put facility", err)
	}

	campaign, err := s.store.GetCampaign(ctx, bastion.CampaignID)
	if err != nil {
		return facility, nil
	}
	owner := s.facilityOwner(ctx, bastion)
	s.chronicle(ctx, campaign.ID, campaign.CurrentDay,
		fmt.Sprintf("Day %d: %s's %s began enlarging to %s.", campaign.CurrentDay, owner, facility.Name, target))
	return facility, nil
}
