package service

import (
	"context"
	"fmt"

	apperrors "github.com/louisbranch/bastionhearth/internal/platform/errors"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
)

// IssueOrderInput identifies the facility and order to start. DurationDays
// and CostGP are required for catalog entries marked variable and ignored
// otherwise.
type IssueOrderInput struct {
	FacilityID   string
	OrderName    string
	DurationDays int
	CostGP       int
}

// IssueOrder starts an order on an idle special facility.
func (s *Service) IssueOrder(ctx context.Context, input IssueOrderInput) (facility domain.Facility, err error) {
	defer func() { s.recordCommand("issue_order", err) }()

	facility, err = s.store.GetFacility(ctx, input.FacilityID)
	if err != nil {
		return domain.Facility{}, storeErr("get facility", err)
	}
	if facility.Kind != rules.KindSpecial {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityNotSpecial,
			"orders require a special facility", map[string]string{"Facility": facility.Name})
	}
	if !facility.Idle() {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityNotIdle,
			"facility already has a task in progress", map[string]string{"Facility": facility.Name})
	}
	orderDef, ok := rules.Order(facility.Name, input.OrderName)
	if !ok {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeOrderUnknown,
			"order is not in the facility catalog",
			map[string]string{"Facility": facility.Name, "Order": input.OrderName})
	}

	duration := orderDef.DurationDays
	if orderDef.Variable {
		if input.DurationDays < 1 || input.CostGP < 1 {
			return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeInvalidOrderParameters,
				"variable order needs caller-supplied duration and cost",
				map[string]string{"Order": input.OrderName})
		}
		duration = input.DurationDays
	}

	bastion, err := s.store.GetBastion(ctx, facility.BastionID)
	if err != nil {
		return domain.Facility{}, storeErr("get bastion", err)
	}
	campaign, err := s.store.GetCampaign(ctx, bastion.CampaignID)
	if err != nil {
		return domain.Facility{}, storeErr("get campaign", err)
	}

	if err := facility.BeginOrder(input.OrderName, duration); err != nil {
		return domain.Facility{}, apperrors.Wrap(apperrors.CodeFacilityNotIdle, "begin order", err)
	}
	if err := s.store.PutFacility(ctx, facility); err != nil {
		return domain.Facility{}, storeErr("put facility", err)
	}

	owner := s.facilityOwner(ctx, bastion)
	s.chronicle(ctx, campaign.ID, campaign.CurrentDay,
		fmt.Sprintf("Day %d: %s's %s began the order: %s.", campaign.CurrentDay, owner, facility.Name, input.OrderName))
	return facility, nil
}

// CancelOrder abandons the task in progress on a facility. Elapsed days and
// spent cost are forfeit; there is no refund.
func (s *Service) CancelOrder(ctx context.Context, facilityID string) (facility domain.Facility, err error) {
	defer func() { s.recordCommand("cancel_order", err) }()

	facility, err = s.store.GetFacility(ctx, facilityID)
	if err != nil {
		return domain.Facility{}, storeErr("get facility", err)
	}
	if facility.Idle() {
		return domain.Facility{}, apperrors.WithMetadata(apperrors.CodeFacilityIdle,
			"facility has no task to cancel", map[string]string{"Facility": facility.Name})
	}
	label := facility.StatusLabel()

	bastion, err := s.store.GetBastion(ctx, facility.BastionID)
	if err != nil {
		return domain.Facility{}, storeErr("get bastion", err)
	}
	campaign, err := s.store.GetCampaign(ctx, bastion.CampaignID)
	if err != nil {
		return domain.Facility{}, storeErr("get campaign", err)
	}

	if err := facility.CancelTask(); err != nil {
		return domain.Facility{}, apperrors.Wrap(apperrors.CodeFacilityIdle, "cancel task", err)
	}
	if err := s.store.PutFacility(ctx, facility); err != nil {
		return domain.Facility{}, storeErr("put facility", err)
	}

	owner := s.facilityOwner(ctx, bastion)
	s.chronicle(ctx, campaign.ID, campaign.CurrentDay,
		fmt.Sprintf("Day %d: %s's %s abandoned: %s.", campaign.CurrentDay, owner, facility.Name, label))
	return facility, nil
}
