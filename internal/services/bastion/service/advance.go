package service

import (
	"context"
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/bastionhearth/internal/platform/errors"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
)

// AdvanceFailure records one facility whose persistence failed during a time
// advance. The remaining facilities are still processed.
type AdvanceFailure struct {
	FacilityID string
	Err        error
}

// AdvanceReport is the outcome of one AdvanceTime call. Failures can be
// non-empty even when the call succeeds; callers must inspect it.
type AdvanceReport struct {
	Campaign    domain.Campaign
	Completions []domain.Completion
	Failures    []AdvanceFailure
}

// activeFacility pairs an in-progress facility with its owner name for
// chronicle messages.
type activeFacility struct {
	facility domain.Facility
	owner    string
	failed   bool
}

// AdvanceTime simulates the passage of days for a campaign, one day at a
// time. Each simulated day ticks every in-progress facility, persists its
// progress, and chronicles completions against the day they happened on. The
// campaign day counter moves by exactly days, once, after every facility has
// been attempted; a store failure for one facility removes it from the batch
// but never blocks the others.
func (s *Service) AdvanceTime(ctx context.Context, campaignID string, days int) (report AdvanceReport, err error) {
	started := s.clock()
	defer func() {
		s.recordCommand("advance_time", err)
		if err == nil {
			s.metrics.ObserveAdvance(s.clock().Sub(started))
		}
	}()

	if days < 1 {
		return AdvanceReport{}, apperrors.WithMetadata(apperrors.CodeAdvanceDaysInvalid,
			"time must advance by at least one day", map[string]string{"Days": strconv.Itoa(days)})
	}
	campaign, err := s.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return AdvanceReport{}, storeErr("get campaign", err)
	}

	active, err := s.collectActiveFacilities(ctx, campaignID)
	if err != nil {
		return AdvanceReport{}, err
	}

	for day := 1; day <= days; day++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, apperrors.Wrap(apperrors.CodeStoreUnavailable, "time advance interrupted", ctxErr)
		}
		simulatedDay := campaign.CurrentDay + day
		for i := range active {
			entry := &active[i]
			if entry.failed || entry.facility.Idle() {
				continue
			}
			completion, done := entry.facility.Tick()
			if putErr := s.store.PutFacility(ctx, entry.facility); putErr != nil {
				entry.failed = true
				report.Failures = append(report.Failures, AdvanceFailure{
					FacilityID: entry.facility.ID,
					Err:        storeErr("put facility", putErr),
				})
				continue
			}
			if done {
				report.Completions = append(report.Completions, completion)
				s.metrics.RecordCompletion(completion.Kind.String())
				s.chronicle(ctx, campaign.ID, simulatedDay, completionMessage(simulatedDay, entry.owner, completion))
			}
		}
	}

	campaign.CurrentDay += days
	campaign.UpdatedAt = s.clock().UTC()
	if err := s.store.PutCampaign(ctx, campaign); err != nil {
		return report, storeErr("put campaign", err)
	}
	report.Campaign = campaign
	return report, nil
}

// collectActiveFacilities loads every in-progress facility of the campaign
// with its owner name, in stable bastion-then-facility listing order.
func (s *Service) collectActiveFacilities(ctx context.Context, campaignID string) ([]activeFacility, error) {
	bastions, err := s.store.ListBastions(ctx, campaignID)
	if err != nil {
		return nil, storeErr("list bastions", err)
	}

	var active []activeFacility
	for _, bastion := range bastions {
		facilities, err := s.store.ListFacilities(ctx, bastion.ID)
		if err != nil {
			return nil, storeErr("list facilities", err)
		}
		owner := s.facilityOwner(ctx, bastion)
		for _, facility := range facilities {
			if facility.Idle() {
				continue
			}
			active = append(active, activeFacility{facility: facility, owner: owner})
		}
	}
	return active, nil
}

func completionMessage(day int, owner string, completion domain.Completion) string {
	switch completion.Kind {
	case domain.TaskKindConstruction:
		return fmt.Sprintf("Day %d: %s's %s has completed construction.", day, owner, completion.FacilityName)
	case domain.TaskKindEnlargement:
		return fmt.Sprintf("Day %d: %s's %s has completed its enlargement to %s.", day, owner, completion.FacilityName, completion.NewSize)
	default:
		return fmt.Sprintf("Day %d: %s's %s has completed the order: %s.", day, owner, completion.FacilityName, completion.OrderName)
	}
}
