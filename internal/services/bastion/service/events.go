package service

import (
	"context"
	"fmt"

	"github.com/louisbranch/bastionhearth/internal/core/dice"
	apperrors "github.com/louisbranch/bastionhearth/internal/platform/errors"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
)

// EventOutcome reports one resolved bastion event. Roll is zero for events
// injected by the game master. DiceRolls and Losses are populated for
// attacks only.
type EventOutcome struct {
	Bastion   domain.Bastion
	Event     rules.EventName
	Roll      int
	DiceRolls []int
	Losses    int
}

// Maintain rolls a d100 against the event table for a bastion and applies
// the resulting event.
func (s *Service) Maintain(ctx context.Context, bastionID string) (outcome EventOutcome, err error) {
	defer func() { s.recordCommand("maintain", err) }()

	bastion, err := s.store.GetBastion(ctx, bastionID)
	if err != nil {
		return EventOutcome{}, storeErr("get bastion", err)
	}
	seed, err := s.newSeed()
	if err != nil {
		return EventOutcome{}, apperrors.Wrap(apperrors.CodeUnknown, "generate event seed", err)
	}
	result, err := dice.RollDice(dice.Request{Dice: []dice.Spec{{Sides: 100, Count: 1}}, Seed: seed})
	if err != nil {
		return EventOutcome{}, apperrors.Wrap(apperrors.CodeUnknown, "roll event", err)
	}
	roll := result.Total
	event, ok := rules.EventForRoll(roll)
	if !ok {
		return EventOutcome{}, apperrors.WithMetadata(apperrors.CodeEventRollOutOfRange,
			"event roll outside table range", map[string]string{"Roll": fmt.Sprintf("%d", roll)})
	}
	outcome, err = s.applyEvent(ctx, bastion, event)
	if err != nil {
		return EventOutcome{}, err
	}
	outcome.Roll = roll
	return outcome, nil
}

// InjectEvent applies a named event to a bastion without rolling, for game
// master use.
func (s *Service) InjectEvent(ctx context.Context, bastionID string, event rules.EventName) (outcome EventOutcome, err error) {
	defer func() { s.recordCommand("inject_event", err) }()

	if !rules.KnownEvent(event) {
		return EventOutcome{}, apperrors.WithMetadata(apperrors.CodeEventUnknown,
			"event is not in the event table", map[string]string{"Event": string(event)})
	}
	bastion, err := s.store.GetBastion(ctx, bastionID)
	if err != nil {
		return EventOutcome{}, storeErr("get bastion", err)
	}
	return s.applyEvent(ctx, bastion, event)
}

// applyEvent resolves an event against a bastion. Attacks roll 6d6 and lose
// one defender per die showing 1; every other event is narrative-only but
// still chronicled.
func (s *Service) applyEvent(ctx context.Context, bastion domain.Bastion, event rules.EventName) (EventOutcome, error) {
	campaign, err := s.store.GetCampaign(ctx, bastion.CampaignID)
	if err != nil {
		return EventOutcome{}, storeErr("get campaign", err)
	}

	outcome := EventOutcome{Bastion: bastion, Event: event}
	if event == rules.EventAttack {
		seed, err := s.newSeed()
		if err != nil {
			return EventOutcome{}, apperrors.Wrap(apperrors.CodeUnknown, "generate attack seed", err)
		}
		result, err := dice.RollDice(dice.Request{Dice: []dice.Spec{{Sides: 6, Count: 6}}, Seed: seed})
		if err != nil {
			return EventOutcome{}, apperrors.Wrap(apperrors.CodeUnknown, "roll attack dice", err)
		}
		rolls := result.Rolls[0].Results
		losses := 0
		for _, die := range rolls {
			if die == 1 {
				losses++
			}
		}
		bastion.Defenders -= losses
		if bastion.Defenders < 0 {
			bastion.Defenders = 0
		}
		if err := s.store.PutBastion(ctx, bastion); err != nil {
			return EventOutcome{}, storeErr("put bastion", err)
		}
		outcome.Bastion = bastion
		outcome.DiceRolls = rolls
		outcome.Losses = losses
		s.chronicle(ctx, campaign.ID, campaign.CurrentDay,
			fmt.Sprintf("Day %d: %s was attacked! Defense rolls: %v. %d defender(s) lost; %d remain.",
				campaign.CurrentDay, bastion.Name, rolls, losses, bastion.Defenders))
		return outcome, nil
	}

	s.chronicle(ctx, campaign.ID, campaign.CurrentDay,
		fmt.Sprintf("Day %d: %s. %s", campaign.CurrentDay, bastion.Name, eventNarrative(event)))
	return outcome, nil
}

// eventNarrative renders the chronicle line for narrative-only events.
func eventNarrative(event rules.EventName) string {
	switch event {
	case rules.EventAllIsWell:
		return "All is well; the week passes without incident."
	case rules.EventCriminalHireling:
		return "A criminal hireling was discovered among the staff."
	case rules.EventExtraordinaryOpportunity:
		return "An extraordinary opportunity has presented itself."
	case rules.EventFriendlyVisitors:
		return "Friendly visitors arrived and were given hospitality."
	case rules.EventGuest:
		return "A notable guest has taken up temporary residence."
	case rules.EventLostHirelings:
		return "Hirelings have gone missing; the staff is shaken."
	case rules.EventMagicalDiscovery:
		return "A magical discovery was made within the walls."
	case rules.EventRefugees:
		return "Refugees arrived seeking shelter within the walls."
	case rules.EventRequestForAid:
		return "A request for aid arrived from the surrounding lands."
	case rules.EventTreasure:
		return "A hidden treasure was found in the cellars."
	default:
		return string(event)
	}
}
