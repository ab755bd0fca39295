// Package mcp exposes the bastion command surface as MCP tools and readable
// resources over stdio or streamable HTTP.
package mcp

import (
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/service"
)

// FacilityResult is the MCP tool output for facility mutations.
type FacilityResult struct {
	ID            string `json:"id" jsonschema:"facility identifier"`
	BastionID     string `json:"bastion_id" jsonschema:"owning bastion identifier"`
	Name          string `json:"name" jsonschema:"facility name"`
	Kind          string `json:"kind" jsonschema:"facility kind (basic, special)"`
	Size          string `json:"size" jsonschema:"facility size (cramped, roomy, vast)"`
	Status        string `json:"status" jsonschema:"derived status label (Idle, order name, Under Construction, Enlarging to ...)"`
	Progress      int    `json:"progress" jsonschema:"days elapsed on the current task"`
	Duration      int    `json:"duration" jsonschema:"total days required by the current task"`
	DaysRemaining int    `json:"days_remaining" jsonschema:"days until the current task completes"`
}

// IssueOrderInput is the MCP tool input for issuing an order.
type IssueOrderInput struct {
	FacilityID   string `json:"facility_id" jsonschema:"facility identifier"`
	OrderName    string `json:"order_name" jsonschema:"order name from the facility catalog"`
	DurationDays int    `json:"duration_days,omitempty" jsonschema:"required for variable orders: order duration in days"`
	CostGP       int    `json:"cost_gp,omitempty" jsonschema:"required for variable orders: order cost in gold pieces"`
}

// CancelOrderInput is the MCP tool input for cancelling a task.
type CancelOrderInput struct {
	FacilityID string `json:"facility_id" jsonschema:"facility identifier"`
}

// AcquireSpecialInput is the MCP tool input for acquiring a special facility.
type AcquireSpecialInput struct {
	BastionID    string `json:"bastion_id" jsonschema:"bastion identifier"`
	FacilityName string `json:"facility_name" jsonschema:"special facility name from the rules catalog"`
}

// BuildBasicInput is the MCP tool input for starting basic construction.
type BuildBasicInput struct {
	BastionID    string `json:"bastion_id" jsonschema:"bastion identifier"`
	FacilityName string `json:"facility_name" jsonschema:"basic facility name from the rules catalog"`
	Size         string `json:"size" jsonschema:"target size (cramped, roomy, vast)"`
}

// EnlargeBasicInput is the MCP tool input for enlarging a basic facility.
type EnlargeBasicInput struct {
	FacilityID string `json:"facility_id" jsonschema:"facility identifier"`
	TargetSize string `json:"target_size" jsonschema:"target size (roomy, vast)"`
}

// AdvanceTimeInput is the MCP tool input for advancing campaign time.
type AdvanceTimeInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
	Days       int    `json:"days" jsonschema:"number of in-game days to advance (at least 1)"`
}

// CompletionEntry reports one task that finished during a time advance.
type CompletionEntry struct {
	FacilityID   string `json:"facility_id" jsonschema:"facility identifier"`
	FacilityName string `json:"facility_name" jsonschema:"facility name"`
	Kind         string `json:"kind" jsonschema:"completed task kind (order, construction, enlargement)"`
	OrderName    string `json:"order_name,omitempty" jsonschema:"completed order name"`
	NewSize      string `json:"new_size" jsonschema:"facility size after completion"`
}

// FailureEntry reports one facility whose update failed during a time advance.
type FailureEntry struct {
	FacilityID string `json:"facility_id" jsonschema:"facility identifier"`
	Error      string `json:"error" jsonschema:"failure description"`
}

// AdvanceTimeResult is the MCP tool output for a time advance.
type AdvanceTimeResult struct {
	CampaignID  string            `json:"campaign_id" jsonschema:"campaign identifier"`
	CurrentDay  int               `json:"current_day" jsonschema:"campaign day after the advance"`
	Completions []CompletionEntry `json:"completions" jsonschema:"tasks completed during the advance"`
	Failures    []FailureEntry    `json:"failures" jsonschema:"facilities whose updates failed; inspect even on success"`
}

// MaintainInput is the MCP tool input for bastion maintenance.
type MaintainInput struct {
	BastionID string `json:"bastion_id" jsonschema:"bastion identifier"`
}

// InjectEventInput is the MCP tool input for game-master event injection.
type InjectEventInput struct {
	BastionID string `json:"bastion_id" jsonschema:"bastion identifier"`
	Event     string `json:"event" jsonschema:"event name from the event table"`
}

// EventResult is the MCP tool output for maintenance and injected events.
type EventResult struct {
	BastionID string `json:"bastion_id" jsonschema:"bastion identifier"`
	Event     string `json:"event" jsonschema:"resolved event name"`
	Roll      int    `json:"roll,omitempty" jsonschema:"d100 roll (zero when injected)"`
	DiceRolls []int  `json:"dice_rolls,omitempty" jsonschema:"attack defense dice results"`
	Losses    int    `json:"losses,omitempty" jsonschema:"defenders lost to an attack"`
	Defenders int    `json:"defenders" jsonschema:"defender count after the event"`
}

// SetThreatLevelInput is the MCP tool input for the narrative threat flag.
type SetThreatLevelInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
	Level      string `json:"level" jsonschema:"threat level (none, low, moderate, high, severe)"`
}

// CampaignResult is the MCP tool output for campaign mutations.
type CampaignResult struct {
	ID         string `json:"id" jsonschema:"campaign identifier"`
	Name       string `json:"name" jsonschema:"campaign name"`
	CurrentDay int    `json:"current_day" jsonschema:"campaign day counter"`
	Threat     string `json:"threat" jsonschema:"narrative threat level"`
}

// FacilityEntry is one facility row in readable resources.
type FacilityEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Size          string `json:"size"`
	Status        string `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
}

// BastionEntry is one bastion row in the dashboard resource.
type BastionEntry struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Owner      string          `json:"owner"`
	OwnerLevel int             `json:"owner_level"`
	Defenders  int             `json:"defenders"`
	Facilities []FacilityEntry `json:"facilities"`
}

// DashboardPayload is the MCP resource payload for the communal dashboard.
type DashboardPayload struct {
	CampaignID     string         `json:"campaign_id"`
	Name           string         `json:"name"`
	CurrentDay     int            `json:"current_day"`
	Threat         string         `json:"threat"`
	TotalDefenders int            `json:"total_defenders"`
	Bastions       []BastionEntry `json:"bastions"`
}

// ChronicleEntryPayload is one chronicle line in the chronicle resource.
type ChronicleEntryPayload struct {
	Day      int    `json:"day"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// ChroniclePayload is the MCP resource payload for the campaign chronicle.
type ChroniclePayload struct {
	CampaignID string                  `json:"campaign_id"`
	Entries    []ChronicleEntryPayload `json:"entries"`
}

func facilityResult(facility domain.Facility) FacilityResult {
	result := FacilityResult{
		ID:            facility.ID,
		BastionID:     facility.BastionID,
		Name:          facility.Name,
		Kind:          string(facility.Kind),
		Size:          string(facility.Size),
		Status:        facility.StatusLabel(),
		DaysRemaining: facility.DaysRemaining(),
	}
	if facility.Task != nil {
		result.Progress = facility.Task.Progress
		result.Duration = facility.Task.Duration
	}
	return result
}

func facilityEntry(facility domain.Facility) FacilityEntry {
	return FacilityEntry{
		ID:            facility.ID,
		Name:          facility.Name,
		Kind:          string(facility.Kind),
		Size:          string(facility.Size),
		Status:        facility.StatusLabel(),
		DaysRemaining: facility.DaysRemaining(),
	}
}

func advanceTimeResult(report service.AdvanceReport) AdvanceTimeResult {
	result := AdvanceTimeResult{
		CampaignID:  report.Campaign.ID,
		CurrentDay:  report.Campaign.CurrentDay,
		Completions: []CompletionEntry{},
		Failures:    []FailureEntry{},
	}
	for _, completion := range report.Completions {
		result.Completions = append(result.Completions, CompletionEntry{
			FacilityID:   completion.FacilityID,
			FacilityName: completion.FacilityName,
			Kind:         completion.Kind.String(),
			OrderName:    completion.OrderName,
			NewSize:      string(completion.NewSize),
		})
	}
	for _, failure := range report.Failures {
		result.Failures = append(result.Failures, FailureEntry{
			FacilityID: failure.FacilityID,
			Error:      failure.Err.Error(),
		})
	}
	return result
}

func eventResult(outcome service.EventOutcome) EventResult {
	return EventResult{
		BastionID: outcome.Bastion.ID,
		Event:     string(outcome.Event),
		Roll:      outcome.Roll,
		DiceRolls: outcome.DiceRolls,
		Losses:    outcome.Losses,
		Defenders: outcome.Bastion.Defenders,
	}
}

func campaignResult(campaign domain.Campaign) CampaignResult {
	return CampaignResult{
		ID:         campaign.ID,
		Name:       campaign.Name,
		CurrentDay: campaign.CurrentDay,
		Threat:     campaign.Threat.String(),
	}
}
