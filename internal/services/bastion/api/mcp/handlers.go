package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apperrors "github.com/louisbranch/bastionhearth/internal/platform/errors"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/service"
)

// toolError renders a typed service failure as a tool error with the error
// code and the user-facing message.
func toolError(err error) error {
	return fmt.Errorf("%s: %s", apperrors.GetCode(err), apperrors.UserMessage(err, ""))
}

// IssueOrderHandler starts an order on an idle special facility.
func IssueOrderHandler(svc *service.Service) mcp.ToolHandlerFor[IssueOrderInput, FacilityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IssueOrderInput) (*mcp.CallToolResult, FacilityResult, error) {
		facility, err := svc.IssueOrder(ctx, service.IssueOrderInput{
			FacilityID:   input.FacilityID,
			OrderName:    input.OrderName,
			DurationDays: input.DurationDays,
			CostGP:       input.CostGP,
		})
		if err != nil {
			return nil, FacilityResult{}, toolError(err)
		}
		return nil, facilityResult(facility), nil
	}
}

// CancelOrderHandler abandons the task in progress on a facility.
func CancelOrderHandler(svc *service.Service) mcp.ToolHandlerFor[CancelOrderInput, FacilityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CancelOrderInput) (*mcp.CallToolResult, FacilityResult, error) {
		facility, err := svc.CancelOrder(ctx, input.FacilityID)
		if err != nil {
			return nil, FacilityResult{}, toolError(err)
		}
		return nil, facilityResult(facility), nil
	}
}

// AcquireSpecialHandler adds a special facility to a bastion.
func AcquireSpecialHandler(svc *service.Service) mcp.ToolHandlerFor[AcquireSpecialInput, FacilityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AcquireSpecialInput) (*mcp.CallToolResult, FacilityResult, error) {
		facility, err := svc.AcquireSpecial(ctx, input.BastionID, input.FacilityName)
		if err != nil {
			return nil, FacilityResult{}, toolError(err)
		}
		return nil, facilityResult(facility), nil
	}
}

// BuildBasicHandler starts construction of a basic facility.
func BuildBasicHandler(svc *service.Service) mcp.ToolHandlerFor[BuildBasicInput, FacilityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BuildBasicInput) (*mcp.CallToolResult, FacilityResult, error) {
		facility, err := svc.BuildBasic(ctx, service.BuildBasicInput{
			BastionID:    input.BastionID,
			FacilityName: input.FacilityName,
			Size:         input.Size,
		})
		if err != nil {
			return nil, FacilityResult{}, toolError(err)
		}
		return nil, facilityResult(facility), nil
	}
}

// EnlargeBasicHandler grows an idle basic facility to the next size up.
func EnlargeBasicHandler(svc *service.Service) mcp.ToolHandlerFor[EnlargeBasicInput, FacilityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EnlargeBasicInput) (*mcp.CallToolResult, FacilityResult, error) {
		facility, err := svc.EnlargeBasic(ctx, input.FacilityID, input.TargetSize)
		if err != nil {
			return nil, FacilityResult{}, toolError(err)
		}
		return nil, facilityResult(facility), nil
	}
}

// AdvanceTimeHandler simulates the passage of in-game days.
func AdvanceTimeHandler(svc *service.Service) mcp.ToolHandlerFor[AdvanceTimeInput, AdvanceTimeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AdvanceTimeInput) (*mcp.CallToolResult, AdvanceTimeResult, error) {
		report, err := svc.AdvanceTime(ctx, input.CampaignID, input.Days)
		if err != nil {
			return nil, AdvanceTimeResult{}, toolError(err)
		}
		return nil, advanceTimeResult(report), nil
	}
}

// MaintainHandler rolls the event table for a bastion and applies the result.
func MaintainHandler(svc *service.Service) mcp.ToolHandlerFor[MaintainInput, EventResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MaintainInput) (*mcp.CallToolResult, EventResult, error) {
		outcome, err := svc.Maintain(ctx, input.BastionID)
		if err != nil {
			return nil, EventResult{}, toolError(err)
		}
		return nil, eventResult(outcome), nil
	}
}

// InjectEventHandler applies a named event without rolling.
func InjectEventHandler(svc *service.Service) mcp.ToolHandlerFor[InjectEventInput, EventResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input InjectEventInput) (*mcp.CallToolResult, EventResult, error) {
		outcome, err := svc.InjectEvent(ctx, input.BastionID, rules.EventName(input.Event))
		if err != nil {
			return nil, EventResult{}, toolError(err)
		}
		return nil, eventResult(outcome), nil
	}
}

// SetThreatLevelHandler updates the campaign narrative threat flag.
func SetThreatLevelHandler(svc *service.Service) mcp.ToolHandlerFor[SetThreatLevelInput, CampaignResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetThreatLevelInput) (*mcp.CallToolResult, CampaignResult, error) {
		campaign, err := svc.SetThreatLevel(ctx, input.CampaignID, input.Level)
		if err != nil {
			return nil, CampaignResult{}, toolError(err)
		}
		return nil, campaignResult(campaign), nil
	}
}
