package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/service"
)

const (
	dashboardURITemplate = "campaign://{campaign_id}/dashboard"
	chronicleURITemplate = "campaign://{campaign_id}/chronicle"
	catalogURI           = "bastion://catalog"

	chronicleResourceLimit = 50
)

// DashboardResource describes the communal dashboard resource template.
func DashboardResource() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "campaign-dashboard",
		URITemplate: dashboardURITemplate,
		Description: "Communal campaign view: day counter, threat level, and every bastion with its facilities",
		MIMEType:    "application/json",
	}
}

// ChronicleResource describes the campaign chronicle resource template.
func ChronicleResource() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "campaign-chronicle",
		URITemplate: chronicleURITemplate,
		Description: "Recent campaign chronicle entries, newest first",
		MIMEType:    "application/json",
	}
}

// CatalogResource describes the static rules catalog resource.
func CatalogResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "facility-catalog",
		URI:         catalogURI,
		Description: "Facility rules catalog: kinds, level requirements, orders, and cost tables",
		MIMEType:    "application/json",
	}
}

// parseCampaignIDFromURI extracts the campaign ID from a URI of the form
// campaign://{campaign_id}/{suffix}.
func parseCampaignIDFromURI(uri, suffix string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "campaign://")
	if !ok {
		return "", fmt.Errorf("uri %q must start with campaign://", uri)
	}
	campaignID, ok := strings.CutSuffix(rest, "/"+suffix)
	if !ok || campaignID == "" || strings.Contains(campaignID, "/") {
		return "", fmt.Errorf("uri %q must match campaign://{campaign_id}/%s", uri, suffix)
	}
	return campaignID, nil
}

func resourceResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource payload: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// DashboardResourceHandler reads the communal dashboard for a campaign.
func DashboardResourceHandler(svc *service.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("campaign ID is required; use URI format %s", dashboardURITemplate)
		}
		campaignID, err := parseCampaignIDFromURI(req.Params.URI, "dashboard")
		if err != nil {
			return nil, err
		}

		dashboard, err := svc.GetDashboard(ctx, campaignID)
		if err != nil {
			return nil, toolError(err)
		}

		payload := DashboardPayload{
			CampaignID:     dashboard.Campaign.ID,
			Name:           dashboard.Campaign.Name,
			CurrentDay:     dashboard.Campaign.CurrentDay,
			Threat:         dashboard.Campaign.Threat.String(),
			TotalDefenders: dashboard.TotalDefenders,
			Bastions:       []BastionEntry{},
		}
		for _, summary := range dashboard.Bastions {
			entry := BastionEntry{
				ID:         summary.Bastion.ID,
				Name:       summary.Bastion.Name,
				Owner:      summary.Owner.Name,
				OwnerLevel: summary.Owner.Level,
				Defenders:  summary.Bastion.Defenders,
				Facilities: []FacilityEntry{},
			}
			for _, facility := range summary.Facilities {
				entry.Facilities = append(entry.Facilities, facilityEntry(facility))
			}
			payload.Bastions = append(payload.Bastions, entry)
		}
		return resourceResult(req.Params.URI, payload)
	}
}

// ChronicleResourceHandler reads recent chronicle entries for a campaign.
func ChronicleResourceHandler(svc *service.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("campaign ID is required; use URI format %s", chronicleURITemplate)
		}
		campaignID, err := parseCampaignIDFromURI(req.Params.URI, "chronicle")
		if err != nil {
			return nil, err
		}

		entries, err := svc.Chronicle(ctx, campaignID, chronicleResourceLimit)
		if err != nil {
			return nil, toolError(err)
		}

		payload := ChroniclePayload{CampaignID: campaignID, Entries: []ChronicleEntryPayload{}}
		for _, entry := range entries {
			payload.Entries = append(payload.Entries, ChronicleEntryPayload{
				Day:      entry.Day,
				Message:  entry.Message,
				Category: string(entry.Category),
			})
		}
		return resourceResult(req.Params.URI, payload)
	}
}

// catalogFacility is one rules catalog entry in the catalog resource.
type catalogFacility struct {
	Name          string         `json:"name"`
	Kind          string         `json:"kind"`
	RequiredLevel int            `json:"required_level,omitempty"`
	DefaultSize   string         `json:"default_size,omitempty"`
	Orders        []catalogOrder `json:"orders,omitempty"`
}

type catalogOrder struct {
	Name         string `json:"name"`
	DurationDays int    `json:"duration_days,omitempty"`
	CostGP       int    `json:"cost_gp,omitempty"`
	Variable     bool   `json:"variable,omitempty"`
}

// CatalogResourceHandler reads the static facility catalog.
func CatalogResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		var facilities []catalogFacility
		for _, name := range rules.FacilityNames() {
			def, _ := rules.Facility(name)
			entry := catalogFacility{
				Name:          def.Name,
				Kind:          string(def.Kind),
				RequiredLevel: def.RequiredLevel,
				DefaultSize:   string(def.DefaultSize),
			}
			for orderName, orderDef := range def.Orders {
				entry.Orders = append(entry.Orders, catalogOrder{
					Name:         orderName,
					DurationDays: orderDef.DurationDays,
					CostGP:       orderDef.CostGP,
					Variable:     orderDef.Variable,
				})
			}
			sort.Slice(entry.Orders, func(i, j int) bool {
				return entry.Orders[i].Name < entry.Orders[j].Name
			})
			facilities = append(facilities, entry)
		}
		return resourceResult(catalogURI, map[string]any{"facilities": facilities})
	}
}
