// Package notify forwards chronicle entries to an external Slack channel via
// an incoming webhook. Delivery is best-effort; callers treat failures as
// warnings.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
)

// Webhook posts chronicle entries to a Slack incoming webhook. The zero
// value is a disabled forwarder.
type Webhook struct {
	url string
}

// NewWebhook builds a forwarder for the given webhook URL. A blank URL
// disables forwarding.
func NewWebhook(url string) *Webhook {
	return &Webhook{url: strings.TrimSpace(url)}
}

// Enabled reports whether a webhook URL is configured.
func (w *Webhook) Enabled() bool {
	return w != nil && w.url != ""
}

// Forward posts one chronicle entry. Disabled forwarders accept silently.
func (w *Webhook) Forward(ctx context.Context, entry domain.ChronicleEntry) error {
	if !w.Enabled() {
		return nil
	}
	message := &slack.WebhookMessage{
		Text: fmt.Sprintf("%s %s", categoryEmoji(entry.Category), entry.Message),
	}
	if err := slack.PostWebhookContext(ctx, w.url, message); err != nil {
		return fmt.Errorf("post chronicle webhook: %w", err)
	}
	return nil
}

func categoryEmoji(category domain.ChronicleCategory) string {
	switch category {
	case domain.CategoryPositive:
		return ":tada:"
	case domain.CategoryNegative:
		return ":crossed_swords:"
	case domain.CategoryComplete:
		return ":white_check_mark:"
	case domain.CategoryProgress:
		return ":hourglass_flowing_sand:"
	default:
		return ":scroll:"
	}
}
