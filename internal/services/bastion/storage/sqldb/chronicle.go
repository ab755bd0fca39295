package sqldb

import (
	"context"
	"fmt"

	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
)

// AppendChronicle persists one chronicle entry.
func (s *Store) AppendChronicle(ctx context.Context, entry domain.ChronicleEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query := fmt.Sprintf(`
INSERT INTO chronicle (id, campaign_id, day, message, category, created_at_ms)
VALUES (%s, %s, %s, %s, %s, %s)`,
		s.bind(1), s.bind(2), s.bind(3), s.bind(4), s.bind(5), s.bind(6),
	)
	_, err := s.sqlDB.ExecContext(ctx, query,
		entry.ID, entry.CampaignID, entry.Day, entry.Message, string(entry.Category), toMillis(entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("append chronicle: %w", err)
	}
	return nil
}

// ListChronicle lists a campaign's chronicle entries, newest first.
func (s *Store) ListChronicle(ctx context.Context, campaignID string, limit int) ([]domain.ChronicleEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = 50
	}
	query := fmt.Sprintf(`
SELECT id, campaign_id, day, message, category, created_at_ms
FROM chronicle
WHERE campaign_id = %s
ORDER BY created_at_ms DESC, id DESC
LIMIT %s`,
		s.bind(1), s.bind(2),
	)
	rows, err := s.sqlDB.QueryContext(ctx, query, campaignID, limit)
	if err != nil {
		return nil, fmt.Errorf("list chronicle: %w", err)
	}
	defer rows.Close()

	var entries []domain.ChronicleEntry
	for rows.Next() {
		var entry domain.ChronicleEntry
		var category string
		var createdAt int64
		if err := rows.Scan(&entry.ID, &entry.CampaignID, &entry.Day, &entry.Message, &category, &createdAt); err != nil {
			return nil, fmt.Errorf("scan chronicle entry: %w", err)
		}
		entry.Category = domain.ChronicleCategory(category)
		entry.CreatedAt = fromMillis(createdAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list chronicle: %w", err)
	}
	return entries, nil
}
