package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
)

// GetCampaign loads one campaign by ID.
func (s *Store) GetCampaign(ctx context.Context, campaignID string) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, err
	}
	query := fmt.Sprintf(
		"SELECT id, name, current_day, threat, created_at_ms, updated_at_ms FROM campaigns WHERE id = %s",
		s.bind(1),
	)
	var campaign domain.Campaign
	var threat string
	var createdAt, updatedAt int64
	err := s.sqlDB.QueryRowContext(ctx, query, campaignID).Scan(
		&campaign.ID, &campaign.Name, &campaign.CurrentDay, &threat, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Campaign{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}
	if level, ok := domain.ParseThreatLevel(threat); ok {
		campaign.Threat = level
	}
	campaign.CreatedAt = fromMillis(createdAt)
	campaign.UpdatedAt = fromMillis(updatedAt)
	return campaign, nil
}

// PutCampaign inserts or updates one campaign row.
func (s *Store) PutCampaign(ctx context.Context, campaign domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query := fmt.Sprintf(`
INSERT INTO campaigns (id, name, current_day, threat, created_at_ms, updated_at_ms)
VALUES (%s, %s, %s, %s, %s, %s)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    current_day = excluded.current_day,
    threat = excluded.threat,
    updated_at_ms = excluded.updated_at_ms`,
		s.bind(1), s.bind(2), s.bind(3), s.bind(4), s.bind(5), s.bind(6),
	)
	_, err := s.sqlDB.ExecContext(ctx, query,
		campaign.ID, campaign.Name, campaign.CurrentDay, campaign.Threat.String(),
		toMillis(campaign.CreatedAt), toMillis(campaign.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put campaign: %w", err)
	}
	return nil
}

// GetCharacter loads one character by ID.
func (s *Store) GetCharacter(ctx context.Context, characterID string) (domain.Character, error) {
	if err := ctx.Err(); err != nil {
		return domain.Character{}, err
	}
	query := fmt.Sprintf(
		"SELECT id, campaign_id, name, level FROM characters WHERE id = %s",
		s.bind(1),
	)
	var character domain.Character
	err := s.sqlDB.QueryRowContext(ctx, query, characterID).Scan(
		&character.ID, &character.CampaignID, &character.Name, &character.Level,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Character{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Character{}, fmt.Errorf("get character: %w", err)
	}
	return character, nil
}

// ListCharacters lists a campaign's characters by name.
func (s *Store) ListCharacters(ctx context.Context, campaignID string) ([]domain.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		"SELECT id, campaign_id, name, level FROM characters WHERE campaign_id = %s ORDER BY name, id",
		s.bind(1),
	)
	rows, err := s.sqlDB.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var characters []domain.Character
	for rows.Next() {
		var character domain.Character
		if err := rows.Scan(&character.ID, &character.CampaignID, &character.Name, &character.Level); err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		characters = append(characters, character)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

// PutCharacter inserts or updates one character row.
func (s *Store) PutCharacter(ctx context.Context, character domain.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query := fmt.Sprintf(`
INSERT INTO characters (id, campaign_id, name, level)
VALUES (%s, %s, %s, %s)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    level = excluded.level`,
		s.bind(1), s.bind(2), s.bind(3), s.bind(4),
	)
	_, err := s.sqlDB.ExecContext(ctx, query,
		character.ID, character.CampaignID, character.Name, character.Level,
	)
	if err != nil {
		return fmt.Errorf("put character: %w", err)
	}
	return nil
}

// GetBastion loads one bastion by ID.
func (s *Store) GetBastion(ctx context.Context, bastionID string) (domain.Bastion, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bastion{}, err
	}
	query := fmt.Sprintf(
		"SELECT id, campaign_id, character_id, name, defenders FROM bastions WHERE id = %s",
		s.bind(1),
	)
	var bastion domain.Bastion
	err := s.sqlDB.QueryRowContext(ctx, query, bastionID).Scan(
		&bastion.ID, &bastion.CampaignID, &bastion.CharacterID, &bastion.Name, &bastion.Defenders,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Bastion{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Bastion{}, fmt.Errorf("get bastion: %w", err)
	}
	return bastion, nil
}

// ListBastions lists a campaign's bastions by name.
func (s *Store) ListBastions(ctx context.Context, campaignID string) ([]domain.Bastion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		"SELECT id, campaign_id, character_id, name, defenders FROM bastions WHERE campaign_id = %s ORDER BY name, id",
		s.bind(1),
	)
	rows, err := s.sqlDB.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list bastions: %w", err)
	}
	defer rows.Close()

	var bastions []domain.Bastion
	for rows.Next() {
		var bastion domain.Bastion
		if err := rows.Scan(&bastion.ID, &bastion.CampaignID, &bastion.CharacterID, &bastion.Name, &bastion.Defenders); err != nil {
			return nil, fmt.Errorf("scan bastion: %w", err)
		}
		bastions = append(bastions, bastion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bastions: %w", err)
	}
	return bastions, nil
}

// PutBastion inserts or updates one bastion row.
func (s *Store) PutBastion(ctx context.Context, bastion domain.Bastion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query := fmt.Sprintf(`
INSERT INTO bastions (id, campaign_id, character_id, name, defenders)
VALUES (%s, %s, %s, %s, %s)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    defenders = excluded.defenders`,
		s.bind(1), s.bind(2), s.bind(3), s.bind(4), s.bind(5),
	)
	_, err := s.sqlDB.ExecContext(ctx, query,
		bastion.ID, bastion.CampaignID, bastion.CharacterID, bastion.Name, bastion.Defenders,
	)
	if err != nil {
		return fmt.Errorf("put bastion: %w", err)
	}
	return nil
}
