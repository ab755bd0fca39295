package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
)

const facilityColumns = "id, bastion_id, name, kind, size, task_kind, task_order_name, task_target_size, task_progress, task_duration"

// facilityRow is the flattened persistence shape of a facility. An empty
// task_kind means the facility is idle.
type facilityRow struct {
	id             string
	bastionID      string
	name           string
	kind           string
	size           string
	taskKind       string
	taskOrderName  string
	taskTargetSize string
	taskProgress   int
	taskDuration   int
}

func flattenFacility(facility domain.Facility) facilityRow {
	row := facilityRow{
		id:        facility.ID,
		bastionID: facility.BastionID,
		name:      facility.Name,
		kind:      string(facility.Kind),
		size:      string(facility.Size),
	}
	if facility.Task != nil {
		row.taskKind = facility.Task.Kind.String()
		row.taskOrderName = facility.Task.OrderName
		row.taskTargetSize = string(facility.Task.TargetSize)
		row.taskProgress = facility.Task.Progress
		row.taskDuration = facility.Task.Duration
	}
	return row
}

func (row facilityRow) toDomain() domain.Facility {
	facility := domain.Facility{
		ID:        row.id,
		BastionID: row.bastionID,
		Name:      row.name,
		Kind:      rules.FacilityKind(row.kind),
		Size:      rules.Size(row.size),
	}
	if kind, ok := domain.ParseTaskKind(row.taskKind); ok {
		facility.Task = &domain.Task{
			Kind:       kind,
			OrderName:  row.taskOrderName,
			TargetSize: rules.Size(row.taskTargetSize),
			Progress:   row.taskProgress,
			Duration:   row.taskDuration,
		}
	}
	return facility
}

func scanFacility(scanner interface{ Scan(dest ...any) error }) (domain.Facility, error) {
	var row facilityRow
	err := scanner.Scan(
		&row.id, &row.bastionID, &row.name, &row.kind, &row.size,
		&row.taskKind, &row.taskOrderName, &row.taskTargetSize, &row.taskProgress, &row.taskDuration,
	)
	if err != nil {
		return domain.Facility{}, err
	}
	return row.toDomain(), nil
}

// GetFacility loads one facility by ID.
func (s *Store) GetFacility(ctx context.Context, facilityID string) (domain.Facility, error) {
	if err := ctx.Err(); err != nil {
		return domain.Facility{}, err
	}
	query := fmt.Sprintf("SELECT %s FROM facilities WHERE id = %s", facilityColumns, s.bind(1))
	facility, err := scanFacility(s.sqlDB.QueryRowContext(ctx, query, facilityID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Facility{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Facility{}, fmt.Errorf("get facility: %w", err)
	}
	return facility, nil
}

// ListFacilities lists a bastion's facilities by name.
func (s *Store) ListFacilities(ctx context.Context, bastionID string) ([]domain.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		"SELECT %s FROM facilities WHERE bastion_id = %s ORDER BY name, id",
		facilityColumns, s.bind(1),
	)
	rows, err := s.sqlDB.QueryContext(ctx, query, bastionID)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var facilities []domain.Facility
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		facilities = append(facilities, facility)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	return facilities, nil
}

// PutFacility inserts or updates one facility row.
func (s *Store) PutFacility(ctx context.Context, facility domain.Facility) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	row := flattenFacility(facility)
	query := fmt.Sprintf(`
INSERT INTO facilities (%s)
VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
ON CONFLICT (id) DO UPDATE SET
    size = excluded.size,
    task_kind = excluded.task_kind,
    task_order_name = excluded.task_order_name,
    task_target_size = excluded.task_target_size,
    task_progress = excluded.task_progress,
    task_duration = excluded.task_duration`,
		facilityColumns,
		s.bind(1), s.bind(2), s.bind(3), s.bind(4), s.bind(5),
		s.bind(6), s.bind(7), s.bind(8), s.bind(9), s.bind(10),
	)
	_, err := s.sqlDB.ExecContext(ctx, query,
		row.id, row.bastionID, row.name, row.kind, row.size,
		row.taskKind, row.taskOrderName, row.taskTargetSize, row.taskProgress, row.taskDuration,
	)
	if err != nil {
		return fmt.Errorf("put facility: %w", err)
	}
	return nil
}
