package sqlite

import (
	"context"

	"github.com/toolshed/handyman/internal/handyman/domain"
)

type laborersRepo struct {
	db dbtx
}

func (r *laborersRepo) CreateLaborer(ctx context.Context, l domain.Laborer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO laborers (id, project_id, name, job, hourly_wage, hours_worked, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.ProjectID, l.Name, l.Job, l.HourlyWage, l.HoursWorked, l.CreatedAt,
	)
	return err
}

func (r *laborersRepo) UpdateLaborer(ctx context.Context, l domain.Laborer) error {
	return requireRowsAffected(r.db.ExecContext(ctx, `
		UPDATE laborers SET name = ?, job = ?, hourly_wage = ?, hours_worked = ?
		WHERE id = ? AND project_id = ?`,
		l.Name, l.Job, l.HourlyWage, l.HoursWorked, l.ID, l.ProjectID,
	))
}

func (r *laborersRepo) DeleteLaborer(ctx context.Context, projectID, laborerID string) error {
	return requireRowsAffected(r.db.ExecContext(ctx, `
		DELETE FROM laborers WHERE id = ? AND project_id = ?`,
		laborerID, projectID,
	))
}
