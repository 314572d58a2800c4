package sqlite

import (
	"context"

	"github.com/toolshed/handyman/internal/handyman/domain"
)

type materialsRepo struct {
	db dbtx
}

func (r *materialsRepo) CreateMaterial(ctx context.Context, m domain.Material) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO materials (id, project_id, name, quantity, value, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.ProjectID, m.Name, m.Quantity, m.Value, m.CreatedAt,
	)
	return err
}

func (r *materialsRepo) UpdateMaterial(ctx context.Context, m domain.Material) error {
	return requireRowsAffected(r.db.ExecContext(ctx, `
		UPDATE materials SET name = ?, quantity = ?, value = ?
		WHERE id = ? AND project_id = ?`,
		m.Name, m.Quantity, m.Value, m.ID, m.ProjectID,
	))
}

func (r *materialsRepo) DeleteMaterial(ctx context.Context, projectID, materialID string) error {
	return requireRowsAffected(r.db.ExecContext(ctx, `
		DELETE FROM materials WHERE id = ? AND project_id = ?`,
		materialID, projectID,
	))
}
