package sqlite

import (
	"context"
	"time"

	"github.com/toolshed/handyman/internal/handyman/domain"
)

type projectsRepo struct {
	db dbtx
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, user_id, name, memo, job_pay, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Name, p.Memo, p.JobPay, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *projectsRepo) GetProject(ctx context.Context, userID, projectID string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, memo, job_pay, created_at, updated_at
		FROM projects WHERE id = ? AND user_id = ?`, projectID, userID)

	var p domain.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Memo, &p.JobPay, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

// ListProjects loads the user's projects hydrated with their materials
// and laborers. Three queries instead of one join keeps the scanning
// simple; ULID ordering reproduces creation order.
func (r *projectsRepo) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, memo, job_pay, created_at, updated_at
		FROM projects WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	index := make(map[string]int)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Memo, &p.JobPay, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Materials = []domain.Material{}
		p.Laborers = []domain.Laborer{}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(projects) == 0 {
		return projects, nil
	}

	if err := r.attachMaterials(ctx, userID, projects, index); err != nil {
		return nil, err
	}
	if err := r.attachLaborers(ctx, userID, projects, index); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectsRepo) attachMaterials(ctx context.Context, userID string, projects []domain.Project, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.project_id, m.name, m.quantity, m.value, m.created_at
		FROM materials m
		JOIN projects p ON p.id = m.project_id
		WHERE p.user_id = ? ORDER BY m.id`, userID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &m.Quantity, &m.Value, &m.CreatedAt); err != nil {
			return err
		}
		if i, ok := index[m.ProjectID]; ok {
			projects[i].Materials = append(projects[i].Materials, m)
		}
	}
	return rows.Err()
}

func (r *projectsRepo) attachLaborers(ctx context.Context, userID string, projects []domain.Project, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.project_id, l.name, l.job, l.hourly_wage, l.hours_worked, l.created_at
		FROM laborers l
		JOIN projects p ON p.id = l.project_id
		WHERE p.user_id = ? ORDER BY l.id`, userID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.Laborer
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Name, &l.Job, &l.HourlyWage, &l.HoursWorked, &l.CreatedAt); err != nil {
			return err
		}
		if i, ok := index[l.ProjectID]; ok {
			projects[i].Laborers = append(projects[i].Laborers, l)
		}
	}
	return rows.Err()
}

func (r *projectsRepo) UpdateProjectInfo(ctx context.Context, userID, projectID, name, memo string) error {
	return requireRowsAffected(r.db.ExecContext(ctx, `
		UPDATE projects SET name = ?, memo = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		name, memo, time.Now().UTC(), projectID, userID,
	))
}

func (r *projectsRepo) UpdateProjectPay(ctx context.Context, userID, projectID string, jobPay float64) error {
	return requireRowsAffected(r.db.ExecContext(ctx, `
		UPDATE projects SET job_pay = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		jobPay, time.Now().UTC(), projectID, userID,
	))
}

func (r *projectsRepo) DeleteProject(ctx context.Context, userID, projectID string) error {
	return requireRowsAffected(r.db.ExecContext(ctx, `
		DELETE FROM projects WHERE id = ? AND user_id = ?`,
		projectID, userID,
	))
}
