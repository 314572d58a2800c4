package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/toolshed/handyman/internal/handyman/domain"
	"github.com/toolshed/handyman/internal/handyman/store"
	"github.com/toolshed/handyman/pkg/idx"
	"github.com/toolshed/handyman/pkg/slogx"
)

// ProjectService covers the project-level operations. Every mutation
// returns the caller's refreshed project list, matching what clients
// render after each change.
type ProjectService struct {
	store store.Store
}

func NewProjectService(st store.Store) *ProjectService {
	return &ProjectService{store: st}
}

// ListProjects returns the user's projects, hydrated, in creation order.
func (s *ProjectService) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	projects, err := s.store.Projects().ListProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// AddProject creates a project with zero pay and no line items.
func (s *ProjectService) AddProject(ctx context.Context, userID, name, memo string) ([]domain.Project, error) {
	project, err := domain.NewProject(idx.New().String(), userID, name, memo, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.store.Projects().CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	slogx.FromContext(ctx).Info("project created", "user_id", userID, "project_id", project.ID)
	return s.ListProjects(ctx, userID)
}

// EditProject overwrites the name and memo of an existing project.
func (s *ProjectService) EditProject(ctx context.Context, userID, projectID, name, memo string) ([]domain.Project, error) {
	if _, err := domain.NewProject(projectID, userID, name, memo, time.Time{}); err != nil {
		return nil, err
	}

	err := s.store.Projects().UpdateProjectInfo(ctx, userID, projectID, name, memo)
	if err != nil {
		return nil, mapStoreErr(err, "update project")
	}

	return s.ListProjects(ctx, userID)
}

// UpdatePay sets the agreed pay for the job. Pay is the one numeric field
// that must not be negative; nobody agrees to pay for the privilege of
// working.
func (s *ProjectService) UpdatePay(ctx context.Context, userID, projectID string, jobPay float64) ([]domain.Project, error) {
	if jobPay < 0 {
		return nil, &domain.ValidationError{Field: "jobPay", Reason: "must not be negative"}
	}

	err := s.store.Projects().UpdateProjectPay(ctx, userID, projectID, jobPay)
	if err != nil {
		return nil, mapStoreErr(err, "update pay")
	}

	return s.ListProjects(ctx, userID)
}

// DeleteProject removes the project and everything attached to it.
func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID string) ([]domain.Project, error) {
	err := s.store.Projects().DeleteProject(ctx, userID, projectID)
	if err != nil {
		return nil, mapStoreErr(err, "delete project")
	}

	slogx.FromContext(ctx).Info("project deleted", "user_id", userID, "project_id", projectID)
	return s.ListProjects(ctx, userID)
}

// mapStoreErr translates store sentinels into service sentinels and wraps
// everything else with context.
func mapStoreErr(err error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
