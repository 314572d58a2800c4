package service

import (
	"context"
	"fmt"
	"time"

	"github.com/toolshed/handyman/internal/handyman/domain"
	"github.com/toolshed/handyman/internal/handyman/store"
	"github.com/toolshed/handyman/pkg/idx"
	"github.com/toolshed/handyman/pkg/slogx"
)

// LaborerService covers the laborer line items nested under a project. It
// mirrors MaterialService: ownership check and write share a transaction.
type LaborerService struct {
	store store.Store
}

func NewLaborerService(st store.Store) *LaborerService {
	return &LaborerService{store: st}
}

// AddLaborer appends a laborer to the project.
func (s *LaborerService) AddLaborer(ctx context.Context, userID, projectID, name, job string, hourlyWage, hoursWorked float64) ([]domain.Project, error) {
	laborer, err := domain.NewLaborer(idx.New().String(), projectID, name, job, hourlyWage, hoursWorked, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Projects().GetProject(ctx, userID, projectID); err != nil {
			return err
		}
		return tx.Laborers().CreateLaborer(ctx, laborer)
	})
	if err != nil {
		return nil, mapStoreErr(err, "add laborer")
	}

	slogx.FromContext(ctx).Info("laborer added",
		"user_id", userID, "project_id", projectID, "laborer_id", laborer.ID)
	return s.listProjects(ctx, userID)
}

// EditLaborer overwrites every mutable field of the laborer.
func (s *LaborerService) EditLaborer(ctx context.Context, userID, projectID, laborerID, name, job string, hourlyWage, hoursWorked float64) ([]domain.Project, error) {
	laborer, err := domain.NewLaborer(laborerID, projectID, name, job, hourlyWage, hoursWorked, time.Time{})
	if err != nil {
		return nil, err
	}

	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Projects().GetProject(ctx, userID, projectID); err != nil {
			return err
		}
		return tx.Laborers().UpdateLaborer(ctx, laborer)
	})
	if err != nil {
		return nil, mapStoreErr(err, "edit laborer")
	}

	return s.listProjects(ctx, userID)
}

// DeleteLaborer removes a single laborer from the project.
func (s *LaborerService) DeleteLaborer(ctx context.Context, userID, projectID, laborerID string) ([]domain.Project, error) {
	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Projects().GetProject(ctx, userID, projectID); err != nil {
			return err
		}
		return tx.Laborers().DeleteLaborer(ctx, projectID, laborerID)
	})
	if err != nil {
		return nil, mapStoreErr(err, "delete laborer")
	}

	return s.listProjects(ctx, userID)
}

func (s *LaborerService) listProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	projects, err := s.store.Projects().ListProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
