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

// MaterialService covers the material line items nested under a project.
// Each mutation runs inside a transaction pairing the ownership check with
// the write, so a mid-flight project deletion cannot leave orphans.
type MaterialService struct {
	store store.Store
}

func NewMaterialService(st store.Store) *MaterialService {
	return &MaterialService{store: st}
}

// AddMaterial appends a material to the project.
func (s *MaterialService) AddMaterial(ctx context.Context, userID, projectID, name string, quantity, value float64) ([]domain.Project, error) {
	material, err := domain.NewMaterial(idx.New().String(), projectID, name, quantity, value, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Projects().GetProject(ctx, userID, projectID); err != nil {
			return err
		}
		return tx.Materials().CreateMaterial(ctx, material)
	})
	if err != nil {
		return nil, mapStoreErr(err, "add material")
	}

	slogx.FromContext(ctx).Info("material added",
		"user_id", userID, "project_id", projectID, "material_id", material.ID)
	return s.listProjects(ctx, userID)
}

// EditMaterial overwrites every mutable field of the material.
func (s *MaterialService) EditMaterial(ctx context.Context, userID, projectID, materialID, name string, quantity, value float64) ([]domain.Project, error) {
	material, err := domain.NewMaterial(materialID, projectID, name, quantity, value, time.Time{})
	if err != nil {
		return nil, err
	}

	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Projects().GetProject(ctx, userID, projectID); err != nil {
			return err
		}
		return tx.Materials().UpdateMaterial(ctx, material)
	})
	if err != nil {
		return nil, mapStoreErr(err, "edit material")
	}

	return s.listProjects(ctx, userID)
}

// DeleteMaterial removes a single material from the project.
func (s *MaterialService) DeleteMaterial(ctx context.Context, userID, projectID, materialID string) ([]domain.Project, error) {
	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Projects().GetProject(ctx, userID, projectID); err != nil {
			return err
		}
		return tx.Materials().DeleteMaterial(ctx, projectID, materialID)
	})
	if err != nil {
		return nil, mapStoreErr(err, "delete material")
	}

	return s.listProjects(ctx, userID)
}

func (s *MaterialService) listProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	projects, err := s.store.Projects().ListProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
