package domain

import (
	"strings"
	"time"
)

// Project belongs to exactly one user. Its creation timestamp is set once
// and never changes; jobPay starts at zero until Update Pay overwrites it.
type Project struct {
	ID        string
	UserID    string
	Name      string
	Memo      string
	JobPay    float64
	Materials []Material
	Laborers  []Laborer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProject validates name/memo and returns a project with zero pay and
// empty material/laborer lists.
func NewProject(id, userID, name, memo string, now time.Time) (Project, error) {
	if strings.TrimSpace(name) == "" {
		return Project{}, requiredField("name")
	}
	if strings.TrimSpace(memo) == "" {
		return Project{}, requiredField("memo")
	}

	return Project{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Memo:      memo,
		JobPay:    0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Material is a line item on a project: a quantity of something at a cost
// per unit.
type Material struct {
	ID        string
	ProjectID string
	Name      string
	Quantity  float64
	Value     float64 // cost per unit
	CreatedAt time.Time
}

// NewMaterial validates and constructs a material. Quantity and value are
// accepted as-is; the original backend never range-checked them and
// negative adjustments (refunds, returns) are legitimate entries.
func NewMaterial(id, projectID, name string, quantity, value float64, now time.Time) (Material, error) {
	if strings.TrimSpace(name) == "" {
		return Material{}, requiredField("name")
	}

	return Material{
		ID:        id,
		ProjectID: projectID,
		Name:      name,
		Quantity:  quantity,
		Value:     value,
		CreatedAt: now,
	}, nil
}

// Laborer is a person billed against a project at an hourly wage.
type Laborer struct {
	ID          string
	ProjectID   string
	Name        string
	Job         string
	HourlyWage  float64
	HoursWorked float64
	CreatedAt   time.Time
}

// NewLaborer validates and constructs a laborer entry.
func NewLaborer(id, projectID, name, job string, hourlyWage, hoursWorked float64, now time.Time) (Laborer, error) {
	if strings.TrimSpace(name) == "" {
		return Laborer{}, requiredField("name")
	}
	if strings.TrimSpace(job) == "" {
		return Laborer{}, requiredField("job")
	}

	return Laborer{
		ID:          id,
		ProjectID:   projectID,
		Name:        name,
		Job:         job,
		HourlyWage:  hourlyWage,
		HoursWorked: hoursWorked,
		CreatedAt:   now,
	}, nil
}
