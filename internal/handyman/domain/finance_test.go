package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/toolshed/handyman/internal/handyman/domain"
)

func TestComputeFinancesEmptyProject(t *testing.T) {
	t.Parallel()

	p := domain.Project{Name: "Deck Build", Memo: "Rebuild back deck", JobPay: 500}

	f := domain.ComputeFinances(p)
	require.Zero(t, f.TotalMaterialCost)
	require.Zero(t, f.TotalLaborCost)
	require.Equal(t, 500.0, f.GrossIncome)
}

func TestComputeFinancesSumsLineItems(t *testing.T) {
	t.Parallel()

	p := domain.Project{
		JobPay: 500,
		Materials: []domain.Material{
			{Name: "Lumber", Quantity: 20, Value: 5.50},
			{Name: "Screws", Quantity: 2, Value: 10},
		},
		Laborers: []domain.Laborer{
			{Name: "Sam", Job: "Carpenter", HourlyWage: 30, HoursWorked: 8},
		},
	}

	f := domain.ComputeFinances(p)
	require.Equal(t, 130.0, f.TotalMaterialCost)
	require.Equal(t, 240.0, f.TotalLaborCost)
	require.Equal(t, 500.0-130.0-240.0, f.GrossIncome)
}

func TestComputeFinancesNegativeGrossIncome(t *testing.T) {
	t.Parallel()

	p := domain.Project{
		JobPay: 100,
		Laborers: []domain.Laborer{
			{Name: "Sam", Job: "Carpenter", HourlyWage: 50, HoursWorked: 10},
		},
	}

	f := domain.ComputeFinances(p)
	require.Equal(t, -400.0, f.GrossIncome)
}

func TestComputeFinancesIsPure(t *testing.T) {
	t.Parallel()

	p := domain.Project{
		JobPay:    500,
		Materials: []domain.Material{{Name: "Lumber", Quantity: 20, Value: 5.50}},
	}

	first := domain.ComputeFinances(p)
	second := domain.ComputeFinances(p)
	require.Equal(t, first, second)

	// Mutating the snapshot is reflected on the next computation; nothing
	// is cached.
	p.Materials = append(p.Materials, domain.Material{Name: "Paint", Quantity: 1, Value: 40})
	third := domain.ComputeFinances(p)
	require.Equal(t, 150.0, third.TotalMaterialCost)
}

func TestNewProjectValidation(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	_, err := domain.NewProject("id", "user", "", "memo", now)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Field)

	_, err = domain.NewProject("id", "user", "Deck Build", "   ", now)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "memo", verr.Field)

	p, err := domain.NewProject("id", "user", "Deck Build", "Rebuild back deck", now)
	require.NoError(t, err)
	require.Zero(t, p.JobPay)
	require.Empty(t, p.Materials)
	require.Empty(t, p.Laborers)
	require.Equal(t, now, p.CreatedAt)
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	cases := []struct {
		name      string
		first     string
		last      string
		email     string
		hash      string
		wantField string
	}{
		{"missing first name", "", "Doe", "jane@x.com", "hash", "firstName"},
		{"missing last name", "Jane", "", "jane@x.com", "hash", "lastName"},
		{"missing email", "Jane", "Doe", "", "hash", "email"},
		{"malformed email", "Jane", "Doe", "janex.com", "hash", "email"},
		{"no domain dot", "Jane", "Doe", "jane@xcom", "hash", "email"},
		{"missing password", "Jane", "Doe", "jane@x.com", "", "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewUser("id", tc.first, tc.last, tc.email, tc.hash, now)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.wantField, verr.Field)
		})
	}

	u, err := domain.NewUser("id", "Jane", "Doe", "jane@x.com", "hash", now)
	require.NoError(t, err)
	require.Equal(t, "jane@x.com", u.Email)
}

func TestNewMaterialAndLaborerValidation(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	_, err := domain.NewMaterial("id", "proj", "", 1, 1, now)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Field)

	m, err := domain.NewMaterial("id", "proj", "Lumber", 20, 5.50, now)
	require.NoError(t, err)
	require.Equal(t, 20.0, m.Quantity)

	_, err = domain.NewLaborer("id", "proj", "Sam", "", 30, 8, now)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "job", verr.Field)

	l, err := domain.NewLaborer("id", "proj", "Sam", "Carpenter", 30, 8, now)
	require.NoError(t, err)
	require.Equal(t, "Carpenter", l.Job)
}
