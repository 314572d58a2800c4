package http

import "github.com/toolshed/handyman/internal/handyman/domain"

// Wire representations. Field names match what the original clients
// already parse, so keep them stable.

type projectResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Memo      string             `json:"memo"`
	JobPay    float64            `json:"jobPay"`
	Materials []materialResponse `json:"materials"`
	Laborers  []laborerResponse  `json:"laborers"`
	Finances  financesResponse   `json:"finances"`
}

type materialResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Value    float64 `json:"value"`
}

type laborerResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	HourlyWage  float64 `json:"hourlyWage"`
	HoursWorked float64 `json:"hoursWorked"`
}

type financesResponse struct {
	TotalMaterialCost float64 `json:"totalMaterialCost"`
	TotalLaborCost    float64 `json:"totalLaborCost"`
	GrossIncome       float64 `json:"grossIncome"`
}

// projectListResponse is the body of every successful mutation and of the
// list endpoint: the caller's complete project list with derived finances.
type projectListResponse struct {
	Projects []projectResponse `json:"projects"`
}

func toProjectListResponse(projects []domain.Project) projectListResponse {
	out := projectListResponse{Projects: make([]projectResponse, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, toProjectResponse(p))
	}
	return out
}

func toProjectResponse(p domain.Project) projectResponse {
	fin := domain.ComputeFinances(p)

	materials := make([]materialResponse, 0, len(p.Materials))
	for _, m := range p.Materials {
		materials = append(materials, materialResponse{
			ID:       m.ID,
			Name:     m.Name,
			Quantity: m.Quantity,
			Value:    m.Value,
		})
	}

	laborers := make([]laborerResponse, 0, len(p.Laborers))
	for _, l := range p.Laborers {
		laborers = append(laborers, laborerResponse{
			ID:          l.ID,
			Name:        l.Name,
			Job:         l.Job,
			HourlyWage:  l.HourlyWage,
			HoursWorked: l.HoursWorked,
		})
	}

	return projectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Memo:      p.Memo,
		JobPay:    p.JobPay,
		Materials: materials,
		Laborers:  laborers,
		Finances: financesResponse{
			TotalMaterialCost: fin.TotalMaterialCost,
			TotalLaborCost:    fin.TotalLaborCost,
			GrossIncome:       fin.GrossIncome,
		},
	}
}

type createAccountRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token    string            `json:"token"`
	Email    string            `json:"email"`
	Projects []projectResponse `json:"projects"`
}

type projectRequest struct {
	Name string `json:"name"`
	Memo string `json:"memo"`
}

type payRequest struct {
	JobPay float64 `json:"jobPay"`
}

type materialRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Value    float64 `json:"value"`
}

type laborerRequest struct {
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	HourlyWage  float64 `json:"hourlyWage"`
	HoursWorked float64 `json:"hoursWorked"`
}
