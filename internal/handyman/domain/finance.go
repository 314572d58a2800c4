package domain

// Finances are the derived totals for one project. They are computed
// fresh on every read and never persisted, so they can't go stale against
// the material and laborer lists.
type Finances struct {
	TotalMaterialCost float64
	TotalLaborCost    float64
	GrossIncome       float64
}

// ComputeFinances derives the financial totals for a project snapshot.
// Pure and total: a project with no materials or laborers yields zero
// costs and grossIncome == jobPay; a loss-making project yields a
// negative grossIncome.
func ComputeFinances(p Project) Finances {
	var materialCost float64
	for _, m := range p.Materials {
		materialCost += m.Quantity * m.Value
	}

	var laborCost float64
	for _, l := range p.Laborers {
		laborCost += l.HourlyWage * l.HoursWorked
	}

	return Finances{
		TotalMaterialCost: materialCost,
		TotalLaborCost:    laborCost,
		GrossIncome:       p.JobPay - (materialCost + laborCost),
	}
}
