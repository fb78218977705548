package domain

// InvestmentPlan is a static catalog entry. The catalog is fixed in code;
// purchased instances copy DailyIncome so later catalog edits never touch them.
type InvestmentPlan struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	InvestAmount float64 `json:"invest_amount"`
	DailyIncome  float64 `json:"daily_income"`
	Duration     int     `json:"duration"` // days
	TotalIncome  float64 `json:"total_income"`
}

var InvestmentPlans = []InvestmentPlan{
	{ID: "king-1", Name: "King-1", InvestAmount: 500, DailyIncome: 150, Duration: 50, TotalIncome: 7500},
	{ID: "king-2", Name: "King-2", InvestAmount: 1000, DailyIncome: 300, Duration: 50, TotalIncome: 15000},
	{ID: "king-3", Name: "King-3", InvestAmount: 3000, DailyIncome: 600, Duration: 50, TotalIncome: 30000},
	{ID: "king-4", Name: "King-4", InvestAmount: 5000, DailyIncome: 1000, Duration: 50, TotalIncome: 50000},
}

// PlanByID looks up a catalog plan.
func PlanByID(id string) (InvestmentPlan, bool) {
	for _, p := range InvestmentPlans {
		if p.ID == id {
			return p, true
		}
	}
	return InvestmentPlan{}, false
}
