package models

// CategoryTotal is one breakdown entry: the summed amount of every
// transaction referencing the category. Field names are part of the API
// contract consumed by the dashboard UI.
type CategoryTotal struct {
	CategoryID    string  `json:"_id"`
	CategoryName  string  `json:"categoryName"`
	CategoryColor string  `json:"categoryColor"`
	Total         float64 `json:"total"`
}

// CategoryAmount is the pie-chart shape of the same aggregation.
type CategoryAmount struct {
	CategoryID string  `json:"_id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
}

// MonthlyPoint is one slot of the 12-point series, labeled with the
// abbreviated month name.
type MonthlyPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type DashboardSummary struct {
	TotalExpenses      float64         `json:"totalExpenses"`
	CategoryBreakdown  []CategoryTotal `json:"categoryBreakdown"`
	MonthlyExpenses    []MonthlyPoint  `json:"monthlyExpenses"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
}
