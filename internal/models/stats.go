package models

// DashboardStats are the per-user counts shown on the dashboard.
type DashboardStats struct {
	Ventures   int           `json:"ventures"`
	Documents  int           `json:"documents"`
	Signatures int           `json:"signatures"`
	Activity   ActivityStats `json:"activity"`
}

// ActivityStats is derived from stored data, not placeholders: DaysActive
// counts whole days since the account was created.
type ActivityStats struct {
	DaysActive int `json:"daysActive"`
}

// VentureAnalytics are platform-wide aggregates across all users.
type VentureAnalytics struct {
	TotalVentures        int            `json:"totalVentures"`
	ActiveVentures       int            `json:"activeVentures"`
	CompletedVentures    int            `json:"completedVentures"`
	TotalValuation       float64        `json:"totalValuation"`
	AverageProgress      int            `json:"averageProgress"`
	StageDistribution    map[string]int `json:"stageDistribution"`
	IndustryDistribution map[string]int `json:"industryDistribution"`
	RecentActivity       []AuditEntry   `json:"recentActivity"`
}
