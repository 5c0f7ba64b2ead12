package domain

// Cache tags shared by the read endpoints. Writes invalidate tags, not
// individual keys, so every cached response derived from a table group
// drops together.
const (
	TagDashboardMetrics = "DashboardMetrics"
	TagProducts         = "Products"
	TagUsers            = "Users"
	TagExpenses         = "Expenses"
)
