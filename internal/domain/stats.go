package domain

// DashboardStats — агрегированные показатели для административной панели.
// Вычисляются по требованию и нигде не сохраняются.
type DashboardStats struct {
	TotalSales    int64
	TotalOrders   int
	PendingOrders int
	TotalProducts int
}
