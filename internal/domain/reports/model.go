package reports

type SalesPoint struct {
	Label string  `json:"date"`
	Sales float64 `json:"sales"`
}

type TopItem struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

type Summary struct {
	Total        float64    `json:"total"`
	AverageDaily float64    `json:"average_daily"`
	Best         SalesPoint `json:"best"`
}
