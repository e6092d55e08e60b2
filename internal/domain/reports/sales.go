package reports

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Spok95/uniformhub/internal/domain/catalog"
)

// Source produces the demo sales series. Seeding makes dashboards and tests reproducible.
// It is safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSeededSource(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// DailySales covers the days ending at now, oldest first, labelled like "Mar 14".
func (s *Source) DailySales(now time.Time, days int) []SalesPoint {
	if days <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SalesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		out = append(out, SalesPoint{
			Label: d.Format("Jan 2"),
			Sales: float64(s.rnd.Intn(80000) + 20000),
		})
	}
	return out
}

// BranchSales is the last seven days for one branch, labelled by weekday.
func (s *Source) BranchSales(now time.Time) []SalesPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SalesPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		out = append(out, SalesPoint{
			Label: d.Format("Mon"),
			Sales: float64(s.rnd.Intn(30000) + 15000),
		})
	}
	return out
}

func WeeklySales() []SalesPoint {
	return []SalesPoint{
		{Label: "Mon", Sales: 45200},
		{Label: "Tue", Sales: 52800},
		{Label: "Wed", Sales: 48900},
		{Label: "Thu", Sales: 61200},
		{Label: "Fri", Sales: 58400},
		{Label: "Sat", Sales: 72100},
		{Label: "Sun", Sales: 38600},
	}
}

func TopItems() []TopItem {
	return []TopItem{
		{Name: "Premium School Shirt", Category: catalog.CategorySchool, UnitsSold: 342, Revenue: 171000},
		{Name: "Executive Blazer", Category: catalog.CategoryCorporate, UnitsSold: 128, Revenue: 384000},
		{Name: "Athletic Jersey", Category: catalog.CategorySports, UnitsSold: 256, Revenue: 153600},
		{Name: "Medical Scrub Top", Category: catalog.CategoryMedical, UnitsSold: 198, Revenue: 118800},
		{Name: "Classic Hotel Shirt", Category: catalog.CategoryHospitality, UnitsSold: 145, Revenue: 87000},
	}
}

// Summarize totals points; Best keeps the first maximum.
func Summarize(points []SalesPoint) Summary {
	var sum Summary
	if len(points) == 0 {
		return sum
	}
	sum.Best = points[0]
	for _, p := range points {
		sum.Total += p.Sales
		if p.Sales > sum.Best.Sales {
			sum.Best = p
		}
	}
	sum.AverageDaily = sum.Total / float64(len(points))
	return sum
}
