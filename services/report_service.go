package services

import (
	"time"

	"github.com/huozturk-art/dr.burgerweb-sub000/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

type ReportSummary struct {
	TodayRevenue   float64                     `json:"todayRevenue"`
	TodayOrders    int                         `json:"todayOrders"`
	MonthRevenue   float64                     `json:"monthRevenue"`
	MonthOrders    int                         `json:"monthOrders"`
	HourlyOrders   [24]int                     `json:"hourlyOrders"`
	TopIngredients []repository.IngredientStat `json:"topIngredients"`
	StatusCounts   []repository.StatusCount    `json:"statusCounts"`
}

// Summary recomputes the whole dashboard from order history on every call;
// there is no persisted aggregate state.
func (s *ReportService) Summary(now time.Time, topN int) (*ReportSummary, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := dayStart.AddDate(0, 0, 1)

	monthOrders, err := s.Repo.OrdersBetween(monthStart, end)
	if err != nil {
		return nil, err
	}

	out := &ReportSummary{}
	for _, o := range monthOrders {
		out.MonthRevenue += o.Total
		out.MonthOrders++
		out.HourlyOrders[o.CreatedAt.Hour()]++
		if !o.CreatedAt.Before(dayStart) {
			out.TodayRevenue += o.Total
			out.TodayOrders++
		}
	}

	out.TopIngredients, err = s.Repo.TopIngredients(monthStart, end, topN)
	if err != nil {
		return nil, err
	}
	out.StatusCounts, err = s.Repo.StatusCounts()
	if err != nil {
		return nil, err
	}
	return out, nil
}
