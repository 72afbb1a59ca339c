package services

import (
	"testing"
	"time"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReportOrder(t *testing.T, db *gorm.DB, createdAt time.Time, total float64, status entity.OrderStatus, ingredients []entity.OrderIngredient) {
	t.Helper()
	o := entity.Order{
		OrderNo: "CB-test",
		TableNo: 1,
		Total:   total,
		Status:  status,
	}
	o.CreatedAt = createdAt
	if len(ingredients) > 0 {
		o.Lines = []entity.OrderLine{{Name: "Özel Burger", IsCustom: true, Qty: 1, Total: total, Ingredients: ingredients}}
	}
	require.NoError(t, db.Create(&o).Error)
}

func TestSummaryWindowsAndHistogram(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))

	now := time.Date(2025, 8, 15, 16, 30, 0, 0, time.UTC)
	today10 := time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
	today14 := time.Date(2025, 8, 15, 14, 0, 0, 0, time.UTC)
	aug3 := time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

	kofte := func(qty int) entity.OrderIngredient {
		return entity.OrderIngredient{IngredientID: 1, Name: "Dana Köfte", Qty: qty, UnitPrice: 40}
	}
	cheddar := entity.OrderIngredient{IngredientID: 2, Name: "Cheddar", Qty: 1, UnitPrice: 15}

	seedReportOrder(t, db, today10, 100, entity.StatusPaid, []entity.OrderIngredient{kofte(2)})
	seedReportOrder(t, db, today14, 60, entity.StatusPending, []entity.OrderIngredient{kofte(1), cheddar})
	seedReportOrder(t, db, aug3, 50, entity.StatusServed, nil)
	seedReportOrder(t, db, july, 999, entity.StatusPaid, nil)                // previous month, out of window
	seedReportOrder(t, db, today14, 500, entity.StatusCancelled, nil)       // never counts toward revenue
	seedReportOrder(t, db, aug3, 75, entity.StatusCancelled,                // cancelled ingredients stay out of the ranking
		[]entity.OrderIngredient{{IngredientID: 3, Name: "Trüf Sos", Qty: 9, UnitPrice: 50}})

	sum, err := svc.Summary(now, 5)
	require.NoError(t, err)

	assert.InDelta(t, 160, sum.TodayRevenue, 0.01)
	assert.Equal(t, 2, sum.TodayOrders)
	assert.InDelta(t, 210, sum.MonthRevenue, 0.01)
	assert.Equal(t, 3, sum.MonthOrders)

	assert.Equal(t, 1, sum.HourlyOrders[10])
	assert.Equal(t, 1, sum.HourlyOrders[14])
	assert.Equal(t, 1, sum.HourlyOrders[12])
	assert.Zero(t, sum.HourlyOrders[16])

	require.Len(t, sum.TopIngredients, 2)
	assert.Equal(t, "Dana Köfte", sum.TopIngredients[0].Name)
	assert.EqualValues(t, 3, sum.TopIngredients[0].Qty)
	assert.InDelta(t, 120, sum.TopIngredients[0].Revenue, 0.01)
	assert.Equal(t, "Cheddar", sum.TopIngredients[1].Name)

	// status counts cover everything, cancelled included
	byStatus := map[entity.OrderStatus]int64{}
	for _, sc := range sum.StatusCounts {
		byStatus[sc.Status] = sc.Count
	}
	assert.EqualValues(t, 2, byStatus[entity.StatusPaid])
	assert.EqualValues(t, 2, byStatus[entity.StatusCancelled])
	assert.EqualValues(t, 1, byStatus[entity.StatusPending])
}

func TestSummaryEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))

	sum, err := svc.Summary(time.Now(), 10)
	require.NoError(t, err)
	assert.Zero(t, sum.TodayOrders)
	assert.Zero(t, sum.MonthRevenue)
	assert.Empty(t, sum.TopIngredients)
	assert.Empty(t, sum.StatusCounts)
}
