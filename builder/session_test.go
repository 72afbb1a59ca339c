package builder

import (
	"testing"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func cat(id uint, name string, required bool, min, max int) entity.IngredientCategory {
	return entity.IngredientCategory{
		Model:      gorm.Model{ID: id},
		Name:       name,
		IsRequired: required,
		MinSelect:  min,
		MaxSelect:  max,
	}
}

func ing(id uint, catID uint, name string, price float64, calories int) entity.Ingredient {
	return entity.Ingredient{
		Model:                gorm.Model{ID: id},
		IngredientCategoryID: catID,
		Name:                 name,
		Price:                price,
		Calories:             calories,
		IsAvailable:          true,
	}
}

// Bun(required 1..1), Patty(required 1..2), Sauce(optional 0..3)
func testSteps() []Step {
	return []Step{
		{
			Category:    cat(1, "Ekmek", true, 1, 1),
			Ingredients: []entity.Ingredient{ing(10, 1, "Klasik Ekmek", 0, 220), ing(11, 1, "Brioche", 5, 260)},
		},
		{
			Category:    cat(2, "Köfte", true, 1, 2),
			Ingredients: []entity.Ingredient{ing(20, 2, "Dana Köfte", 40, 310), ing(21, 2, "Tavuk Köfte", 30, 240)},
		},
		{
			Category:    cat(3, "Sos", false, 0, 3),
			Ingredients: []entity.Ingredient{ing(30, 3, "Ketçap", 0, 20), ing(31, 3, "Mayonez", 0, 90), ing(32, 3, "Özel Sos", 5, 70), ing(33, 3, "BBQ", 3, 60)},
		},
	}
}

func TestToggleSelectAndDeselect(t *testing.T) {
	s := NewSession("t", testSteps())

	require.NoError(t, s.Toggle(10))
	st := s.State()
	assert.Len(t, st.Selections["Ekmek"], 1)
	assert.Equal(t, 1, st.Selections["Ekmek"][0].Qty)

	// toggling again removes
	require.NoError(t, s.Toggle(10))
	st = s.State()
	assert.Empty(t, st.Selections["Ekmek"])
}

func TestToggleUnknownIngredient(t *testing.T) {
	s := NewSession("t", testSteps())
	// patty id while on the bun step
	assert.ErrorIs(t, s.Toggle(20), ErrUnknownIngredient)
}

func TestMaxSelectEvictsMostRecent(t *testing.T) {
	s := NewSession("t", testSteps())
	require.NoError(t, s.Toggle(10))
	require.NoError(t, s.Next())
	require.NoError(t, s.Toggle(20))
	require.NoError(t, s.Next())

	// sauce step, max 3
	require.NoError(t, s.Toggle(30))
	require.NoError(t, s.Toggle(31))
	require.NoError(t, s.Toggle(32))
	require.NoError(t, s.Toggle(33)) // full: 32 gets evicted, not 33 rejected

	st := s.State()
	sels := st.Selections["Sos"]
	require.Len(t, sels, 3)
	assert.Equal(t, uint(30), sels[0].Ingredient.ID)
	assert.Equal(t, uint(31), sels[1].Ingredient.ID)
	assert.Equal(t, uint(33), sels[2].Ingredient.ID)
}

func TestNextBlockedUntilRequiredMinimum(t *testing.T) {
	s := NewSession("t", testSteps())

	assert.ErrorIs(t, s.Next(), ErrStepIncomplete)

	require.NoError(t, s.Toggle(10))
	require.NoError(t, s.Next())

	// patty required too
	assert.ErrorIs(t, s.Next(), ErrStepIncomplete)
	require.NoError(t, s.Toggle(21))
	require.NoError(t, s.Next())

	// sauce optional: empty is fine, last step leads to the order form
	require.NoError(t, s.Next())
	assert.True(t, s.OnOrderForm())
}

func TestBackFromOrderFormAndFirstStep(t *testing.T) {
	s := NewSession("t", testSteps())
	require.NoError(t, s.Toggle(10))
	require.NoError(t, s.Next())
	require.NoError(t, s.Toggle(20))
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	require.True(t, s.OnOrderForm())

	s.Back()
	assert.False(t, s.OnOrderForm())
	assert.Equal(t, 2, s.State().StepIndex)

	s.Back()
	s.Back()
	assert.Equal(t, 0, s.State().StepIndex)
	s.Back() // no-op at step 0
	assert.Equal(t, 0, s.State().StepIndex)
}

func TestQuantityFloorRemovesAtZero(t *testing.T) {
	s := NewSession("t", testSteps())
	require.NoError(t, s.Toggle(10))
	require.NoError(t, s.Next())
	require.NoError(t, s.Toggle(20))

	s.UpdateQty(20, 1) // 2
	assert.Equal(t, 2, s.State().Selections["Köfte"][0].Qty)

	s.UpdateQty(20, -1)
	s.UpdateQty(20, -1) // reaches 0 → removed
	assert.Empty(t, s.State().Selections["Köfte"])

	// decrementing a gone selection never goes negative
	s.UpdateQty(20, -1)
	assert.Empty(t, s.State().Selections["Köfte"])
}

func TestTotalsMatchSelections(t *testing.T) {
	s := NewSession("t", testSteps())
	require.NoError(t, s.Toggle(10)) // bun ₺0
	require.NoError(t, s.Next())
	require.NoError(t, s.Toggle(20)) // patty ₺40
	s.UpdateQty(20, 1)               // x2
	require.NoError(t, s.Next())
	require.NoError(t, s.Toggle(30)) // sauce ₺0

	price, calories := s.Totals()
	assert.InDelta(t, 80.0, price, 0.01)
	assert.Equal(t, 220+2*310+20, calories)

	require.NoError(t, s.Next())
	assert.True(t, s.OnOrderForm())

	// removing the bun blocks the bun step again
	s.Back()
	s.Back()
	s.Back()
	require.NoError(t, s.Toggle(10))
	assert.ErrorIs(t, s.Next(), ErrStepIncomplete)
}

func TestApplySnapshotDropsCatalogDrift(t *testing.T) {
	s := NewSession("t", testSteps())

	dropped := s.ApplySnapshot([]SnapshotItem{
		{IngredientID: 11, Name: "Brioche", Category: "Ekmek", Qty: 1},
		{IngredientID: 20, Name: "Dana Köfte", Category: "Köfte", Qty: 2},
		{IngredientID: 99, Name: "Emekli Sos", Category: "Sos", Qty: 1},   // gone from catalog
		{IngredientID: 30, Name: "Ketçap", Category: "Yanlış", Qty: 1},    // category renamed
	})

	require.Len(t, dropped, 2)
	st := s.State()
	assert.Len(t, st.Selections["Ekmek"], 1)
	require.Len(t, st.Selections["Köfte"], 1)
	assert.Equal(t, 2, st.Selections["Köfte"][0].Qty)
	assert.Empty(t, st.Selections["Sos"])
	assert.InDelta(t, 5+2*40, st.TotalPrice, 0.01)
}

func TestApplySnapshotReplacesExistingSelections(t *testing.T) {
	s := NewSession("t", testSteps())
	require.NoError(t, s.Toggle(10))

	s.ApplySnapshot([]SnapshotItem{
		{IngredientID: 11, Name: "Brioche", Category: "Ekmek", Qty: 1},
	})

	sels := s.State().Selections["Ekmek"]
	require.Len(t, sels, 1)
	assert.Equal(t, uint(11), sels[0].Ingredient.ID)
}

func TestCompleteAndReset(t *testing.T) {
	s := NewSession("t", testSteps())
	require.NoError(t, s.Toggle(10))
	require.NoError(t, s.Next())
	require.NoError(t, s.Toggle(20))
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())

	s.Complete("CB-20250101120000-042")
	assert.Equal(t, "CB-20250101120000-042", s.OrderNo())
	assert.ErrorIs(t, s.Toggle(10), ErrAlreadyDone)

	s.Reset()
	assert.Empty(t, s.OrderNo())
	assert.Equal(t, 0, s.State().StepIndex)
	assert.Empty(t, s.State().Selections)
}
