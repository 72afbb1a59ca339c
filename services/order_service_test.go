package services

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/huozturk-art/dr.burgerweb-sub000/builder"
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu      sync.Mutex
	created []uint
	changed []uint
}

func (f *fakeNotifier) OrderCreated(o *entity.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, o.ID)
}

func (f *fakeNotifier) StatusChanged(o *entity.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changed = append(f.changed, o.ID)
}

func sel(i *entity.Ingredient, category string, qty int) builder.Selection {
	return builder.Selection{Ingredient: *i, Category: category, Qty: qty}
}

// 1 standard item (₺100) + 1 custom item (3 ingredients, ₺60) must produce
// exactly 1 order, 2 lines and 3 ingredient rows, total 160.
func TestCheckoutFromCartRowCounts(t *testing.T) {
	env := newTestEnv(t)
	p := seedProduct(t, env.db, "Dr. Klasik", 100)
	cat := seedCategory(t, env.db, "Köfte")
	i1 := seedIngredient(t, env.db, cat.ID, "Dana Köfte", 40)
	i2 := seedIngredient(t, env.db, cat.ID, "Cheddar", 15)
	i3 := seedIngredient(t, env.db, cat.ID, "Turşu", 5)

	token := newSessionCart(t, env, 3)
	require.NoError(t, env.carts.Add(token, &AddItemIn{ProductID: &p.ID, Qty: 1}))
	require.NoError(t, env.carts.Add(token, &AddItemIn{Custom: &CustomItemIn{
		Name: "Özel",
		Ingredients: []CustomIngredientIn{
			{IngredientID: i1.ID, Qty: 1},
			{IngredientID: i2.ID, Qty: 1},
			{IngredientID: i3.ID, Qty: 1},
		},
	}}))

	out, err := env.orders.CheckoutFromCart(token, &CheckoutReq{CustomerName: "Ayşe"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.OrderNo, "DRB-"))
	assert.InDelta(t, 160, out.Total, 0.01)

	var orderCount, lineCount, ingCount int64
	env.db.Model(&entity.Order{}).Count(&orderCount)
	env.db.Model(&entity.OrderLine{}).Count(&lineCount)
	env.db.Model(&entity.OrderIngredient{}).Count(&ingCount)
	assert.EqualValues(t, 1, orderCount)
	assert.EqualValues(t, 2, lineCount)
	assert.EqualValues(t, 3, ingCount)

	o, err := env.orders.Detail(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Equal(t, 3, o.TableNo)
	for _, line := range o.Lines {
		if line.IsCustom {
			assert.Len(t, line.Ingredients, 3)
		} else {
			assert.Empty(t, line.Ingredients)
		}
	}

	// checkout wipes the cart in the same transaction
	cartOut, err := env.carts.Get(token)
	require.NoError(t, err)
	assert.Empty(t, cartOut.Cart.Items)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	env := newTestEnv(t)
	token := newSessionCart(t, env, 1)

	_, err := env.orders.CheckoutFromCart(token, &CheckoutReq{})
	assert.Error(t, err)

	var count int64
	env.db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCheckoutNotifiesBoard(t *testing.T) {
	env := newTestEnv(t)
	hub := &fakeNotifier{}
	env.orders.Hub = hub

	p := seedProduct(t, env.db, "Dr. Klasik", 100)
	token := newSessionCart(t, env, 2)
	require.NoError(t, env.carts.Add(token, &AddItemIn{ProductID: &p.ID, Qty: 1}))

	out, err := env.orders.CheckoutFromCart(token, &CheckoutReq{})
	require.NoError(t, err)
	require.Len(t, hub.created, 1)
	assert.Equal(t, out.ID, hub.created[0])
}

func TestCreateFromBuilderSavesFavorite(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env.db, "Köfte")
	i := seedIngredient(t, env.db, cat.ID, "Dana Köfte", 40)

	out, err := env.orders.CreateFromBuilder(&BuilderSubmitIn{
		TableNo:       5,
		CustomerPhone: "5551234567",
		BurgerName:    "Canavar",
		SaveFavorite:  true,
		Selections:    []builder.Selection{sel(i, "Köfte", 2)},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.OrderNo, "CB-"))
	assert.InDelta(t, 80, out.Total, 0.01)

	var saved []entity.SavedBurger
	require.NoError(t, env.db.Find(&saved).Error)
	require.Len(t, saved, 1)
	assert.Equal(t, "5551234567", saved[0].Phone)
	assert.Equal(t, "Canavar", saved[0].Name)

	var items []builder.SnapshotItem
	require.NoError(t, json.Unmarshal([]byte(saved[0].Ingredients), &items))
	require.Len(t, items, 1)
	assert.Equal(t, i.ID, items[0].IngredientID)
	assert.Equal(t, 2, items[0].Qty)
}

func TestCreateFromBuilderWithoutOptIn(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env.db, "Köfte")
	i := seedIngredient(t, env.db, cat.ID, "Dana Köfte", 40)

	_, err := env.orders.CreateFromBuilder(&BuilderSubmitIn{
		TableNo:    5,
		Selections: []builder.Selection{sel(i, "Köfte", 1)},
	})
	require.NoError(t, err)

	var count int64
	env.db.Model(&entity.SavedBurger{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateFromSavedDropsRetiredIngredients(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env.db, "Köfte")
	live := seedIngredient(t, env.db, cat.ID, "Dana Köfte", 40)

	snapshot, err := json.Marshal([]builder.SnapshotItem{
		{IngredientID: live.ID, Name: "Dana Köfte", Category: "Köfte", Qty: 1},
		{IngredientID: 9999, Name: "Emekli Malzeme", Category: "Sos", Qty: 1},
	})
	require.NoError(t, err)
	saved := entity.SavedBurger{Phone: "5551234567", Name: "Eski Favori", Ingredients: string(snapshot), Total: 45}
	require.NoError(t, env.db.Create(&saved).Error)

	out, err := env.orders.CreateFromSaved(saved.ID, 99, nil)
	require.NoError(t, err)

	o, err := env.orders.Detail(out.ID)
	require.NoError(t, err)
	require.Len(t, o.Lines, 1)
	require.Len(t, o.Lines[0].Ingredients, 1)
	assert.Equal(t, live.ID, o.Lines[0].Ingredients[0].IngredientID)
	assert.InDelta(t, 40, o.Total, 0.01) // current price, retired entry dropped
	assert.Equal(t, 99, o.TableNo)
}

func TestCreateFromSavedAllRetiredFails(t *testing.T) {
	env := newTestEnv(t)
	snapshot, err := json.Marshal([]builder.SnapshotItem{
		{IngredientID: 9999, Name: "Yok", Category: "Sos", Qty: 1},
	})
	require.NoError(t, err)
	saved := entity.SavedBurger{Phone: "5551234567", Ingredients: string(snapshot)}
	require.NoError(t, env.db.Create(&saved).Error)

	_, err = env.orders.CreateFromSaved(saved.ID, 0, nil)
	assert.Error(t, err)
}
