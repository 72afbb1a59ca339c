package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStandardItemMergesByProduct(t *testing.T) {
	env := newTestEnv(t)
	p := seedProduct(t, env.db, "Dr. Klasik", 100)
	token := newSessionCart(t, env, 4)

	require.NoError(t, env.carts.Add(token, &AddItemIn{ProductID: &p.ID, Qty: 1}))
	require.NoError(t, env.carts.Add(token, &AddItemIn{ProductID: &p.ID, Qty: 1}))

	out, err := env.carts.Get(token)
	require.NoError(t, err)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, 2, out.Cart.Items[0].Qty)
	assert.Equal(t, 2, out.TotalItems)
	assert.InDelta(t, 200, out.TotalPrice, 0.01)
}

func TestAddCustomItemsNeverMerge(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env.db, "Köfte")
	i := seedIngredient(t, env.db, cat.ID, "Dana Köfte", 40)
	token := newSessionCart(t, env, 4)

	custom := &AddItemIn{Custom: &CustomItemIn{
		Name:        "Benim Burgerim",
		Ingredients: []CustomIngredientIn{{IngredientID: i.ID, Qty: 2}},
	}}
	require.NoError(t, env.carts.Add(token, custom))
	require.NoError(t, env.carts.Add(token, custom)) // byte-identical build

	out, err := env.carts.Get(token)
	require.NoError(t, err)
	require.Len(t, out.Cart.Items, 2)
	for _, it := range out.Cart.Items {
		assert.True(t, it.IsCustom)
		assert.InDelta(t, 80, it.Total, 0.01)
		require.Len(t, it.Ingredients, 1)
		assert.Equal(t, "Köfte", it.Ingredients[0].Category)
	}
	assert.InDelta(t, 160, out.TotalPrice, 0.01)
}

func TestAddUnavailableIngredientRejected(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env.db, "Sos")
	i := seedIngredient(t, env.db, cat.ID, "Eski Sos", 5)
	require.NoError(t, env.db.Model(i).Update("is_available", false).Error)
	token := newSessionCart(t, env, 1)

	err := env.carts.Add(token, &AddItemIn{Custom: &CustomItemIn{
		Ingredients: []CustomIngredientIn{{IngredientID: i.ID, Qty: 1}},
	}})
	assert.Error(t, err)
}

func TestUpdateQtyFloorsAtZero(t *testing.T) {
	env := newTestEnv(t)
	p := seedProduct(t, env.db, "Dr. Klasik", 100)
	token := newSessionCart(t, env, 4)
	require.NoError(t, env.carts.Add(token, &AddItemIn{ProductID: &p.ID, Qty: 2}))

	out, err := env.carts.Get(token)
	require.NoError(t, err)
	itemID := out.Cart.Items[0].ID

	require.NoError(t, env.carts.UpdateQty(token, itemID, -1))
	out, err = env.carts.Get(token)
	require.NoError(t, err)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, 1, out.Cart.Items[0].Qty)
	assert.InDelta(t, 100, out.TotalPrice, 0.01)

	// reaching zero removes the line, not before
	require.NoError(t, env.carts.UpdateQty(token, itemID, -1))
	out, err = env.carts.Get(token)
	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)
	assert.Zero(t, out.TotalItems)
}

func TestClearCart(t *testing.T) {
	env := newTestEnv(t)
	p := seedProduct(t, env.db, "Dr. Klasik", 100)
	token := newSessionCart(t, env, 4)
	require.NoError(t, env.carts.Add(token, &AddItemIn{ProductID: &p.ID, Qty: 3}))

	require.NoError(t, env.carts.Clear(token))
	out, err := env.carts.Get(token)
	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)
}

func TestSessionTableChangeDiscardsCart(t *testing.T) {
	env := newTestEnv(t)
	p := seedProduct(t, env.db, "Dr. Klasik", 100)
	token := newSessionCart(t, env, 4)
	require.NoError(t, env.carts.Add(token, &AddItemIn{ProductID: &p.ID, Qty: 1}))

	// same table: nothing happens
	table := 4
	out, err := env.sessions.Resolve(&ResolveIn{Token: token, TableNo: &table})
	require.NoError(t, err)
	assert.False(t, out.CartCleared)

	// new table scan: stale cart is discarded
	table = 7
	out, err = env.sessions.Resolve(&ResolveIn{Token: token, TableNo: &table})
	require.NoError(t, err)
	assert.True(t, out.CartCleared)
	assert.Equal(t, 7, out.Cart.TableNo)

	cartOut, err := env.carts.Get(token)
	require.NoError(t, err)
	assert.Empty(t, cartOut.Cart.Items)
}

func TestSessionWithoutTableKeepsStored(t *testing.T) {
	env := newTestEnv(t)
	token := newSessionCart(t, env, 12)

	out, err := env.sessions.Resolve(&ResolveIn{Token: token})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Cart.TableNo)
	assert.False(t, out.CartCleared)
}
