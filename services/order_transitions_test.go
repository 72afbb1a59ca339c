package services

import (
	"testing"

	"github.com/huozturk-art/dr.burgerweb-sub000/builder"
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, env *testEnv) uint {
	t.Helper()
	cat := seedCategory(t, env.db, "Köfte")
	i := seedIngredient(t, env.db, cat.ID, "Dana Köfte", 40)
	out, err := env.orders.CreateFromBuilder(&BuilderSubmitIn{
		TableNo:    1,
		Selections: []builder.Selection{sel(i, "Köfte", 1)},
	})
	require.NoError(t, err)
	return out.ID
}

func TestAdvanceWalksFullChain(t *testing.T) {
	env := newTestEnv(t)
	id := seedOrder(t, env)

	// pending → confirmed: no timestamp stamped yet
	o, err := env.orders.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, o.Status)
	assert.Nil(t, o.PrintedAt)

	o, err = env.orders.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, o.Status)
	assert.NotNil(t, o.PrintedAt)
	assert.Nil(t, o.PreparedAt)

	o, err = env.orders.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, o.Status)
	assert.NotNil(t, o.PreparedAt)

	o, err = env.orders.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusServed, o.Status)
	assert.NotNil(t, o.ServedAt)

	o, err = env.orders.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, o.Status)
	assert.NotNil(t, o.PaidAt)

	_, err = env.orders.Advance(id)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestCancelFromActiveStatus(t *testing.T) {
	env := newTestEnv(t)
	id := seedOrder(t, env)

	_, err := env.orders.Advance(id) // confirmed
	require.NoError(t, err)

	o, err := env.orders.Cancel(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, o.Status)

	// terminal now: neither path is open
	_, err = env.orders.Cancel(id)
	assert.ErrorIs(t, err, ErrTerminalStatus)
	_, err = env.orders.Advance(id)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestGuardedUpdateRejectsStaleStatus(t *testing.T) {
	env := newTestEnv(t)
	id := seedOrder(t, env)

	// another operator already confirmed the order
	affected, err := env.orders.Repo.UpdateStatusGuard(env.db, id, entity.StatusPending, entity.StatusConfirmed, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	// a board still holding "pending" loses the race
	affected, err = env.orders.Repo.UpdateStatusGuard(env.db, id, entity.StatusPending, entity.StatusConfirmed, nil)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestBoardFiltersAndCount(t *testing.T) {
	env := newTestEnv(t)
	cat := seedCategory(t, env.db, "Köfte")
	i := seedIngredient(t, env.db, cat.ID, "Dana Köfte", 40)

	var ids []uint
	for n := 0; n < 3; n++ {
		out, err := env.orders.CreateFromBuilder(&BuilderSubmitIn{
			TableNo:    n + 1,
			Selections: []builder.Selection{sel(i, "Köfte", 1)},
		})
		require.NoError(t, err)
		ids = append(ids, out.ID)
	}
	require.NoError(t, env.db.Model(&entity.Order{}).Where("id = ?", ids[0]).Update("status", entity.StatusPaid).Error)
	require.NoError(t, env.db.Model(&entity.Order{}).Where("id = ?", ids[1]).Update("status", entity.StatusCancelled).Error)

	active, count, err := env.orders.Repo.ListForBoard("active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, ids[2], active[0].ID)
	require.Len(t, active[0].Lines, 1) // board rows carry their lines

	paid, count, err := env.orders.Repo.ListForBoard("paid")
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, ids[0], paid[0].ID)

	all, count, err := env.orders.Repo.ListForBoard("all")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.EqualValues(t, 3, count)
}

func TestAdvanceNotifiesBoard(t *testing.T) {
	env := newTestEnv(t)
	id := seedOrder(t, env)

	hub := &fakeNotifier{}
	env.orders.Hub = hub

	_, err := env.orders.Advance(id)
	require.NoError(t, err)
	require.Len(t, hub.changed, 1)
	assert.Equal(t, id, hub.changed[0])
}
