package world_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexterra/world-api/internal/orchestrators/world"
	"github.com/hexterra/world-api/internal/persistence/kv"
	"github.com/hexterra/world-api/internal/persistence/snapshot"
	"github.com/hexterra/world-api/internal/pkg/clock"
	"github.com/hexterra/world-api/internal/pkg/idgen"
)

// testWorld bundles an engine with the fakes its tests drive directly
type testWorld struct {
	engine *world.Engine
	store  kv.Store
	sink   *snapshot.MemorySink
	clock  *clock.Fixed
	ctx    context.Context
}

func newTestWorld(t *testing.T, rules *world.Rules) *testWorld {
	t.Helper()

	store := kv.NewMemory()
	sink := snapshot.NewMemory()
	fixed := clock.NewFixedAtMillis(1_000_000)

	engine, err := world.NewEngine(&world.Config{
		Store: store,
		Sink:  sink,
		Clock: fixed,
		IDGen: idgen.NewPrefixed("evt"),
		Rules: rules,
	})
	require.NoError(t, err)

	return &testWorld{
		engine: engine,
		store:  store,
		sink:   sink,
		clock:  fixed,
		ctx:    context.Background(),
	}
}

func (w *testWorld) claim(t *testing.T, userID string, q, r int64) *world.ClaimTileOutput {
	t.Helper()
	out, err := w.engine.ClaimTile(w.ctx, &world.ClaimTileInput{UserID: userID, Q: q, R: r})
	require.NoError(t, err)
	return out
}

func (w *testWorld) mustClaim(t *testing.T, userID string, q, r int64) *world.ClaimTileOutput {
	t.Helper()
	out := w.claim(t, userID, q, r)
	require.Equal(t, world.StatusOK, out.Status)
	return out
}

// setTileFields writes raw tile hash fields, the test harness's substitute
// for admin tooling
func (w *testWorld) setTileFields(t *testing.T, q, r int64, fields map[string]string) {
	t.Helper()
	key := fmt.Sprintf("tile:%d:%d", q, r)
	_, err := w.store.HashSet(w.ctx, key, fields)
	require.NoError(t, err)
}

func (w *testWorld) setPlayerEnergy(t *testing.T, userID string, energy float64) {
	t.Helper()
	_, err := w.store.HashSet(w.ctx, "player:"+userID, map[string]string{
		"energy": fmt.Sprintf("%g", energy),
	})
	require.NoError(t, err)
}

func (w *testWorld) playerEnergy(t *testing.T, userID string) float64 {
	t.Helper()
	out, err := w.engine.GetPlayer(w.ctx, &world.GetPlayerInput{UserID: userID})
	require.NoError(t, err)
	return out.Player.Energy
}

func (w *testWorld) tick(t *testing.T, nowMillis int64) *world.RechargeTickOutput {
	t.Helper()
	out, err := w.engine.RunRechargeTick(w.ctx, &world.RechargeTickInput{Now: nowMillis})
	require.NoError(t, err)
	return out
}

func strPtr(s string) *string {
	return &s
}
