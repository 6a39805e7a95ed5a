package world_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hexterra/world-api/internal/orchestrators/world"
)

type TickSuite struct {
	suite.Suite
}

// resetTile pins a tile to a known simulation state
func resetTile(t *testWorld, s *TickSuite, q, r int64, energy, integrity string) {
	t.setTileFields(s.T(), q, r, map[string]string{
		"energy":      energy,
		"integrity":   integrity,
		"last_update": "0",
	})
}

func (s *TickSuite) TestAllianceAdjacencyBonus() {
	w := newTestWorld(s.T(), &world.Rules{InitialPlayerEnergy: 500, IntegrityDecayPerMinute: 1})

	_, err := w.engine.SetAllianceTag(w.ctx, &world.SetAllianceTagInput{UserID: "player-a", Tag: strPtr("FOX")})
	s.Require().NoError(err)
	_, err = w.engine.SetAllianceTag(w.ctx, &world.SetAllianceTagInput{UserID: "player-b", Tag: strPtr("FOX")})
	s.Require().NoError(err)

	w.mustClaim(s.T(), "player-a", 0, 0)
	w.mustClaim(s.T(), "player-b", 1, 0)

	resetTile(w, s, 0, 0, "0", "100")
	resetTile(w, s, 1, 0, "0", "100")

	out := w.tick(s.T(), 60_000)
	s.Equal(2, out.TilesUpdated)
	s.Equal(2, out.OwnersCredited)

	// 60 s of generation at the 1.05 adjacency bonus, on top of
	// 500 - 10 spent on the claim.
	s.Equal(float64(553), w.playerEnergy(s.T(), "player-a"))
	s.Equal(float64(553), w.playerEnergy(s.T(), "player-b"))

	tile, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(float64(63), tile.Tile.Energy)
	s.Equal(float64(99), tile.Tile.Integrity)
}

func (s *TickSuite) TestNoBonusWithoutAlliedNeighbor() {
	w := newTestWorld(s.T(), nil)
	w.mustClaim(s.T(), "player-a", 0, 0)
	resetTile(w, s, 0, 0, "0", "100")

	w.tick(s.T(), 60_000)

	tile, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(float64(60), tile.Tile.Energy, "base rate without the bonus")
}

func (s *TickSuite) TestSameAllianceSameOwnerNoBonus() {
	// Adjacent tiles of the same player never earn the bonus.
	w := newTestWorld(s.T(), nil)
	_, err := w.engine.SetAllianceTag(w.ctx, &world.SetAllianceTagInput{UserID: "player-a", Tag: strPtr("FOX")})
	s.Require().NoError(err)
	w.mustClaim(s.T(), "player-a", 0, 0)
	w.mustClaim(s.T(), "player-a", 1, 0)
	resetTile(w, s, 0, 0, "0", "100")
	resetTile(w, s, 1, 0, "0", "100")

	w.tick(s.T(), 60_000)

	tile, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(float64(60), tile.Tile.Energy)
}

func (s *TickSuite) TestIntegrityFloorStopsGeneration() {
	w := newTestWorld(s.T(), nil)
	w.mustClaim(s.T(), "player-a", 0, 0)
	resetTile(w, s, 0, 0, "0", "1")

	w.tick(s.T(), 60_000)

	tile, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(float64(0), tile.Tile.Integrity)
	s.Equal(float64(60), tile.Tile.Energy)
	energyAfterFirst := w.playerEnergy(s.T(), "player-a")

	// Dead tile: a later tick moves last_update but generates nothing.
	w.tick(s.T(), 180_000)

	tile, err = w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(float64(0), tile.Tile.Integrity)
	s.Equal(float64(60), tile.Tile.Energy)
	s.Equal(energyAfterFirst, w.playerEnergy(s.T(), "player-a"))
}

func (s *TickSuite) TestRepeatedTickSameNowIsNoOp() {
	w := newTestWorld(s.T(), nil)
	w.mustClaim(s.T(), "player-a", 0, 0)
	resetTile(w, s, 0, 0, "0", "100")

	w.tick(s.T(), 60_000)
	tileAfterFirst, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	energyAfterFirst := w.playerEnergy(s.T(), "player-a")

	out := w.tick(s.T(), 60_000)
	s.Zero(out.TilesUpdated)

	tileAfterSecond, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(tileAfterFirst.Tile, tileAfterSecond.Tile)
	s.Equal(energyAfterFirst, w.playerEnergy(s.T(), "player-a"))
}

func (s *TickSuite) TestTileEnergyClampsAtMax() {
	w := newTestWorld(s.T(), nil)
	w.mustClaim(s.T(), "player-a", 0, 0)
	resetTile(w, s, 0, 0, "95", "100")

	w.tick(s.T(), 60_000)

	tile, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(float64(100), tile.Tile.Energy)
}

func (s *TickSuite) TestPlayerEnergyClampsAtMax() {
	w := newTestWorld(s.T(), nil)
	w.mustClaim(s.T(), "player-a", 0, 0)
	w.setPlayerEnergy(s.T(), "player-a", 990)
	resetTile(w, s, 0, 0, "0", "100")

	w.tick(s.T(), 60_000)

	s.Equal(float64(1000), w.playerEnergy(s.T(), "player-a"))
}

func (s *TickSuite) TestUnownedTileChargesNoPlayer() {
	w := newTestWorld(s.T(), nil)
	_, err := w.engine.RegisterNexus(w.ctx, &world.RegisterNexusInput{Q: 0, R: 0, Level: 1})
	s.Require().NoError(err)
	resetTile(w, s, 0, 0, "0", "100")

	out := w.tick(s.T(), 60_000)
	s.Zero(out.OwnersCredited)

	tile, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(float64(60), tile.Tile.Energy, "unowned tiles still bank energy")
}

func (s *TickSuite) TestZeroDecayKeepsFullActiveWindow() {
	w := newTestWorld(s.T(), &world.Rules{IntegrityDecayPerMinute: 0})
	w.mustClaim(s.T(), "player-a", 0, 0)
	resetTile(w, s, 0, 0, "0", "50")

	w.tick(s.T(), 30_000)

	tile, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(float64(50), tile.Tile.Integrity, "no decay configured")
	s.Equal(float64(30), tile.Tile.Energy)
}

func (s *TickSuite) TestActivityDecayHalvesAndDrops() {
	w := newTestWorld(s.T(), &world.Rules{ActivityDecayInterval: time.Minute})
	w.mustClaim(s.T(), "player-a", 0, 0)
	w.mustClaim(s.T(), "player-a", 1, 0)
	// chunk 0:0 activity is now 2.

	// First tick baselines the decay timer, second is within the interval,
	// third crosses it.
	w.tick(s.T(), 10_000)
	w.tick(s.T(), 20_000)

	activity, err := w.store.HashGetAll(w.ctx, "chunk:activity")
	s.Require().NoError(err)
	s.Equal("2", activity["0:0"])

	w.tick(s.T(), 80_000)
	activity, err = w.store.HashGetAll(w.ctx, "chunk:activity")
	s.Require().NoError(err)
	s.Equal("1", activity["0:0"])

	w.tick(s.T(), 150_000)
	activity, err = w.store.HashGetAll(w.ctx, "chunk:activity")
	s.Require().NoError(err)
	_, present := activity["0:0"]
	s.False(present, "counter at 1 halves to zero and is dropped")
}

func (s *TickSuite) TestRoundingToFourDecimals() {
	w := newTestWorld(s.T(), nil)
	w.mustClaim(s.T(), "player-a", 0, 0)
	resetTile(w, s, 0, 0, "0", "100")

	// 1234 ms of generation at 1/s = 1.234 energy; decay = 1234/60000.
	w.tick(s.T(), 1_234)

	tile, err := w.engine.GetTile(w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Equal(1.234, tile.Tile.Energy)
	s.Equal(99.9794, tile.Tile.Integrity)
}

func TestTickSuite(t *testing.T) {
	suite.Run(t, new(TickSuite))
}
