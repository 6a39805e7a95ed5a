package world_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/orchestrators/world"
)

type QuerySuite struct {
	suite.Suite
	w *testWorld
}

func (s *QuerySuite) SetupTest() {
	s.w = newTestWorld(s.T(), nil)
}

func (s *QuerySuite) TestGetTileNotFound() {
	_, err := s.w.engine.GetTile(s.w.ctx, &world.GetTileInput{Q: 9, R: 9})
	s.True(errors.IsNotFound(err))
}

func (s *QuerySuite) TestGetPlayerCreatesLazily() {
	out, err := s.w.engine.GetPlayer(s.w.ctx, &world.GetPlayerInput{UserID: "fresh"})
	s.Require().NoError(err)

	s.Equal("fresh", out.Player.UserID)
	s.Equal("fresh", out.Player.DisplayName)
	s.Equal(float64(100), out.Player.Energy)
}

func (s *QuerySuite) TestTilesInRangeSortedByDistance() {
	s.w.setPlayerEnergy(s.T(), "player-a", 1000)
	for _, c := range [][2]int64{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {3, 0}} {
		s.w.mustClaim(s.T(), "player-a", c[0], c[1])
	}

	out, err := s.w.engine.GetTilesInRange(s.w.ctx, &world.GetTilesInRangeInput{
		CenterQ: 0, CenterR: 0, Radius: 2,
	})
	s.Require().NoError(err)

	s.Require().Len(out.Tiles, 4, "(3,0) is outside radius 2")
	s.Equal([2]int64{0, 0}, [2]int64{out.Tiles[0].Q, out.Tiles[0].R})
	// Distance 1 ties break on (q, r) ascending.
	s.Equal([2]int64{0, 1}, [2]int64{out.Tiles[1].Q, out.Tiles[1].R})
	s.Equal([2]int64{1, 0}, [2]int64{out.Tiles[2].Q, out.Tiles[2].R})
	s.Equal([2]int64{2, 0}, [2]int64{out.Tiles[3].Q, out.Tiles[3].R})
}

func (s *QuerySuite) TestTilesInRangeCrossesChunks() {
	// chunkSize 64: (63, 0) and (64, 0) land in different chunks.
	s.w.mustClaim(s.T(), "player-a", 63, 0)
	s.w.mustClaim(s.T(), "player-a", 64, 0)

	out, err := s.w.engine.GetTilesInRange(s.w.ctx, &world.GetTilesInRangeInput{
		CenterQ: 63, CenterR: 0, Radius: 1,
	})
	s.Require().NoError(err)
	s.Len(out.Tiles, 2)
}

func (s *QuerySuite) TestTilesInRangeNegativeRadius() {
	_, err := s.w.engine.GetTilesInRange(s.w.ctx, &world.GetTilesInRangeInput{Radius: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *QuerySuite) TestRadarLayers() {
	s.w.setPlayerEnergy(s.T(), "player-a", 1000)
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.w.mustClaim(s.T(), "player-a", 1, 0)

	_, err := s.w.engine.RegisterNexus(s.w.ctx, &world.RegisterNexusInput{Q: 3, R: 0, Level: 2})
	s.Require().NoError(err)
	_, err = s.w.engine.RegisterNexus(s.w.ctx, &world.RegisterNexusInput{Q: 500, R: 500, Level: 9})
	s.Require().NoError(err)

	out, err := s.w.engine.GetRadarSummary(s.w.ctx, &world.GetRadarSummaryInput{
		UserID: "player-a", CenterQ: 0, CenterR: 0, Radius: 10,
	})
	s.Require().NoError(err)

	s.Len(out.Radar.PlayerBases, 2)
	s.Require().Len(out.Radar.NexusCores, 1, "distant nexus filtered out")
	s.Equal(int64(3), out.Radar.NexusCores[0].Q)
	s.Equal(int64(2), out.Radar.NexusCores[0].Level)

	// Claims above put activity on chunk (0,0); its center is (32,32).
	s.Require().NotEmpty(out.Radar.Hotspots)
	s.Equal(int64(32), out.Radar.Hotspots[0].Q)
	s.Equal(int64(32), out.Radar.Hotspots[0].R)
	s.Equal(int64(2), out.Radar.Hotspots[0].Activity)
}

func (s *QuerySuite) TestRadarBaseTruncation() {
	w := newTestWorld(s.T(), &world.Rules{MaxRadarBasePoints: 3})
	w.setPlayerEnergy(s.T(), "player-a", 1000)
	for q := int64(0); q < 6; q++ {
		w.mustClaim(s.T(), "player-a", q, 0)
	}

	out, err := w.engine.GetRadarSummary(w.ctx, &world.GetRadarSummaryInput{
		UserID: "player-a", CenterQ: 0, CenterR: 0, Radius: 10,
	})
	s.Require().NoError(err)
	s.Len(out.Radar.PlayerBases, 3)
}

func (s *QuerySuite) TestRadarHotspotsRankedByActivity() {
	w := newTestWorld(s.T(), &world.Rules{MaxRadarHotspots: 2})
	w.setPlayerEnergy(s.T(), "player-a", 1000)
	w.setPlayerEnergy(s.T(), "player-b", 1000)

	w.mustClaim(s.T(), "player-a", 0, 0)  // chunk (0,0): +1
	w.mustClaim(s.T(), "player-b", 1, 0)  // chunk (0,0): +1
	w.mustClaim(s.T(), "player-a", 1, 0)  // capture, chunk (0,0): +3
	w.mustClaim(s.T(), "player-a", -1, 0) // chunk (-1,0): +1
	w.mustClaim(s.T(), "player-a", 0, -1) // chunk (0,-1): +1

	out, err := w.engine.GetRadarSummary(w.ctx, &world.GetRadarSummaryInput{
		UserID: "player-a", CenterQ: 0, CenterR: 0, Radius: 80,
	})
	s.Require().NoError(err)

	s.Require().Len(out.Radar.Hotspots, 2, "capped at MaxRadarHotspots")
	s.Equal(int64(5), out.Radar.Hotspots[0].Activity, "hottest chunk first")
}

func (s *QuerySuite) TestRadarInvalidRadius() {
	for _, radius := range []int64{0, -5} {
		_, err := s.w.engine.GetRadarSummary(s.w.ctx, &world.GetRadarSummaryInput{
			UserID: "player-a", Radius: radius,
		})
		s.True(errors.IsInvalidArgument(err), "radius %d", radius)
	}
}

func (s *QuerySuite) TestLeaderboardLimitClamping() {
	s.w.setPlayerEnergy(s.T(), "player-a", 1000)
	s.w.setPlayerEnergy(s.T(), "player-b", 1000)
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.w.mustClaim(s.T(), "player-b", 5, 0)

	// Limit 0 clamps to 1.
	out, err := s.w.engine.GetLeaderboard(s.w.ctx, &world.GetLeaderboardInput{Limit: 0})
	s.Require().NoError(err)
	s.Len(out.Entries, 1)

	// A huge limit clamps to 100 and simply returns everyone.
	out, err = s.w.engine.GetLeaderboard(s.w.ctx, &world.GetLeaderboardInput{Limit: 1_000_000})
	s.Require().NoError(err)
	s.Len(out.Entries, 2)
}

func (s *QuerySuite) TestLeaderboardDropsBlankAndZeroScores() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	_, err := s.w.store.ZIncrBy(s.w.ctx, "leaderboard:tiles", 5, "  ")
	s.Require().NoError(err)
	_, err = s.w.store.ZIncrBy(s.w.ctx, "leaderboard:tiles", 0, "ghost")
	s.Require().NoError(err)

	out, err := s.w.engine.GetLeaderboard(s.w.ctx, &world.GetLeaderboardInput{Limit: 10})
	s.Require().NoError(err)

	s.Require().Len(out.Entries, 1)
	s.Equal("player-a", out.Entries[0].UserID)
}

func (s *QuerySuite) TestOwnerSetMatchesScoreInvariant() {
	s.w.setPlayerEnergy(s.T(), "player-a", 1000)
	s.w.setPlayerEnergy(s.T(), "player-b", 1000)
	claims := [][2]int64{{0, 0}, {1, 0}, {2, 0}}
	for _, c := range claims {
		s.w.mustClaim(s.T(), "player-a", c[0], c[1])
	}
	s.w.mustClaim(s.T(), "player-b", 1, 0)
	s.w.mustClaim(s.T(), "player-b", 3, 0)

	for _, userID := range []string{"player-a", "player-b"} {
		owned, err := s.w.store.SetMembers(s.w.ctx, "owner:"+userID+":tiles")
		s.Require().NoError(err)

		lb, err := s.w.engine.GetLeaderboard(s.w.ctx, &world.GetLeaderboardInput{Limit: 10})
		s.Require().NoError(err)
		for _, entry := range lb.Entries {
			if entry.UserID == userID {
				s.Equal(int64(len(owned)), entry.Score, "score tracks owner set for %s", userID)
			}
		}
	}
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}
