package world_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/orchestrators/world"
)

func TestAllianceColor(t *testing.T) {
	assert.Equal(t, "#DB4396", world.AllianceColor("FOX"))

	// Deterministic, uppercase #RRGGBB for any valid tag.
	pattern := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for _, tag := range []string{"FOX", "A1B2", "ZZZ", "0000"} {
		c1 := world.AllianceColor(tag)
		c2 := world.AllianceColor(tag)
		assert.Equal(t, c1, c2)
		assert.Regexp(t, pattern, c1)
	}

	assert.NotEqual(t, world.AllianceColor("FOX"), world.AllianceColor("WOLF"))
}

type AllianceSuite struct {
	suite.Suite
	w *testWorld
}

func (s *AllianceSuite) SetupTest() {
	s.w = newTestWorld(s.T(), nil)
}

func (s *AllianceSuite) setTag(userID string, tag *string) *world.SetAllianceTagOutput {
	out, err := s.w.engine.SetAllianceTag(s.w.ctx, &world.SetAllianceTagInput{UserID: userID, Tag: tag})
	s.Require().NoError(err)
	return out
}

func (s *AllianceSuite) TestSetTagNormalizes() {
	out := s.setTag("player-a", strPtr("  fox "))

	s.Equal("FOX", out.Player.AllianceTag)
	s.Equal(world.AllianceColor("FOX"), out.Player.AllianceColor)
}

func (s *AllianceSuite) TestInvalidTags() {
	for _, bad := range []string{"", "AB", "TOOLONG", "F-X", "ab!", "ÅÄÖ"} {
		_, err := s.w.engine.SetAllianceTag(s.w.ctx, &world.SetAllianceTagInput{
			UserID: "player-a",
			Tag:    strPtr(bad),
		})
		s.True(errors.IsInvalidArgument(err), "tag %q", bad)
	}
}

func (s *AllianceSuite) TestClearTag() {
	s.setTag("player-a", strPtr("FOX"))
	out := s.setTag("player-a", nil)

	s.Empty(out.Player.AllianceTag)
	s.Empty(out.Player.AllianceColor, "color is null iff tag is null")
}

func (s *AllianceSuite) TestTagPropagatesToOwnedTiles() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.w.mustClaim(s.T(), "player-a", 1, 0)

	out := s.setTag("player-a", strPtr("FOX"))
	s.Equal(2, out.TilesUpdated)

	for _, coord := range [][2]int64{{0, 0}, {1, 0}} {
		tile, err := s.w.engine.GetTile(s.w.ctx, &world.GetTileInput{Q: coord[0], R: coord[1]})
		s.Require().NoError(err)
		s.Equal("FOX", tile.Tile.OwnerAllianceTag)
		s.Equal(world.AllianceColor("FOX"), tile.Tile.OwnerAllianceColor)
	}
}

func (s *AllianceSuite) TestSameTagIsNoOpOnTiles() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.setTag("player-a", strPtr("FOX"))

	out := s.setTag("player-a", strPtr("FOX"))
	s.Zero(out.TilesUpdated)
}

func (s *AllianceSuite) TestPropagationSkipsCapturedTiles() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.w.setPlayerEnergy(s.T(), "player-b", 200)
	s.w.mustClaim(s.T(), "player-b", 0, 0)

	out := s.setTag("player-a", strPtr("FOX"))
	s.Zero(out.TilesUpdated)

	tile, err := s.w.engine.GetTile(s.w.ctx, &world.GetTileInput{Q: 0, R: 0})
	s.Require().NoError(err)
	s.Empty(tile.Tile.OwnerAllianceTag, "captured tile keeps the new owner's alliance")
}

func (s *AllianceSuite) TestLeaderboardUnaffected() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.setTag("player-a", strPtr("FOX"))

	lb, err := s.w.engine.GetLeaderboard(s.w.ctx, &world.GetLeaderboardInput{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(lb.Entries, 1)
	s.Equal(int64(1), lb.Entries[0].Score)
	s.Equal("FOX", lb.Entries[0].AllianceTag)
}

func TestAllianceSuite(t *testing.T) {
	suite.Run(t, new(AllianceSuite))
}
