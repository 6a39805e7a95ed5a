package world_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hexterra/world-api/internal/orchestrators/world"
)

type RepairSuite struct {
	suite.Suite
	w *testWorld
}

func (s *RepairSuite) SetupTest() {
	s.w = newTestWorld(s.T(), nil)
}

func (s *RepairSuite) repair(userID string, q, r int64) *world.RepairTileOutput {
	out, err := s.w.engine.RepairTile(s.w.ctx, &world.RepairTileInput{UserID: userID, Q: q, R: r})
	s.Require().NoError(err)
	return out
}

func (s *RepairSuite) TestRepairMissingTile() {
	out := s.repair("player-a", 5, 5)
	s.Equal(world.StatusTileNotFound, out.Status)
}

func (s *RepairSuite) TestRepairNotOwner() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)

	out := s.repair("player-b", 0, 0)
	s.Equal(world.StatusNotOwner, out.Status)
}

func (s *RepairSuite) TestRepairInsufficientEnergy() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.w.setPlayerEnergy(s.T(), "player-a", 3)

	out := s.repair("player-a", 0, 0)
	s.Equal(world.StatusInsufficientEnergy, out.Status)
	s.Equal(float64(5), out.RequiredEnergy)
	s.Equal(float64(3), out.PlayerEnergy)
}

func (s *RepairSuite) TestRepairRestoresIntegrity() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.w.setTileFields(s.T(), 0, 0, map[string]string{"integrity": "55"})

	out := s.repair("player-a", 0, 0)

	s.Equal(world.StatusOK, out.Status)
	s.Equal(float64(75), out.Tile.Integrity)
	s.Equal(float64(5), out.EnergyCost)
	s.Equal(float64(85), out.EnergyAfter)
}

func (s *RepairSuite) TestRepairClampsAtFull() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.w.setTileFields(s.T(), 0, 0, map[string]string{"integrity": "95"})

	out := s.repair("player-a", 0, 0)
	s.Equal(float64(100), out.Tile.Integrity)
}

func (s *RepairSuite) TestRepairRecordsActivity() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)
	s.repair("player-a", 0, 0)

	activity, err := s.w.store.HashGetAll(s.w.ctx, "chunk:activity")
	s.Require().NoError(err)
	// +1 from the claim, +2 from the repair.
	s.Equal("3", activity["0:0"])
}

func TestRepairSuite(t *testing.T) {
	suite.Run(t, new(RepairSuite))
}
