package world_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/orchestrators/world"
	"github.com/hexterra/world-api/internal/persistence/kv"
	snapshotmock "github.com/hexterra/world-api/internal/persistence/snapshot/mock"
	"github.com/hexterra/world-api/internal/pkg/clock"
	"github.com/hexterra/world-api/internal/pkg/idgen"
)

type SnapshotSuite struct {
	suite.Suite
	w *testWorld
}

func (s *SnapshotSuite) SetupTest() {
	s.w = newTestWorld(s.T(), &world.Rules{SnapshotBatchSize: 2})
}

func (s *SnapshotSuite) TestFlushPersistsAllTiles() {
	s.w.setPlayerEnergy(s.T(), "player-a", 1000)
	coords := [][2]int64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	for _, c := range coords {
		s.w.mustClaim(s.T(), "player-a", c[0], c[1])
	}

	out, err := s.w.engine.FlushSnapshot(s.w.ctx, &world.FlushSnapshotInput{})
	s.Require().NoError(err)
	s.Equal(5, out.TilesPersisted)

	rows := s.w.sink.Rows()
	s.Len(rows, 5)
	for _, c := range coords {
		row, ok := rows[[2]int64{c[0], c[1]}]
		s.Require().True(ok, "tile (%d,%d) persisted", c[0], c[1])
		s.Equal("player-a", row.OwnerID)
	}

	// Batch size 2: five tiles arrive as 2+2+1.
	batches := s.w.sink.Batches()
	s.Require().Len(batches, 3)
	s.Len(batches[0], 2)
	s.Len(batches[1], 2)
	s.Len(batches[2], 1)
}

func (s *SnapshotSuite) TestFlushIsIdempotent() {
	s.w.mustClaim(s.T(), "player-a", 0, 0)

	_, err := s.w.engine.FlushSnapshot(s.w.ctx, &world.FlushSnapshotInput{})
	s.Require().NoError(err)
	first := s.w.sink.Rows()

	_, err = s.w.engine.FlushSnapshot(s.w.ctx, &world.FlushSnapshotInput{})
	s.Require().NoError(err)
	second := s.w.sink.Rows()

	s.Equal(first, second)
}

func (s *SnapshotSuite) TestFlushWithoutSinkFails() {
	engine, err := world.NewEngine(&world.Config{
		Store: kv.NewMemory(),
		Clock: clock.NewFixedAtMillis(0),
		IDGen: idgen.NewPrefixed("evt"),
	})
	s.Require().NoError(err)

	_, err = engine.FlushSnapshot(context.Background(), &world.FlushSnapshotInput{})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SnapshotSuite) TestFlushPropagatesSinkError() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	sink := snapshotmock.NewMockSink(ctrl)
	sink.EXPECT().
		UpsertTiles(gomock.Any(), gomock.Any()).
		Return(errors.Unavailable("database down"))

	engine, err := world.NewEngine(&world.Config{
		Store: s.w.store,
		Sink:  sink,
		Clock: s.w.clock,
		IDGen: idgen.NewPrefixed("evt"),
	})
	s.Require().NoError(err)
	s.w.mustClaim(s.T(), "player-a", 0, 0)

	_, err = engine.FlushSnapshot(s.w.ctx, &world.FlushSnapshotInput{})
	s.True(errors.IsUnavailable(err))
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}
