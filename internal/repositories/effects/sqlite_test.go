package effects_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
	"github.com/KirkDiggler/reliquary-api/internal/repositories/effects"
	"github.com/KirkDiggler/reliquary-api/internal/testutils"
)

type SQLiteEffectsTestSuite struct {
	suite.Suite
	repo *effects.SQLiteRepository
	ctx  context.Context
}

func TestSQLiteEffectsSuite(t *testing.T) {
	suite.Run(t, new(SQLiteEffectsTestSuite))
}

func (s *SQLiteEffectsTestSuite) SetupTest() {
	s.ctx = context.Background()

	repo, err := effects.NewSQLite(s.ctx, &effects.SQLiteConfig{
		Path: filepath.Join(s.T().TempDir(), "catalog.db"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteEffectsTestSuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
}

func (s *SQLiteEffectsTestSuite) TestNewSQLiteRequiresPath() {
	repo, err := effects.NewSQLite(s.ctx, &effects.SQLiteConfig{Path: " "})
	s.Require().Error(err)
	s.Nil(repo)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteEffectsTestSuite) TestListEmptyTable() {
	_, err := s.repo.List(s.ctx, effects.ListInput{})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteEffectsTestSuite) TestReplaceThenList() {
	input := testutils.CreateTestCatalog()

	out, err := s.repo.Replace(s.ctx, effects.ReplaceInput{Effects: input})
	s.Require().NoError(err)
	s.Equal(len(input), out.Count)

	listed, err := s.repo.List(s.ctx, effects.ListInput{})
	s.Require().NoError(err)
	s.Equal(input, listed.Effects)
}

func (s *SQLiteEffectsTestSuite) TestReplaceOverwrites() {
	_, err := s.repo.Replace(s.ctx, effects.ReplaceInput{Effects: testutils.CreateTestCatalog()})
	s.Require().NoError(err)

	_, err = s.repo.Replace(s.ctx, effects.ReplaceInput{Effects: []*reliquary.Effect{
		{ID: "99", RelicType: reliquary.RelicTypeBoth},
	}})
	s.Require().NoError(err)

	listed, err := s.repo.List(s.ctx, effects.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Effects, 1)
	s.Equal("99", listed.Effects[0].ID)
	s.Nil(listed.Effects[0].RollOrder)
}

func (s *SQLiteEffectsTestSuite) TestReplaceDuplicateIDRollsBack() {
	_, err := s.repo.Replace(s.ctx, effects.ReplaceInput{Effects: testutils.CreateTestCatalog()})
	s.Require().NoError(err)

	_, err = s.repo.Replace(s.ctx, effects.ReplaceInput{Effects: []*reliquary.Effect{{ID: "1"}, {ID: "1"}}})
	s.Require().Error(err)

	listed, err := s.repo.List(s.ctx, effects.ListInput{})
	s.Require().NoError(err)
	s.Len(listed.Effects, len(testutils.CreateTestCatalog()))
}

func (s *SQLiteEffectsTestSuite) TestAsSource() {
	_, err := s.repo.Replace(s.ctx, effects.ReplaceInput{Effects: testutils.CreateTestCatalog()})
	s.Require().NoError(err)

	got, err := effects.AsSource(s.repo).Fetch(s.ctx)
	s.Require().NoError(err)
	s.Len(got, len(testutils.CreateTestCatalog()))
}
