package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/reliquary-api/internal/errors"
	"github.com/KirkDiggler/reliquary-api/internal/repositories/effects"
	"github.com/KirkDiggler/reliquary-api/internal/services/loader"
)

const catalogJSON = `[
	{"EffectID": 1, "RelicType": "Standard", "CompatibilityID": "A", "RollOrder": 1},
	{"EffectID": 2, "RelicType": "Standard", "CompatibilityID": "A", "RollOrder": 2},
	{"EffectID": 3, "RelicType": "Both", "RollOrder": 1}
]`

type LoaderTestSuite struct {
	suite.Suite
	ctx     context.Context
	dir     string
	svc     loader.Service
	jsonURI string
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()

	s.jsonURI = filepath.Join(s.dir, "reliquary.json")
	s.Require().NoError(os.WriteFile(s.jsonURI, []byte(catalogJSON), 0o600))

	svc, err := loader.New(&loader.Config{})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *LoaderTestSuite) TestNew() {
	_, err := loader.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = loader.New(&loader.Config{Timeout: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoaderTestSuite) TestLoadFile() {
	for _, uri := range []string{s.jsonURI, "file://" + s.jsonURI} {
		out, err := s.svc.Load(s.ctx, &loader.LoadInput{Source: uri})
		s.Require().NoError(err, uri)
		s.Equal(3, out.Catalog.Len())
	}
}

func (s *LoaderTestSuite) TestLoadHTTP() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	out, err := s.svc.Load(s.ctx, &loader.LoadInput{Source: srv.URL + "/reliquary.json"})
	s.Require().NoError(err)
	s.Equal(3, out.Catalog.Len())
}

func (s *LoaderTestSuite) TestLoadRedis() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()
	s.Require().NoError(mr.Set("relics", catalogJSON))

	out, err := s.svc.Load(s.ctx, &loader.LoadInput{Source: "redis://" + mr.Addr() + "/relics"})
	s.Require().NoError(err)
	s.Equal(3, out.Catalog.Len())

	_, err = s.svc.Load(s.ctx, &loader.LoadInput{Source: "redis://" + mr.Addr() + "/missing"})
	s.True(errors.IsUnavailable(err))
}

func (s *LoaderTestSuite) TestLoadRedisWithCredentials() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()
	mr.RequireUserAuth("reader", "s3cret")
	s.Require().NoError(mr.Set("relics", catalogJSON))

	out, err := s.svc.Load(s.ctx, &loader.LoadInput{Source: "redis://reader:s3cret@" + mr.Addr() + "/relics"})
	s.Require().NoError(err)
	s.Equal(3, out.Catalog.Len())

	_, err = s.svc.Load(s.ctx, &loader.LoadInput{Source: "redis://" + mr.Addr() + "/relics"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.NotContains(err.Error(), "s3cret")
}

func (s *LoaderTestSuite) TestImportIntoSQLiteThenLoad() {
	target := "sqlite://" + filepath.Join(s.dir, "catalog.db")

	imported, err := s.svc.Import(s.ctx, &loader.ImportInput{Source: s.jsonURI, Target: target})
	s.Require().NoError(err)
	s.Equal(3, imported.Count)

	out, err := s.svc.Load(s.ctx, &loader.LoadInput{Source: target})
	s.Require().NoError(err)
	s.Equal(3, out.Catalog.Len())

	e, ok := out.Catalog.Get("3")
	s.Require().True(ok)
	s.Equal(1, e.Order())
}

func (s *LoaderTestSuite) TestImportIntoRedis() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()

	_, err = s.svc.Import(s.ctx, &loader.ImportInput{Source: s.jsonURI, Target: "redis://" + mr.Addr() + "/"})
	s.Require().NoError(err)
	s.True(mr.Exists(effects.DefaultRedisKey))
}

func (s *LoaderTestSuite) TestLoadErrors() {
	testCases := []struct {
		name  string
		input *loader.LoadInput
		check func(error) bool
	}{
		{name: "nil input", input: nil, check: errors.IsInvalidArgument},
		{name: "empty source", input: &loader.LoadInput{Source: " "}, check: errors.IsInvalidArgument},
		{name: "unknown scheme", input: &loader.LoadInput{Source: "ftp://host/catalog"}, check: errors.IsInvalidArgument},
		{name: "missing file", input: &loader.LoadInput{Source: filepath.Join(s.dir, "nope.json")}, check: errors.IsUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.Load(s.ctx, tc.input)
			s.Require().Error(err)
			s.Nil(out)
			s.True(tc.check(err), err.Error())
		})
	}
}

func (s *LoaderTestSuite) TestImportRejectsReadOnlyTarget() {
	_, err := s.svc.Import(s.ctx, &loader.ImportInput{Source: s.jsonURI, Target: filepath.Join(s.dir, "out.json")})
	s.True(errors.IsInvalidArgument(err))
}
