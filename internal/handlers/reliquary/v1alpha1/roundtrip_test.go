package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
	"github.com/KirkDiggler/reliquary-api/internal/assets"
	"github.com/KirkDiggler/reliquary-api/internal/catalog"
	"github.com/KirkDiggler/reliquary-api/internal/handlers/reliquary/v1alpha1"
	"github.com/KirkDiggler/reliquary-api/internal/orchestrators/composer"
	"github.com/KirkDiggler/reliquary-api/internal/pkg/clock"
	"github.com/KirkDiggler/reliquary-api/internal/pkg/idgen"
	"github.com/KirkDiggler/reliquary-api/internal/testutils"
)

// fixedRoller always rolls the same face
type fixedRoller struct {
	face int
}

func (r fixedRoller) Roll(_ int) (int, error) {
	return r.face, nil
}

func (r fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.face
	}
	return out, nil
}

type RoundTripTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	client reliquaryv1alpha1.ReliquaryServiceClient
	ctx    context.Context
}

func TestRoundTripTestSuite(t *testing.T) {
	suite.Run(t, new(RoundTripTestSuite))
}

func (s *RoundTripTestSuite) SetupTest() {
	s.ctx = context.Background()

	cat, err := catalog.New(testutils.CreateTestCatalog())
	s.Require().NoError(err)
	resolver, err := assets.NewResolver(&assets.Config{})
	s.Require().NoError(err)

	svc, err := composer.NewOrchestrator(&composer.Config{
		Catalog:     cat,
		DiceRoller:  fixedRoller{face: 3},
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewUUID("session"),
		Clock:       clock.New(),
		Assets:      resolver,
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ComposerService: svc})
	s.Require().NoError(err)

	lis := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	reliquaryv1alpha1.RegisterReliquaryServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis) // nolint:errcheck // stopped in teardown
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = reliquaryv1alpha1.NewReliquaryServiceClient(conn)
}

func (s *RoundTripTestSuite) TearDownTest() {
	_ = s.conn.Close() // nolint:errcheck // test cleanup
	s.server.Stop()
}

func (s *RoundTripTestSuite) TestSessionFlow() {
	started, err := s.client.StartSession(s.ctx, &reliquaryv1alpha1.StartSessionRequest{TypeChoice: "Standard"})
	s.Require().NoError(err)
	s.NotEmpty(started.SessionID)
	s.Equal("Yellow", started.View.Color)
	s.Equal(int32(0), started.View.Stage)
	s.Equal("Loaded 6 effects. Pick Effect 1 to begin.", started.View.Status)

	state := started.State
	for i, id := range []string{testutils.EffectVigorA, testutils.EffectOpenStrike, testutils.EffectNoOrder} {
		resp, err := s.client.ApplyEvent(s.ctx, &reliquaryv1alpha1.ApplyEventRequest{
			SessionID: started.SessionID,
			State:     state,
			Event: &reliquaryv1alpha1.Event{
				Kind:     "effect_change",
				Slot:     int32(i + 1),
				EffectID: id,
			},
		})
		s.Require().NoError(err)
		state = resp.State
		s.Equal(int32(i+1), resp.View.Stage)
	}

	s.Equal([]string{testutils.EffectVigorA, testutils.EffectOpenStrike, testutils.EffectNoOrder}, state.Slots)
}

func (s *RoundTripTestSuite) TestErrorsCarryCodes() {
	_, err := s.client.GetEffect(s.ctx, &reliquaryv1alpha1.GetEffectRequest{EffectID: "404"})
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())

	_, err = s.client.ResolveOrder(s.ctx, &reliquaryv1alpha1.ResolveOrderRequest{EffectIDs: []string{"1"}})
	st, _ = status.FromError(err)
	s.Equal(codes.InvalidArgument, st.Code())
}

func (s *RoundTripTestSuite) TestCheckValidity() {
	resp, err := s.client.CheckValidity(s.ctx, &reliquaryv1alpha1.CheckValidityRequest{
		EffectIDs: []string{testutils.EffectVigorA, testutils.EffectVigorB},
	})
	s.Require().NoError(err)
	s.Equal("invalid", resp.Validity)
	s.Equal([]string{"A"}, resp.Collisions)
}
