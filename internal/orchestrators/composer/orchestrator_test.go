package composer_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/reliquary-api/internal/assets"
	"github.com/KirkDiggler/reliquary-api/internal/catalog"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
	"github.com/KirkDiggler/reliquary-api/internal/orchestrators/composer"
	mockclock "github.com/KirkDiggler/reliquary-api/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/reliquary-api/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/reliquary-api/internal/testutils"
)

type clearedEvent struct {
	sessionID string
	effectID  string
	slot      any
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockIDGen *idgenmock.MockGenerator
	mockClock *mockclock.MockClock
	bus       events.EventBus
	roller    *scriptedRoller
	catalog   *catalog.Catalog
	svc       composer.Service
	ctx       context.Context
	now       time.Time
	cleared   []clearedEvent
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.bus = events.NewBus()
	s.roller = &scriptedRoller{values: []int{2}}
	s.ctx = context.Background()
	s.now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.cleared = nil

	c, err := catalog.New(testutils.CreateTestCatalog())
	s.Require().NoError(err)
	s.catalog = c

	resolver, err := assets.NewResolver(&assets.Config{BaseURL: "/static"})
	s.Require().NoError(err)

	s.bus.SubscribeFunc(composer.EventSlotCleared, 50, func(_ context.Context, e events.Event) error {
		slot, _ := e.Context().Get(composer.ContextKeySlot)
		s.cleared = append(s.cleared, clearedEvent{
			sessionID: e.Target().GetID(),
			effectID:  e.Source().GetID(),
			slot:      slot,
		})
		return nil
	})

	svc, err := composer.NewOrchestrator(&composer.Config{
		Catalog:     s.catalog,
		DiceRoller:  s.roller,
		EventBus:    s.bus,
		IDGenerator: s.mockIDGen,
		Clock:       s.mockClock,
		Assets:      resolver,
		TypeHinter:  composer.StaticHints{testutils.EffectNightWard: reliquary.TypeChoiceDepthOfNight},
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Validation() {
	svc, err := composer.NewOrchestrator(&composer.Config{})
	s.Require().Error(err)
	s.Nil(svc)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")

	svc, err = composer.NewOrchestrator(nil)
	s.Require().Error(err)
	s.Nil(svc)
}

func (s *OrchestratorTestSuite) TestStartSession() {
	s.mockIDGen.EXPECT().Generate().Return("session_abc")
	s.mockClock.EXPECT().Now().Return(s.now)

	out, err := s.svc.StartSession(s.ctx, &composer.StartSessionInput{TypeChoice: "Depth Of Night"})
	s.Require().NoError(err)

	s.Equal("session_abc", out.SessionID)
	s.Equal(s.now, out.StartedAt)
	s.Equal(reliquary.TypeChoiceDepthOfNight, out.State.TypeChoice)
	s.Equal(reliquary.ColorBlue, out.State.RandomColor)
	s.Equal("/static/relics/default/depth_of_night.png", out.View.Asset.URL)
	s.Equal(3, out.View.ActiveOptionCount)
}

func (s *OrchestratorTestSuite) TestStartSession_BadColor() {
	_, err := s.svc.StartSession(s.ctx, &composer.StartSessionInput{ColorMode: "Mauve"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestApplyEvent_PublishesClearedSlots() {
	state := composer.DefaultState()
	state.TypeChoice = reliquary.TypeChoiceStandard
	state.RandomColor = reliquary.ColorRed
	state.Selection = reliquary.NewSelection(testutils.EffectVigorA, testutils.EffectOpenStrike, testutils.EffectNoOrder)

	out, err := s.svc.ApplyEvent(s.ctx, &composer.ApplyEventInput{
		SessionID: "session_abc",
		State:     state,
		Event:     composer.Event{Kind: composer.EventEffectChange, Slot: 1},
	})
	s.Require().NoError(err)
	s.True(out.State.Selection.IsEmpty())

	s.Equal([]clearedEvent{
		{sessionID: "session_abc", effectID: testutils.EffectOpenStrike, slot: 2},
		{sessionID: "session_abc", effectID: testutils.EffectNoOrder, slot: 3},
	}, s.cleared)
}

func (s *OrchestratorTestSuite) TestApplyEvent_TypeHint() {
	out, err := s.svc.ApplyEvent(s.ctx, &composer.ApplyEventInput{
		State: composer.DefaultState(),
		Event: composer.Event{Kind: composer.EventEffectChange, Slot: 1, EffectID: testutils.EffectNightWard},
	})
	s.Require().NoError(err)
	s.Equal(reliquary.TypeChoiceDepthOfNight, out.State.TypeChoice)
	s.Equal("/static/relics/depth/small/blue.png", out.View.Asset.URL)
}

func (s *OrchestratorTestSuite) TestApplyEvent_Errors() {
	testCases := []struct {
		name  string
		input *composer.ApplyEventInput
		check func(error) bool
	}{
		{name: "nil input", input: nil, check: errors.IsInvalidArgument},
		{
			name:  "unknown effect",
			input: &composer.ApplyEventInput{Event: composer.Event{Kind: composer.EventEffectChange, Slot: 1, EffectID: "404"}},
			check: errors.IsNotFound,
		},
		{
			name:  "bad slot",
			input: &composer.ApplyEventInput{Event: composer.Event{Kind: composer.EventEffectChange, Slot: 9, EffectID: "1"}},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "bad color",
			input: &composer.ApplyEventInput{Event: composer.Event{Kind: composer.EventColorChange, ColorMode: "Mauve"}},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown kind",
			input: &composer.ApplyEventInput{Event: composer.Event{Kind: "nope"}},
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.ApplyEvent(s.ctx, tc.input)
			s.Require().Error(err)
			s.Nil(out)
			s.True(tc.check(err), err.Error())
		})
	}
}

func (s *OrchestratorTestSuite) TestListEffects() {
	out, err := s.svc.ListEffects(s.ctx, &composer.ListEffectsInput{TypeChoice: reliquary.TypeChoiceStandard, Category: "Stats"})
	s.Require().NoError(err)
	s.Len(out.Effects, 2)
	s.Equal([]string{"Attack", "Stats", "Utility"}, out.Categories)
	s.Equal(6, out.Total)

	out, err = s.svc.ListEffects(s.ctx, &composer.ListEffectsInput{TypeChoice: "whatever"})
	s.Require().NoError(err)
	s.Len(out.Effects, 6)
}

func (s *OrchestratorTestSuite) TestGetEffect() {
	out, err := s.svc.GetEffect(s.ctx, &composer.GetEffectInput{EffectID: testutils.EffectVigorA})
	s.Require().NoError(err)
	s.Equal("Vigor +1", out.Effect.Label())
	s.Equal("/static/icons/reliquary/101.png", out.IconURL)

	_, err = s.svc.GetEffect(s.ctx, &composer.GetEffectInput{EffectID: "404"})
	s.True(errors.IsNotFound(err))
	s.Equal("404", errors.GetMeta(err)["effect_id"])

	_, err = s.svc.GetEffect(s.ctx, &composer.GetEffectInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListEligible() {
	out, err := s.svc.ListEligible(s.ctx, &composer.ListEligibleInput{
		TypeChoice: reliquary.TypeChoiceStandard,
		Selection:  reliquary.NewSelection(testutils.EffectVigorA),
		Slot:       2,
	})
	s.Require().NoError(err)
	s.False(out.Locked)
	s.Equal([]string{"A"}, out.Blocked)
	s.Len(out.Options, 2)

	out, err = s.svc.ListEligible(s.ctx, &composer.ListEligibleInput{
		TypeChoice:  reliquary.TypeChoiceStandard,
		Selection:   reliquary.NewSelection(testutils.EffectVigorA),
		Slot:        2,
		ShowIllegal: true,
	})
	s.Require().NoError(err)
	s.Len(out.Options, 3)

	out, err = s.svc.ListEligible(s.ctx, &composer.ListEligibleInput{Slot: 3})
	s.Require().NoError(err)
	s.True(out.Locked)

	_, err = s.svc.ListEligible(s.ctx, &composer.ListEligibleInput{Slot: 0})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ListEligible(s.ctx, &composer.ListEligibleInput{Slot: 2, Selection: reliquary.NewSelection("404")})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCheckValidity() {
	testCases := []struct {
		name  string
		ids   []string
		want  reliquary.Validity
		check func(error) bool
	}{
		{name: "different groups", ids: []string{"1", "3"}, want: reliquary.ValidityValid},
		{name: "shared group", ids: []string{"1", "2"}, want: reliquary.ValidityInvalid},
		{name: "single", ids: []string{"4"}, want: reliquary.ValidityValid},
		{name: "none", ids: nil, check: errors.IsInvalidArgument},
		{name: "too many", ids: []string{"1", "3", "4", "6"}, check: errors.IsInvalidArgument},
		{name: "unknown", ids: []string{"1", "404"}, check: errors.IsNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.CheckValidity(s.ctx, &composer.CheckValidityInput{EffectIDs: tc.ids})
			if tc.check != nil {
				s.Require().Error(err)
				s.True(tc.check(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, out.Validity)
		})
	}
}

func (s *OrchestratorTestSuite) TestResolveOrder() {
	out, err := s.svc.ResolveOrder(s.ctx, &composer.ResolveOrderInput{EffectIDs: []string{"4", "3", "1"}})
	s.Require().NoError(err)
	s.False(out.InOrder)
	s.Equal("3", out.Sorted[0].ID)
	s.Equal("1", out.Sorted[1].ID)
	s.Equal("4", out.Sorted[2].ID)
	s.Equal([3]bool{true, true, true}, out.Moved)

	out, err = s.svc.ResolveOrder(s.ctx, &composer.ResolveOrderInput{EffectIDs: []string{"1", "3", "4"}})
	s.Require().NoError(err)
	s.True(out.InOrder)
	s.Len(out.Sorted, 3)

	_, err = s.svc.ResolveOrder(s.ctx, &composer.ResolveOrderInput{EffectIDs: []string{"1", "3"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResolveAsset() {
	out, err := s.svc.ResolveAsset(s.ctx, &composer.ResolveAssetInput{
		TypeChoice: reliquary.TypeChoiceDepthOfNight,
		Color:      "green",
		Stage:      3,
	})
	s.Require().NoError(err)
	s.Equal("relics/depth/large/green.png", out.Asset.Path)

	out, err = s.svc.ResolveAsset(s.ctx, &composer.ResolveAssetInput{Stage: 0})
	s.Require().NoError(err)
	s.Equal("relics/default/standard.png", out.Asset.Path)

	_, err = s.svc.ResolveAsset(s.ctx, &composer.ResolveAssetInput{Stage: 2, Color: "Random"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ResolveAsset(s.ctx, &composer.ResolveAssetInput{Stage: 4, Color: "Red"})
	s.True(errors.IsInvalidArgument(err))
}
