package reliquaryv1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/encoding"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
)

type CodecTestSuite struct {
	suite.Suite
	codec reliquaryv1alpha1.Codec
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) TestRegistered() {
	s.NotNil(encoding.GetCodecV2(reliquaryv1alpha1.CodecName))
}

func (s *CodecTestSuite) TestPlainStruct() {
	order := 2
	data, err := s.codec.Marshal(&reliquaryv1alpha1.Effect{
		EffectID:  "7",
		Label:     "Vigor +2",
		RollOrder: &order,
	})
	s.Require().NoError(err)
	s.JSONEq(`{"effect_id":"7","label":"Vigor +2","roll_order":2}`, string(data))

	var back reliquaryv1alpha1.Effect
	s.Require().NoError(s.codec.Unmarshal(data, &back))
	s.Equal("7", back.EffectID)
	s.Require().NotNil(back.RollOrder)
	s.Equal(2, *back.RollOrder)
}

func (s *CodecTestSuite) TestProtoMessage() {
	data, err := s.codec.Marshal(&errdetails.ErrorInfo{Reason: "NOT_FOUND", Domain: "reliquary-api"})
	s.Require().NoError(err)

	var back errdetails.ErrorInfo
	s.Require().NoError(s.codec.Unmarshal(data, &back))
	s.Equal("NOT_FOUND", back.GetReason())
	s.Equal("reliquary-api", back.GetDomain())
}

func (s *CodecTestSuite) TestMalformed() {
	var req reliquaryv1alpha1.ApplyEventRequest
	s.Error(s.codec.Unmarshal([]byte(`{"event":`), &req))
}

func (s *CodecTestSuite) TestFullMethod() {
	s.Equal("/reliquary.api.v1alpha1.ReliquaryService/ApplyEvent",
		reliquaryv1alpha1.FullMethod(reliquaryv1alpha1.MethodApplyEvent))
	s.Len(reliquaryv1alpha1.ServiceDesc.Methods, 8)
}
