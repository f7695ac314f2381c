package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "battle not found",
			expected: "NOT_FOUND: battle not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown target selector",
			expected: "INVALID_ARGUMENT: unknown target selector",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("battle not found").
		WithMeta("battle_id", "b-1").
		WithMeta("caster_id", "c-1")

	s.Assert().Equal("b-1", err.Meta["battle_id"])
	s.Assert().Equal("c-1", err.Meta["caster_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to increment counter")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to increment counter", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("record not found").WithMeta("battle_id", "b-1")
	wrapped := errors.Wrap(baseErr, "failed to load battle")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("b-1", wrapped.Meta["battle_id"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.InvalidArgument("unknown effect").WithMeta("effect", "frozen")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInternal, "spell misconfigured")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("spell misconfigured", wrapped.Message)
	s.Assert().Equal("frozen", wrapped.Meta["effect"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"AlreadyExists", func() *errors.Error { return errors.AlreadyExists("test") }, errors.CodeAlreadyExists},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.Assert().True(stderrors.Is(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound("c")))
	s.Assert().False(stderrors.Is(errors.NotFound("a"), errors.Internal("a")))
}

func (s *ErrorsTestSuite) TestWrapDoesNotShareMeta() {
	base := errors.NotFound("missing").WithMeta("battle_id", "b-1")
	wrapped := errors.Wrap(base, "lookup").WithMeta("caster_id", "c-1")

	s.Assert().Equal("c-1", wrapped.Meta["caster_id"])
	s.Assert().NotContains(base.Meta, "caster_id")
}

func (s *ErrorsTestSuite) TestGetCode() {
	wrapped := errors.Wrap(errors.NotFound("test"), "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(fmt.Errorf("run: %w", context.Canceled)))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	s.Assert().Equal("b-1", errors.GetMeta(errors.Wrap(errors.NotFound("x").WithMeta("battle_id", "b-1"), "y"))["battle_id"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestIsCallerFault() {
	s.Assert().True(errors.CodeInvalidArgument.IsCallerFault())
	s.Assert().True(errors.CodeFailedPrecondition.IsCallerFault())
	s.Assert().False(errors.CodeInternal.IsCallerFault())
	s.Assert().False(errors.CodeUnavailable.IsCallerFault())
}
