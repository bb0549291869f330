// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/types"
	"github.com/vantagehq/interview-service/pkg/publicauth"
)

//go:generate mockgen -build_flags=--mod=mod -package interview -destination ./mock_interview.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package interview -destination ./mock_publicauth.go github.com/vantagehq/interview-service/pkg/publicauth CredentialValidatorInterface,TokenIssuerInterface
//go:generate mockgen -build_flags=--mod=mod -package interview -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package interview -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package interview -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage   *MockStorageInterface
	validator *MockCredentialValidatorInterface
	issuer    *MockTokenIssuerInterface
	logger    *MockLoggerInterface
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	mocks := &serviceMocks{
		storage:   NewMockStorageInterface(ctrl),
		validator: NewMockCredentialValidatorInterface(ctrl),
		issuer:    NewMockTokenIssuerInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()
	mocks.logger.EXPECT().Security().Return(logging.NewSecurityLogger(zap.NewNop())).AnyTimes()
	mocks.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(mocks.storage, mocks.validator, mocks.issuer, mockTracer, NewMockMonitorInterface(ctrl), mocks.logger)
	return s, mocks
}

func TestService_Authenticate(t *testing.T) {
	identity := &publicauth.Identity{
		InterviewID:     42,
		ContactEmail:    "contact@example.com",
		ContactID:       7,
		CompanyID:       "company-123",
		QuestionnaireID: 9,
	}
	expiresAt := time.Now().Add(time.Hour)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newServiceWithMocks(ctrl)
		mocks.validator.EXPECT().Validate(gomock.Any(), "42", "contact@example.com", "secret-code").Return(identity, nil)
		mocks.issuer.EXPECT().Issue(gomock.Any(), identity).Return("signed-token", expiresAt, nil)

		result, aerr := s.Authenticate(context.Background(), "42", "contact@example.com", "secret-code")
		if aerr != nil {
			t.Fatalf("expected success, got %v", aerr)
		}
		if result.Token != "signed-token" {
			t.Errorf("expected signed-token, got %q", result.Token)
		}
		if !result.ExpiresAt.Equal(expiresAt) {
			t.Errorf("expected expiry %v, got %v", expiresAt, result.ExpiresAt)
		}
	})

	t.Run("validation failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newServiceWithMocks(ctrl)
		mocks.validator.EXPECT().Validate(gomock.Any(), "42", "contact@example.com", "wrong").
			Return(nil, publicauth.ErrInvalidCode)

		_, aerr := s.Authenticate(context.Background(), "42", "contact@example.com", "wrong")
		if aerr == nil {
			t.Fatal("expected error but got none")
		}
		if aerr.Kind != publicauth.KindInvalidCode {
			t.Errorf("expected kind %s, got %s", publicauth.KindInvalidCode, aerr.Kind)
		}
	})

	t.Run("issuance failure maps to internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mocks := newServiceWithMocks(ctrl)
		mocks.validator.EXPECT().Validate(gomock.Any(), "42", "contact@example.com", "secret-code").Return(identity, nil)
		mocks.issuer.EXPECT().Issue(gomock.Any(), identity).Return("", time.Time{}, errors.New("signing failed"))

		_, aerr := s.Authenticate(context.Background(), "42", "contact@example.com", "secret-code")
		if aerr == nil {
			t.Fatal("expected error but got none")
		}
		if aerr.Kind != publicauth.KindInternalError {
			t.Errorf("expected kind %s, got %s", publicauth.KindInternalError, aerr.Kind)
		}
	})
}

func TestService_SubmitResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mocks := newServiceWithMocks(ctrl)

	created := &types.Response{ID: 100, InterviewID: 42, QuestionKey: "q1", Answer: "yes"}
	mocks.storage.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.Response) (*types.Response, error) {
			if r.InterviewID != 42 || r.QuestionKey != "q1" || r.Answer != "yes" {
				return nil, errors.New("unexpected response payload")
			}
			return created, nil
		})

	resp, err := s.SubmitResponse(context.Background(), 42, "q1", "yes")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.ID != 100 {
		t.Errorf("expected id 100, got %d", resp.ID)
	}
}

func TestService_AmendResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mocks := newServiceWithMocks(ctrl)

	updated := &types.Response{ID: 100, InterviewID: 42, QuestionKey: "q1", Answer: "no"}
	mocks.storage.EXPECT().UpdateResponse(gomock.Any(), int64(100), "no").Return(updated, nil)

	resp, err := s.AmendResponse(context.Background(), 100, "no")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.Answer != "no" {
		t.Errorf("expected amended answer, got %q", resp.Answer)
	}
}
