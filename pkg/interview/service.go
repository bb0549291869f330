// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package interview

import (
	"context"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/tracing"
	"github.com/vantagehq/interview-service/internal/types"
	"github.com/vantagehq/interview-service/pkg/publicauth"
)

type Service struct {
	storage   StorageInterface
	validator publicauth.CredentialValidatorInterface
	issuer    publicauth.TokenIssuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate exchanges a public credential triple for a signed token.
// Validation failures come back as typed errors carrying their HTTP status.
func (s *Service) Authenticate(ctx context.Context, rawInterviewID, email, accessCode string) (*AuthResult, *publicauth.Error) {
	ctx, span := s.tracer.Start(ctx, "interview.Service.Authenticate")
	defer span.End()

	id, authErr := s.validator.Validate(ctx, rawInterviewID, email, accessCode)
	if authErr != nil {
		return nil, authErr
	}

	token, expiresAt, err := s.issuer.Issue(ctx, id)
	if err != nil {
		s.logger.Errorf("failed to issue token for interview %v: %v", id.InterviewID, err)
		return nil, publicauth.ErrInternal
	}

	s.logger.Security().AuthSuccess(email, "interview_token_issued")

	return &AuthResult{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *Service) GetInterview(ctx context.Context, id int64) (*types.Interview, error) {
	ctx, span := s.tracer.Start(ctx, "interview.Service.GetInterview")
	defer span.End()

	return s.storage.GetInterviewByID(ctx, id)
}

func (s *Service) ListResponses(ctx context.Context, interviewID int64) ([]*types.Response, error) {
	ctx, span := s.tracer.Start(ctx, "interview.Service.ListResponses")
	defer span.End()

	return s.storage.ListResponsesByInterviewID(ctx, interviewID)
}

func (s *Service) SubmitResponse(ctx context.Context, interviewID int64, questionKey, answer string) (*types.Response, error) {
	ctx, span := s.tracer.Start(ctx, "interview.Service.SubmitResponse")
	defer span.End()

	return s.storage.CreateResponse(ctx, &types.Response{
		InterviewID: interviewID,
		QuestionKey: questionKey,
		Answer:      answer,
	})
}

func (s *Service) AmendResponse(ctx context.Context, responseID int64, answer string) (*types.Response, error) {
	ctx, span := s.tracer.Start(ctx, "interview.Service.AmendResponse")
	defer span.End()

	return s.storage.UpdateResponse(ctx, responseID, answer)
}

func NewService(storage StorageInterface, validator publicauth.CredentialValidatorInterface, issuer publicauth.TokenIssuerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.validator = validator
	s.issuer = issuer

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
