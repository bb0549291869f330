// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/storage"
	"github.com/vantagehq/interview-service/internal/tracing"
)

var _ CredentialValidatorInterface = (*CredentialValidator)(nil)

// CredentialValidator checks an interview id / email / access code triple
// against stored interview records. It backs both the token bootstrap
// endpoint and the legacy header/query flow.
type CredentialValidator struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Validate runs the credential checks in a fixed order: presence, id format,
// interview lookup, is_public, enabled, access code, contact email. The
// order is kept for compatibility with existing clients; it is not a
// security property. The first failing check terminates validation.
//
// The returned identity carries the interview's questionnaire id; callers
// serving the legacy flow zero it before attaching, since that flow predates
// the claim.
func (cv *CredentialValidator) Validate(ctx context.Context, rawInterviewID, email, accessCode string) (*Identity, *Error) {
	ctx, span := cv.tracer.Start(ctx, "publicauth.CredentialValidator.Validate")
	defer span.End()

	if rawInterviewID == "" || email == "" || accessCode == "" {
		return nil, ErrMissingCredentials
	}

	interviewID, err := strconv.ParseInt(rawInterviewID, 10, 64)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	interview, err := cv.storage.GetInterviewByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		cv.logger.Errorf("interview lookup failed: %v", err)
		return nil, ErrStorage
	}

	if !interview.IsPublic {
		cv.logger.Security().AuthzFailure(email, "public_interview_credentials")
		return nil, ErrNotPublic
	}

	if !interview.Enabled {
		cv.logger.Security().AuthzFailure(email, "public_interview_credentials")
		return nil, ErrDisabled
	}

	if subtle.ConstantTimeCompare([]byte(interview.AccessCode), []byte(accessCode)) != 1 {
		cv.logger.Security().AuthFailure(email, "public_interview_credentials", "access code mismatch")
		return nil, ErrInvalidCode
	}

	contact, err := cv.storage.GetContactByID(ctx, interview.ContactID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEmailMismatch
		}
		cv.logger.Errorf("contact lookup failed: %v", err)
		return nil, ErrStorage
	}

	// Exact match, no normalization.
	if contact.Email != email {
		cv.logger.Security().AuthFailure(email, "public_interview_credentials", "contact email mismatch")
		return nil, ErrEmailMismatch
	}

	return &Identity{
		InterviewID:     interview.ID,
		ContactEmail:    email,
		ContactID:       contact.ID,
		CompanyID:       interview.CompanyID,
		QuestionnaireID: interview.QuestionnaireID,
	}, nil
}

func NewCredentialValidator(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *CredentialValidator {
	return &CredentialValidator{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
