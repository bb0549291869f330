// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"context"
	"time"

	"github.com/vantagehq/interview-service/internal/db"
	"github.com/vantagehq/interview-service/internal/types"
)

// StorageInterface is the subset of the storage layer this package reads
// for credential validation and scope enforcement. It never writes.
type StorageInterface interface {
	GetInterviewByID(ctx context.Context, id int64) (*types.Interview, error)
	GetContactByID(ctx context.Context, id int64) (*types.Contact, error)
	GetResponseByID(ctx context.Context, id int64) (*types.Response, error)
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw token string and validates its claims.
	// Returns the decoded claims on success, a typed failure otherwise.
	VerifyToken(ctx context.Context, rawToken string) (*InterviewClaims, *Error)
}

type TokenIssuerInterface interface {
	// Issue mints a signed public interview token for a validated identity.
	Issue(ctx context.Context, id *Identity) (string, time.Time, error)
}

type CredentialValidatorInterface interface {
	// Validate checks an interview id / email / access code triple against
	// stored interview records and projects an identity from it.
	Validate(ctx context.Context, rawInterviewID, email, accessCode string) (*Identity, *Error)
}

// ScopeBinderInterface binds a request-scoped database transaction whose
// row-level security context carries the verified identity.
type ScopeBinderInterface interface {
	WithScope(ctx context.Context, scope db.Scope, fn func(context.Context) error) error
}
