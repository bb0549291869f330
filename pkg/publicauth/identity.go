// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"github.com/vantagehq/interview-service/internal/db"
)

// AuthMode tags which of the two authentication paths produced an identity.
type AuthMode string

const (
	// AuthModeToken marks identities projected from verified token claims.
	AuthModeToken AuthMode = "token"
	// AuthModeCredentials marks identities from the legacy credential flow.
	AuthModeCredentials AuthMode = "credentials"
)

// Identity is the request-scoped public interview identity, projected either
// from verified token claims or from a validated credential triple. It is
// created at authentication time, attached to the request context, and
// discarded when the request ends.
type Identity struct {
	Mode         AuthMode
	InterviewID  int64
	ContactEmail string
	ContactID    int64
	CompanyID    string
	// QuestionnaireID is zero for legacy credential sessions, which predate
	// the claim.
	QuestionnaireID int64
}

// User is the generic audit-trail marker attached alongside the identity.
// Public interviewees have no platform user account, so ID is always empty.
type User struct {
	ID    string
	Email string
	Role  string
}

func (i *Identity) User() User {
	return User{ID: "", Email: i.ContactEmail, Role: PublicIntervieweeRole}
}

func (i *Identity) Scope() db.Scope {
	return db.Scope{
		InterviewID: i.InterviewID,
		ContactID:   i.ContactID,
		CompanyID:   i.CompanyID,
	}
}

func identityFromClaims(c *InterviewClaims) *Identity {
	return &Identity{
		Mode:            AuthModeToken,
		InterviewID:     c.InterviewID,
		ContactEmail:    c.Email,
		ContactID:       c.ContactID,
		CompanyID:       c.CompanyID,
		QuestionnaireID: c.QuestionnaireID,
	}
}
