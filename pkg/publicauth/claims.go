// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	jwt "github.com/golang-jwt/jwt/v5"
)

// PublicIntervieweeRole is the sentinel role carried by every public
// interview token. Tokens with any other role are rejected outright.
const PublicIntervieweeRole = "public_interviewee"

// InterviewClaims is the verified payload of a public interview token. It is
// treated as authoritative identity data for the lifetime of one request and
// is never persisted.
type InterviewClaims struct {
	AnonymousRole   string `json:"anonymousRole"`
	InterviewID     int64  `json:"interviewId"`
	Email           string `json:"email"`
	ContactID       int64  `json:"contactId"`
	CompanyID       string `json:"companyId"`
	QuestionnaireID int64  `json:"questionnaireId"`

	jwt.RegisteredClaims
}

// complete reports whether every claim the verifier requires is present.
func (c *InterviewClaims) complete() bool {
	return c.InterviewID != 0 &&
		c.Email != "" &&
		c.ContactID != 0 &&
		c.CompanyID != "" &&
		c.QuestionnaireID != 0
}
