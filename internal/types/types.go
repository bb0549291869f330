// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Company struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Questionnaire struct {
	ID        int64     `db:"id"`
	CompanyID string    `db:"company_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}

type Contact struct {
	ID        int64     `db:"id"`
	CompanyID string    `db:"company_id"`
	Email     string    `db:"email"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
}

// Interview is an assessment session assigned to a contact. A public
// interview is reachable by the contact through a shared link plus either a
// signed token or the stored access code.
type Interview struct {
	ID              int64     `db:"id"`
	CompanyID       string    `db:"company_id"`
	QuestionnaireID int64     `db:"questionnaire_id"`
	ContactID       int64     `db:"contact_id"`
	AccessCode      string    `db:"access_code"`
	IsPublic        bool      `db:"is_public"`
	Enabled         bool      `db:"enabled"`
	Deleted         bool      `db:"deleted"`
	CreatedAt       time.Time `db:"created_at"`
}

type Response struct {
	ID          int64     `db:"id"`
	InterviewID int64     `db:"interview_id"`
	QuestionKey string    `db:"question_key"`
	Answer      string    `db:"answer"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
