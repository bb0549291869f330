// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/storage"
	"github.com/vantagehq/interview-service/internal/types"
)

func publicInterview() *types.Interview {
	return &types.Interview{
		ID:              42,
		CompanyID:       "company-123",
		QuestionnaireID: 9,
		ContactID:       7,
		AccessCode:      "secret-code",
		IsPublic:        true,
		Enabled:         true,
	}
}

func TestCredentialValidator_Validate(t *testing.T) {
	contact := &types.Contact{ID: 7, CompanyID: "company-123", Email: "contact@example.com"}

	testCases := []struct {
		name         string
		interviewID  string
		email        string
		accessCode   string
		setupMocks   func(*MockStorageInterface)
		expectedKind Kind
	}{
		{
			name:        "success",
			interviewID: "42",
			email:       "contact@example.com",
			accessCode:  "secret-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(publicInterview(), nil)
				mockStorage.EXPECT().GetContactByID(gomock.Any(), int64(7)).Return(contact, nil)
			},
		},
		{
			name:         "missing access code",
			interviewID:  "42",
			email:        "contact@example.com",
			accessCode:   "",
			setupMocks:   func(*MockStorageInterface) {},
			expectedKind: KindMissingCredentials,
		},
		{
			name:         "non-integer interview id",
			interviewID:  "forty-two",
			email:        "contact@example.com",
			accessCode:   "secret-code",
			setupMocks:   func(*MockStorageInterface) {},
			expectedKind: KindInvalidFormat,
		},
		{
			name:        "interview not found",
			interviewID: "42",
			email:       "contact@example.com",
			accessCode:  "secret-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)
			},
			expectedKind: KindNotFound,
		},
		{
			name:        "interview lookup fails",
			interviewID: "42",
			email:       "contact@example.com",
			accessCode:  "secret-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(nil, errors.New("connection refused"))
			},
			expectedKind: KindStorageError,
		},
		{
			name:        "interview not public",
			interviewID: "42",
			email:       "contact@example.com",
			accessCode:  "secret-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				iv := publicInterview()
				iv.IsPublic = false
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(iv, nil)
			},
			expectedKind: KindNotPublic,
		},
		{
			// A disabled interview with a wrong access code reports the
			// disabled state: the enabled check runs first.
			name:        "disabled interview with wrong code",
			interviewID: "42",
			email:       "contact@example.com",
			accessCode:  "wrong-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				iv := publicInterview()
				iv.Enabled = false
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(iv, nil)
			},
			expectedKind: KindDisabled,
		},
		{
			name:        "wrong access code",
			interviewID: "42",
			email:       "contact@example.com",
			accessCode:  "wrong-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(publicInterview(), nil)
			},
			expectedKind: KindInvalidCode,
		},
		{
			// The access code is right but the email belongs to someone else.
			name:        "valid code with wrong email",
			interviewID: "42",
			email:       "intruder@example.com",
			accessCode:  "secret-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(publicInterview(), nil)
				mockStorage.EXPECT().GetContactByID(gomock.Any(), int64(7)).Return(contact, nil)
			},
			expectedKind: KindEmailMismatch,
		},
		{
			// The comparison is an exact byte match.
			name:        "email differs only by case",
			interviewID: "42",
			email:       "Contact@Example.com",
			accessCode:  "secret-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(publicInterview(), nil)
				mockStorage.EXPECT().GetContactByID(gomock.Any(), int64(7)).Return(contact, nil)
			},
			expectedKind: KindEmailMismatch,
		},
		{
			name:        "contact missing",
			interviewID: "42",
			email:       "contact@example.com",
			accessCode:  "secret-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(publicInterview(), nil)
				mockStorage.EXPECT().GetContactByID(gomock.Any(), int64(7)).Return(nil, storage.ErrNotFound)
			},
			expectedKind: KindEmailMismatch,
		},
		{
			name:        "contact lookup fails",
			interviewID: "42",
			email:       "contact@example.com",
			accessCode:  "secret-code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInterviewByID(gomock.Any(), int64(42)).Return(publicInterview(), nil)
				mockStorage.EXPECT().GetContactByID(gomock.Any(), int64(7)).Return(nil, errors.New("connection refused"))
			},
			expectedKind: KindStorageError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "publicauth.CredentialValidator.Validate").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Security().Return(logging.NewSecurityLogger(zap.NewNop())).AnyTimes()

			tc.setupMocks(mockStorage)

			cv := NewCredentialValidator(mockStorage, mockTracer, mockMonitor, mockLogger)

			id, aerr := cv.Validate(context.Background(), tc.interviewID, tc.email, tc.accessCode)

			if tc.expectedKind == "" {
				if aerr != nil {
					t.Fatalf("expected success, got %v (%s)", aerr, aerr.Kind)
				}
				if id.InterviewID != 42 || id.ContactID != 7 || id.CompanyID != "company-123" {
					t.Errorf("unexpected identity: %+v", id)
				}
				if id.QuestionnaireID != 9 {
					t.Errorf("expected questionnaire id 9, got %d", id.QuestionnaireID)
				}
				return
			}

			if aerr == nil {
				t.Fatal("expected error but got none")
			}
			if aerr.Kind != tc.expectedKind {
				t.Errorf("expected kind %s, got %s", tc.expectedKind, aerr.Kind)
			}
		})
	}
}
