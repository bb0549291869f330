// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package interview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/vantagehq/interview-service/internal/types"
	"github.com/vantagehq/interview-service/pkg/publicauth"
)

func newTestAPI(ctrl *gomock.Controller) (*API, *MockServiceInterface) {
	mockService := NewMockServiceInterface(ctrl)

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	api := NewAPI(mockService, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)
	return api, mockService
}

func newTestRouter(api *API) *chi.Mux {
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.Group(func(r chi.Router) {
		api.RegisterProtectedEndpoints(r)
	})
	return mux
}

func TestAPI_Authenticate(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectToken    bool
	}{
		{
			name: "success",
			body: `{"interview_id":"42","email":"contact@example.com","access_code":"secret-code"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Authenticate(gomock.Any(), "42", "contact@example.com", "secret-code").
					Return(&AuthResult{Token: "signed-token", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
			expectedStatus: http.StatusOK,
			expectToken:    true,
		},
		{
			name:           "malformed JSON",
			body:           `{"interview_id":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing access code",
			body:           `{"interview_id":"42","email":"contact@example.com"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong code",
			body: `{"interview_id":"42","email":"contact@example.com","access_code":"wrong"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Authenticate(gomock.Any(), "42", "contact@example.com", "wrong").
					Return(nil, publicauth.ErrInvalidCode)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "interview not found",
			body: `{"interview_id":"42","email":"contact@example.com","access_code":"secret-code"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Authenticate(gomock.Any(), "42", "contact@example.com", "secret-code").
					Return(nil, publicauth.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mockService := newTestAPI(ctrl)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/public/interviews/auth", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			newTestRouter(api).ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}

			if tc.expectToken {
				var body AuthResponse
				if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if !body.Success || body.Token != "signed-token" {
					t.Errorf("unexpected auth response: %+v", body)
				}
			}
		})
	}
}

func TestAPI_GetInterview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService := newTestAPI(ctrl)
	mockService.EXPECT().GetInterview(gomock.Any(), int64(42)).
		Return(&types.Interview{ID: 42, CompanyID: "company-123", IsPublic: true, Enabled: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/public/interviews/42", nil)
	w := httptest.NewRecorder()

	newTestRouter(api).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body InterviewResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success || body.Interview.ID != 42 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestAPI_GetInterviewOmitsSecretFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService := newTestAPI(ctrl)
	mockService.EXPECT().GetInterview(gomock.Any(), int64(42)).
		Return(&types.Interview{
			ID:         42,
			CompanyID:  "company-123",
			AccessCode: "super-secret-code",
			IsPublic:   true,
			Enabled:    true,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/public/interviews/42", nil)
	w := httptest.NewRecorder()

	newTestRouter(api).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	var interview map[string]json.RawMessage
	if err := json.Unmarshal(envelope["interview"], &interview); err != nil {
		t.Fatalf("failed to decode interview: %v", err)
	}

	for _, key := range []string{"access_code", "AccessCode", "deleted", "Deleted"} {
		if _, ok := interview[key]; ok {
			t.Errorf("interview payload must not contain %q", key)
		}
	}
	for _, key := range []string{"id", "company_id", "is_public", "enabled"} {
		if _, ok := interview[key]; !ok {
			t.Errorf("interview payload missing %q", key)
		}
	}
}

func TestAPI_SubmitResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService := newTestAPI(ctrl)
	mockService.EXPECT().SubmitResponse(gomock.Any(), int64(42), "q1", "yes").
		Return(&types.Response{ID: 100, InterviewID: 42, QuestionKey: "q1", Answer: "yes"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/public/interviews/42/responses",
		strings.NewReader(`{"question_key":"q1","answer":"yes"}`))
	w := httptest.NewRecorder()

	newTestRouter(api).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestAPI_AmendResponseValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, _ := newTestAPI(ctrl)

	req := httptest.NewRequest(http.MethodPatch, "/v1/public/responses/100",
		strings.NewReader(`{"answer":""}`))
	w := httptest.NewRecorder()

	newTestRouter(api).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
