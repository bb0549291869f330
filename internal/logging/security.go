// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events for authentication and
// authorization outcomes. Every event carries a unique event ID so entries
// can be correlated with external SIEM tooling.
type SecurityLogger struct {
	l *zap.Logger
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}

func (s *SecurityLogger) AuthSuccess(subject, action string) {
	s.l.Info("authentication succeeded",
		zap.String("event_id", uuid.NewString()),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) AuthFailure(subject, action, reason string) {
	s.l.Warn("authentication failed",
		zap.String("event_id", uuid.NewString()),
		zap.String("subject", subject),
		zap.String("action", action),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization denied",
		zap.String("event_id", uuid.NewString()),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("service starting", zap.String("event_id", uuid.NewString()))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("service shutting down", zap.String("event_id", uuid.NewString()))
}
