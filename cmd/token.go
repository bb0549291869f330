// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/tracing"
	"github.com/vantagehq/interview-service/pkg/publicauth"
)

var (
	signingKey      string
	tokenTTL        time.Duration
	interviewID     int64
	contactID       int64
	contactEmail    string
	companyID       string
	questionnaireID int64
)

// tokenCmd mints a public interview token locally, useful for testing against
// a running instance without going through the credential exchange.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a public interview access token",
	Run: func(cmd *cobra.Command, args []string) {
		issuer := publicauth.NewTokenIssuer(
			signingKey,
			tokenTTL,
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor(),
			logging.NewNoopLogger(),
		)

		token, expiresAt, err := issuer.Issue(context.Background(), &publicauth.Identity{
			Mode:            publicauth.AuthModeToken,
			InterviewID:     interviewID,
			ContactID:       contactID,
			ContactEmail:    contactEmail,
			CompanyID:       companyID,
			QuestionnaireID: questionnaireID,
		})
		if err != nil {
			log.Fatalf("Failed to mint token: %v", err)
		}

		fmt.Println(token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&signingKey, "signing-key", "", "HMAC signing key")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	tokenCmd.Flags().Int64Var(&interviewID, "interview-id", 0, "Interview ID")
	tokenCmd.Flags().Int64Var(&contactID, "contact-id", 0, "Contact ID")
	tokenCmd.Flags().StringVar(&contactEmail, "email", "", "Contact email")
	tokenCmd.Flags().StringVar(&companyID, "company-id", "", "Company ID")
	tokenCmd.Flags().Int64Var(&questionnaireID, "questionnaire-id", 0, "Questionnaire ID")

	_ = tokenCmd.MarkFlagRequired("signing-key")
	_ = tokenCmd.MarkFlagRequired("interview-id")
	_ = tokenCmd.MarkFlagRequired("contact-id")
	_ = tokenCmd.MarkFlagRequired("email")
	_ = tokenCmd.MarkFlagRequired("company-id")
	_ = tokenCmd.MarkFlagRequired("questionnaire-id")
}
