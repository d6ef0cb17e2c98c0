package main

import (
	"context"
	"fmt"
	"studiohub/internal/config"
	"studiohub/pkg/domain"
	"studiohub/pkg/logger"
	"studiohub/pkg/session"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that signs a session token with
// the configured private key. Without --tenant the token is a platform staff
// session.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a session token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			tenant, _ := cmd.Flags().GetString("tenant")
			role, _ := cmd.Flags().GetString("role")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a user uuid", zap.Error(err))
			}
			parsedRole, err := domain.ParseRole(role)
			if err != nil {
				logger.Fatal(ctx, "invalid role", zap.Error(err))
			}

			sess := session.Session{UserID: domain.UserID(userID), Role: parsedRole}
			if tenant != "" {
				tenantID, err := domain.ParseID[domain.TenantID]("tenant id", tenant)
				if err != nil {
					logger.Fatal(ctx, "tenant must be a studio uuid", zap.Error(err))
				}
				sess.TenantID = &tenantID
			}

			issuer, err := session.NewIssuer(cfg.Session.PrivateKey)
			if err != nil {
				logger.Fatal(ctx, "could not load session signing key", zap.Error(err))
			}
			signed, err := issuer.Issue(sess, TTL, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().String("tenant", "", "Studio ID the session is bound to; empty issues a staff session")
	cmd.Flags().String("role", string(domain.RoleOwner), "Role of the session (viewer, editor, admin, owner)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
