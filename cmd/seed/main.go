// Command seed creates an admin account. The public registration flow only
// issues the default user role, so the first admin has to be provisioned
// out-of-band.
//
// Usage: SESSION_SECRET=... seed <username> <password>
package main

import (
	"context"
	"os"

	"github.com/gatehouse/gatehouse/internal/core/domain"
	"github.com/gatehouse/gatehouse/internal/core/service"
	mongodb "github.com/gatehouse/gatehouse/internal/infrastructure/db/mongo"
	"github.com/gatehouse/gatehouse/internal/pkg/config"
	"github.com/gatehouse/gatehouse/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if len(os.Args) != 3 {
		log.Fatal().Msg("usage: seed <username> <password>")
	}
	username, password := os.Args[1], os.Args[2]

	ctx := context.Background()

	db, disconnect, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("credential store unavailable")
	}
	defer func() {
		if err := disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	users := mongodb.NewUserRepository(db)
	svc := service.NewAuthService(users, noSessions{}, cfg.SessionTTL)

	user, err := svc.RegisterWithRole(ctx, username, password, domain.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("create admin")
	}

	log.Info().Str("id", user.ID).Str("username", user.Username).Msg("admin account created")
}

// noSessions satisfies the session store port; seeding never logs in.
type noSessions struct{}

func (noSessions) Save(context.Context, *domain.Session) error { return nil }
func (noSessions) Find(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}
func (noSessions) Delete(context.Context, string) error { return nil }
