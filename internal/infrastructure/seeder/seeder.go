package seeder

import (
	"context"

	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DemoUser is an account created by the seeder
type DemoUser struct {
	Username string
	Password string
	Balance  int64
}

// DemoUsers are the accounts seeded by default
var DemoUsers = []DemoUser{
	{Username: "user1", Password: "password123", Balance: 100},
	{Username: "user2", Password: "password123", Balance: 25},
	{Username: "user3", Password: "password123", Balance: 5},
	{Username: "user4", Password: "password123", Balance: 0},
}

// Seeder creates demo accounts through the same registries the service uses
type Seeder struct {
	auth     domain.AuthRegistry
	balances domain.BalanceLedger
	logger   *logger.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(auth domain.AuthRegistry, balances domain.BalanceLedger, logger *logger.Logger) *Seeder {
	return &Seeder{
		auth:     auth,
		balances: balances,
		logger:   logger,
	}
}

// SeedUsers registers users that do not exist yet and tops their balance
// up to the seeded amount. Existing accounts are left untouched.
func (s *Seeder) SeedUsers(ctx context.Context, users []DemoUser) (int, error) {
	s.logger.Info("Seeding users...", zap.Int("count", len(users)))

	created := 0
	for _, u := range users {
		existing, err := s.auth.Credential(ctx, u.Username)
		if err != nil {
			s.logger.Error("Error checking existing user",
				zap.String("username", u.Username),
				zap.Error(err))
			return created, err
		}
		if existing != nil {
			s.logger.Info("User already exists, skipping", zap.String("username", u.Username))
			continue
		}

		if _, err := s.auth.SignIn(ctx, u.Username, u.Password); err != nil {
			s.logger.Error("Error creating user",
				zap.String("username", u.Username),
				zap.Error(err))
			return created, err
		}

		if topUp := u.Balance - s.balances.Load(ctx, u.Username); topUp > 0 {
			s.balances.Adjust(ctx, u.Username, topUp)
		}
		created++

		s.logger.Info("Successfully created user",
			zap.String("username", u.Username),
			zap.Int64("balance", u.Balance))
	}

	s.logger.Info("User seeding completed successfully", zap.Int("created", created))
	return created, nil
}
