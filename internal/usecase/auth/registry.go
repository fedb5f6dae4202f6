package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// User-facing sign-in messages
const (
	MsgEnterUsername = "Enter a username."
	MsgEnterPassword = "Enter a password."
	MsgWrongPassword = "Wrong password."
)

// HashPassword returns the lowercase hex SHA-256 digest of the UTF-8 password
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Registry implements domain.AuthRegistry with create-or-verify semantics:
// the first sign in for a username registers it.
type Registry struct {
	repo   domain.CredentialRepository
	logger *logger.Logger
}

// NewRegistry creates a new auth registry
func NewRegistry(repo domain.CredentialRepository, logger *logger.Logger) *Registry {
	return &Registry{
		repo:   repo,
		logger: logger,
	}
}

// SignIn returns the trimmed username when the password matches the stored
// digest or when no credential existed and one was just created.
func (r *Registry) SignIn(ctx context.Context, username, password string) (string, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return "", domain.NewAppError(domain.ErrCodeRequiredField, MsgEnterUsername, 400, nil)
	}
	if password == "" {
		return "", domain.NewAppError(domain.ErrCodeRequiredField, MsgEnterPassword, 400, nil)
	}

	r.logger.Info("Starting sign in", zap.String("username", name))

	credential, err := r.Credential(ctx, name)
	if err != nil {
		return "", err
	}

	digest := HashPassword(password)

	if credential == nil {
		err := r.repo.Create(ctx, &domain.Credential{Username: name, PasswordHash: digest})
		if err != nil {
			r.logger.Error("Failed to store new credential",
				zap.String("username", name),
				zap.Error(err))
			return "", domain.NewStorageError("create credential", err)
		}

		r.logger.Info("Registered new user", zap.String("username", name))
		return name, nil
	}

	if credential.PasswordHash != digest {
		r.logger.Warn("Sign in failed - wrong password", zap.String("username", name))
		return "", domain.NewAuthError(MsgWrongPassword)
	}

	r.logger.Info("User signed in", zap.String("username", name))
	return name, nil
}

// Credential returns the stored credential of username, nil when there is
// none. A corrupt record counts as none so the next sign in replaces it.
func (r *Registry) Credential(ctx context.Context, username string) (*domain.Credential, error) {
	credential, err := r.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptValue) {
			r.logger.Warn("Corrupt credential record treated as absent",
				zap.String("username", username),
				zap.Error(err))
			return nil, nil
		}

		r.logger.Error("Failed to read credential",
			zap.String("username", username),
			zap.Error(err))
		return nil, domain.NewStorageError("read credential", err)
	}
	return credential, nil
}
