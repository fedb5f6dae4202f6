package domain

import "context"

// Credential is the stored sign-in record of a user. Only the digest is kept.
type Credential struct {
	Username     string `json:"-"`
	PasswordHash string `json:"passwordHash"`
}

// CredentialRepository persists credentials. Get returns nil, nil when none is stored.
type CredentialRepository interface {
	Get(ctx context.Context, username string) (*Credential, error)
	Create(ctx context.Context, credential *Credential) error
}

// AuthRegistry implements create-or-verify sign in
type AuthRegistry interface {
	SignIn(ctx context.Context, username, password string) (string, error)
	Credential(ctx context.Context, username string) (*Credential, error)
}
