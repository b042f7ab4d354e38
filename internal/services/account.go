package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jobboard/apiserver/internal/auth"
	"github.com/jobboard/apiserver/internal/store"
	"github.com/jobboard/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed hashing work factor. Tunable only by
// redeploying.
const bcryptCost = 10

var (
	// ErrDuplicateAccount signals that the email is already registered.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials is returned for both unknown emails and
	// wrong passwords so callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (types.Account, error)
	Create(ctx context.Context, account types.Account) (types.Account, error)
}

// CredentialService owns registration, login, and session-token
// issuance.
type CredentialService struct {
	repo   AccountRepository
	tokens *auth.TokenIssuer
}

func NewCredentialService(repo AccountRepository, tokens *auth.TokenIssuer) *CredentialService {
	return &CredentialService{repo: repo, tokens: tokens}
}

// Register creates a new account with the given role, defaulting to
// Candidate. The existence pre-check is a fast path only; the store's
// uniqueness constraint is the authoritative guard, and its violation
// maps to the same ErrDuplicateAccount outcome.
func (s *CredentialService) Register(ctx context.Context, email, password string, role types.Role) error {
	if role == "" {
		role = types.RoleCandidate
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return ErrDuplicateAccount
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("look up account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.repo.Create(ctx, types.Account{
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// Login verifies the credentials and mints a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *CredentialService) Login(ctx context.Context, email, password string) (string, types.PublicAccount, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", types.PublicAccount{}, ErrInvalidCredentials
		}
		return "", types.PublicAccount{}, fmt.Errorf("look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", types.PublicAccount{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return "", types.PublicAccount{}, fmt.Errorf("issue token: %w", err)
	}

	return token, account.Public(), nil
}

// CreateAdmin provisions an Admin account directly, applying the same
// uniqueness check and hashing as Register. It backs the out-of-band
// operator path only and is never reachable from public registration.
func (s *CredentialService) CreateAdmin(ctx context.Context, name, email, password string) error {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return ErrDuplicateAccount
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("look up account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.repo.Create(ctx, types.Account{
		Name:         name,
		Email:        email,
		Role:         types.RoleAdmin,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}
