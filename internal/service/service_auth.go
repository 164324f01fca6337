package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/crypto"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It registers accounts and checks Basic credentials against the bcrypt
// hashes kept by the UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies presented ones.
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The email address is looked up first so a taken address is reported without
// touching the hasher. The unique index still guards against two concurrent
// registrations; that race surfaces as store.ErrEmailAlreadyExists and is
// reported the same way.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrEmailAlreadyInUse if the address belongs to another account.
//   - A wrapped hasher or storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, registration models.UserRegistration) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, registration.EmailAddress)
	switch {
	case err == nil:
		log.Warn().Str("func", "authService.RegisterUser").
			Str("email", registration.EmailAddress).
			Msg("email address is already in use")
		return models.User{}, ErrEmailAlreadyInUse
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "authService.RegisterUser").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(registration.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		FirstName:    registration.FirstName,
		LastName:     registration.LastName,
		EmailAddress: registration.EmailAddress,
		Password:     hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyInUse, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "authService.RegisterUser").
		Int64("id", registeredUser.ID).
		Msg("user registered")

	return registeredUser.Public(), nil
}

// Authenticate looks the account up by email and verifies password against
// the stored hash.
//
// Returns the user without its password hash, or:
//   - ErrAccessDenied wrapping store.ErrNoUserWasFound for an unknown email.
//   - ErrAccessDenied wrapping crypto.ErrPasswordMismatch for a wrong password.
//   - A wrapped storage error for any other lookup failure.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("func", "authService.Authenticate").
			Msgf("User not found for username: %s", email)
		return models.User{}, fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Authenticate").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Verify(foundUser.Password, password); err != nil {
		log.Warn().Str("func", "authService.Authenticate").
			Msgf("Authentication failure for username: %s", email)
		return models.User{}, fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}

	log.Info().Str("func", "authService.Authenticate").
		Msgf("Authentication successful for username: %s", email)

	return foundUser.Public(), nil
}
