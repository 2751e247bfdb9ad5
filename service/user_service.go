package service

import (
	"context"
	"errors"
	"fmt"

	"lottotrack/events"
	"lottotrack/models"
	"lottotrack/validation"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// userService implements the UserService interface
type userService struct {
	uowFactory UnitOfWorkFactory
	hashCost   int
}

// NewUserService creates a new user service
func NewUserService(uowFactory UnitOfWorkFactory) UserService {
	return &userService{
		uowFactory: uowFactory,
		hashCost:   bcrypt.DefaultCost,
	}
}

// Signup creates an active account with a bcrypt password hash
func (s *userService) Signup(ctx context.Context, username, password string) (*models.User, error) {
	req, err := validation.ValidateSignup(validation.SignupRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	existing, err := uow.UserRepository().GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrUserExists, req.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uow.UserRepository().Create(ctx, req.Username, string(hash))
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	uow.EventBus().Publish(events.UserCreatedEvent{UserID: user.ID, Username: user.Username})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit signup: %w", ErrStorageFailure, err)
	}

	log.WithFields(log.Fields{
		"userID":   user.ID,
		"username": user.Username,
	}).Info("Created account")

	return user, nil
}

// Login checks the password against the stored hash. Unknown usernames and
// wrong passwords both report ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, username, password string) (*models.User, error) {
	req, err := validation.ValidateLogin(validation.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.WithField("username", req.Username).Debug("Password mismatch")
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser returns the account or ErrUserNotFound
func (s *userService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}
	return user, nil
}
