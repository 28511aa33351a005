package services

import (
	"log/slog"

	"groupchat/auth"
	"groupchat/repositories"
)

type IAuthService interface {
	Register(username, password string) error
	Login(username, password string) (bool, error)
}

// AuthService gates session start: it validates credential format before the
// store sees anything, and answers login attempts without revealing whether
// the username exists.
type AuthService struct {
	users repositories.IUserRepository
	log   *slog.Logger
}

func NewAuthService(users repositories.IUserRepository, log *slog.Logger) IAuthService {
	return &AuthService{users: users, log: log}
}

func (s *AuthService) Register(username, password string) error {
	// 1. Validate format rules before touching the store; the store only
	// enforces uniqueness.
	creds := auth.Credentials{Username: username, Password: password}
	if err := auth.ValidateCredentials(creds); err != nil {
		return err
	}

	// 2. Persist. ErrUserAlreadyExists propagates as-is.
	if err := s.users.Register(username, password); err != nil {
		return err
	}

	s.log.Info("registered new user", "username", username)
	return nil
}

// Login reports whether the credentials match a stored record. A wrong
// password and an unknown username are both plain false: callers surface one
// generic message for either case.
func (s *AuthService) Login(username, password string) (bool, error) {
	ok, err := s.users.Validate(username, password)
	if err != nil {
		return false, err
	}
	if !ok {
		s.log.Debug("rejected login attempt", "username", username)
	}
	return ok, nil
}
