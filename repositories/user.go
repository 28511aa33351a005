//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"strings"

	"groupchat/errors"
)

type IUserRepository interface {
	Register(username, password string) error
	Validate(username, password string) (bool, error)
	Exists(username string) (bool, error)
	Usernames() ([]string, error)
}

// UserRepository keeps credential records as "username|password" lines.
// Every call re-reads the backing file; nothing is cached between calls.
type UserRepository struct {
	path string
	log  *slog.Logger
}

func NewUserRepository(path string, log *slog.Logger) IUserRepository {
	return &UserRepository{path: path, log: log}
}

// Register appends the credential record. The username is the unique key:
// a record with the same username already present fails the registration.
// Content validation happened earlier, in the auth package.
func (r *UserRepository) Register(username, password string) error {
	exists, err := r.Exists(username)
	if err != nil {
		return err
	}
	if exists {
		return errors.ErrUserAlreadyExists
	}
	return appendLine(r.path, username+delimiter+password)
}

// Validate reports whether an exact credential record exists. An unknown
// username or a wrong password is false, not an error.
func (r *UserRepository) Validate(username, password string) (bool, error) {
	lines, err := readLines(r.path)
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		name, pass, ok := strings.Cut(line, delimiter)
		if ok && name == username && pass == password {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Exists(username string) (bool, error) {
	lines, err := readLines(r.path)
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if firstField(line) == username {
			return true, nil
		}
	}
	return false, nil
}

// Usernames lists every registered username in insertion order.
func (r *UserRepository) Usernames() ([]string, error) {
	lines, err := readLines(r.path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, firstField(line))
	}
	return names, nil
}
