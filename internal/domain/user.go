package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Errors
var (
	ErrEmptyUserID       = errors.New("user id cannot be empty")
	ErrEmptyUserName     = errors.New("user name cannot be empty")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User is a registered online customer. Registration and authentication
// live behind the UserRepository collaborator; this core only validates
// identity data.
type User struct {
	UserID           string    `bson:"userId"`
	Name             string    `bson:"name"`
	Email            string    `bson:"email"`
	PasswordHash     string    `bson:"passwordHash"`
	Address          string    `bson:"address"`
	RegistrationDate time.Time `bson:"registrationDate"`
}

// NewUser validates and constructs a user record.
func NewUser(userID, name, email, passwordHash, address string, registrationDate time.Time) (*User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrEmptyUserID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyUserName
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, ErrEmptyPasswordHash
	}
	return &User{
		UserID:           userID,
		Name:             name,
		Email:            email,
		PasswordHash:     passwordHash,
		Address:          address,
		RegistrationDate: registrationDate,
	}, nil
}

// Equals compares users by ID.
func (u *User) Equals(other *User) bool {
	return other != nil && u.UserID == other.UserID
}
