package entities

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Username  string
	FullName  string
	Password  string
	IsActive  bool
	IsAdmin   bool
}

func NewUser(email, username, fullName, password string) *User {
	now := time.Now()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Username:  strings.TrimSpace(username),
		FullName:  strings.TrimSpace(fullName),
		Password:  password,
		IsActive:  true,
		IsAdmin:   false,
	}
}

func (u *User) validate() error {
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if !strings.Contains(u.Email, "@") {
		return errors.New("email must be a valid address")
	}
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}

func (u *User) UpdateProfile(username, fullName string) error {
	u.Username = strings.TrimSpace(username)
	u.FullName = strings.TrimSpace(fullName)
	u.UpdatedAt = time.Now()
	return u.validate()
}
