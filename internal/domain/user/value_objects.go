package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrEmptyPushToken  = errors.New("push token cannot be empty")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// PushToken is an opaque Expo device token. Tokens come and go as the app
// is reinstalled, so they are stored per device and pruned on delivery
// failure rather than validated here.
type PushToken struct {
	value string
}

func NewPushToken(s string) (PushToken, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PushToken{}, ErrEmptyPushToken
	}
	return PushToken{value: s}, nil
}

func (t PushToken) Value() string {
	return t.value
}
