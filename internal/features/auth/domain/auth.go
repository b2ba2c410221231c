package domain

import (
	"errors"
	"time"
)

var (
	// ErrEmailTaken is returned when signing up with an address already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrWeakPassword is returned when the password is shorter than 6 characters.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	// ErrInvalidEmail is returned for malformed email addresses.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidCredentials is returned for wrong email/password pairs.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotVerified is returned when signing in before the email is confirmed.
	ErrNotVerified = errors.New("email not verified")
	// ErrInvalidCode is returned when a passcode does not match or has expired.
	ErrInvalidCode = errors.New("invalid or expired passcode")
	// ErrMalformedCode is returned when a submitted passcode is not 6 digits.
	ErrMalformedCode = errors.New("passcode must be 6 digits")
	// ErrResendCooldown is returned when a resend arrives inside the cooldown window.
	ErrResendCooldown = errors.New("passcode was just sent, wait before resending")
)

// Profile is an account row in the store. The password hash never leaves
// the service layer.
type Profile struct {
	// ID is the opaque row identifier.
	ID string `json:"id"`
	// Email is the sign-in identity.
	Email string `json:"email"`
	// FullName is the display name.
	FullName string `json:"full_name,omitempty"`
	// Phone may be empty.
	Phone string `json:"phone,omitempty"`
	// Verified is set once the emailed passcode is confirmed.
	Verified bool `json:"verified"`
	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"password_hash,omitempty"`
	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}
