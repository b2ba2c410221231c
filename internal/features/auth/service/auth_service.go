package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"backoffice-api/internal/core/config"
	"backoffice-api/internal/features/auth/domain"
	"backoffice-api/internal/features/auth/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned for unparseable, expired or revoked tokens.
var ErrInvalidToken = errors.New("invalid token")

const codeLength = 6

// AuthService handles sign-up, passcode verification, sessions and
// password recovery.
type AuthService struct {
	profiles ports.ProfileRepository
	codes    ports.CodeStore
	mailer   ports.Mailer

	secret        []byte
	publicBaseURL string
	sessionTTL    time.Duration
	codeTTL       time.Duration
	resendGap     time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(profiles ports.ProfileRepository, codes ports.CodeStore, mailer ports.Mailer, cfg *config.AppConfig) *AuthService {
	return &AuthService{
		profiles:      profiles,
		codes:         codes,
		mailer:        mailer,
		secret:        []byte(cfg.Auth.TokenSecret),
		publicBaseURL: cfg.PublicBaseURL,
		sessionTTL:    time.Duration(cfg.Auth.SessionTTLHours) * time.Hour,
		codeTTL:       time.Duration(cfg.Auth.OTPTTLSeconds) * time.Second,
		resendGap:     time.Duration(cfg.Auth.OTPResendCooldownSeconds) * time.Second,
	}
}

// NormalizeCode strips everything but digits from a submitted passcode,
// so pasted values with separators ("98 76 54") still verify. Anything
// that does not reduce to exactly 6 digits is rejected.
func NormalizeCode(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	code := digits.String()
	if len(code) != codeLength {
		return "", domain.ErrMalformedCode
	}
	return code, nil
}

// SignUp creates an unverified profile and mails a passcode to confirm
// the address.
func (s *AuthService) SignUp(ctx context.Context, email, password, fullName string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return domain.ErrInvalidEmail
	}
	if len(password) < 6 {
		return domain.ErrWeakPassword
	}

	existing, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		if !existing.Verified {
			// Unverified duplicate sign-up: resend the passcode instead
			// of failing, the address still belongs to nobody.
			return s.ResendCode(ctx, email)
		}
		return domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &domain.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		Verified:     false,
		PasswordHash: string(hash),
	}
	if err := s.profiles.Insert(ctx, profile); err != nil {
		return err
	}

	return s.issueCode(ctx, email)
}

// VerifyCode checks the submitted passcode against the stored one. On
// success the code is consumed, the profile marked verified and a session
// token returned. A repeat submission after a successful verification is
// answered with a fresh session rather than treated as a second attempt.
func (s *AuthService) VerifyCode(ctx context.Context, email, rawCode string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", domain.ErrInvalidCode
	}

	if profile.Verified {
		return s.issueSession(ctx, profile.ID)
	}

	code, err := NormalizeCode(rawCode)
	if err != nil {
		return "", err
	}

	stored, err := s.codes.PeekCode(ctx, email)
	if err != nil {
		return "", err
	}
	if stored == "" || stored != code {
		return "", domain.ErrInvalidCode
	}

	if err := s.codes.ConsumeCode(ctx, email); err != nil {
		return "", err
	}
	if err := s.profiles.MarkVerified(ctx, profile.ID); err != nil {
		return "", err
	}

	return s.issueSession(ctx, profile.ID)
}

// ResendCode mails a fresh passcode unless the cooldown is still running.
func (s *AuthService) ResendCode(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	armed, err := s.codes.ArmCooldown(ctx, email, s.resendGap)
	if err != nil {
		return err
	}
	if !armed {
		return domain.ErrResendCooldown
	}

	return s.issueCodeNoCooldown(ctx, email)
}

// SignIn checks the credentials and returns a session token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	if !profile.Verified {
		return "", domain.ErrNotVerified
	}

	return s.issueSession(ctx, profile.ID)
}

// SignOut revokes the session behind the token.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	_, sessionID, err := s.parseToken(token, "session")
	if err != nil {
		return err
	}
	return s.codes.RevokeSession(ctx, sessionID)
}

// ParseSession validates a session token and returns the profile id. The
// session must still be registered; revoked tokens fail even before expiry.
func (s *AuthService) ParseSession(ctx context.Context, token string) (string, error) {
	userID, sessionID, err := s.parseToken(token, "session")
	if err != nil {
		return "", err
	}

	active, err := s.codes.SessionActive(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !active {
		return "", ErrInvalidToken
	}

	return userID, nil
}

// RequestPasswordReset mails a signed reset link. Unknown addresses are
// ignored silently so the endpoint cannot be used to probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}

	token, err := s.signToken(profile.ID, "reset", uuid.NewString(), time.Hour)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/auth/reset?token=%s", s.publicBaseURL, url.QueryEscape(token))
	body := "A password reset was requested for your account.\n\n" +
		"Open the link below to choose a new password:\n" + link + "\n\n" +
		"If you did not request this, you can ignore this mail."

	return s.mailer.Send(email, "Reset your password", body)
}

// ResetPassword sets a new password from a valid reset token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 6 {
		return domain.ErrWeakPassword
	}

	userID, _, err := s.parseToken(token, "reset")
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.profiles.SetPasswordHash(ctx, userID, string(hash))
}

// issueCode arms the cooldown and sends a fresh passcode.
func (s *AuthService) issueCode(ctx context.Context, email string) error {
	if _, err := s.codes.ArmCooldown(ctx, email, s.resendGap); err != nil {
		return err
	}
	return s.issueCodeNoCooldown(ctx, email)
}

// issueCodeNoCooldown generates, stores and mails a passcode.
func (s *AuthService) issueCodeNoCooldown(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	if err := s.codes.SaveCode(ctx, email, code, s.codeTTL); err != nil {
		return err
	}

	body := "Your verification code is: " + code + "\n\n" +
		"It expires in " + fmt.Sprintf("%d", int(s.codeTTL.Minutes())) + " minutes."

	return s.mailer.Send(email, "Verify your email", body)
}

// issueSession creates a signed session token and registers it for
// revocation.
func (s *AuthService) issueSession(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.NewString()

	token, err := s.signToken(userID, "session", sessionID, s.sessionTTL)
	if err != nil {
		return "", err
	}

	if err := s.codes.SaveSession(ctx, sessionID, s.sessionTTL); err != nil {
		return "", err
	}

	return token, nil
}

// signToken builds an HS256 token with subject, type and token id claims.
func (s *AuthService) signToken(userID, typ, tokenID string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"typ": typ,
		"jti": tokenID,
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// parseToken validates a token of the given type and returns (subject, jti).
func (s *AuthService) parseToken(token, wantType string) (string, string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	if claims["typ"] != wantType {
		return "", "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", ErrInvalidToken
	}
	jti, _ := claims["jti"].(string)

	return sub, jti, nil
}

// generateCode draws 6 random digits.
func generateCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
