package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"

	"backoffice-api/internal/core/cache"
	"backoffice-api/internal/core/config"
	"backoffice-api/internal/features/auth/adapters"
	"backoffice-api/internal/features/auth/domain"
	"backoffice-api/internal/features/auth/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memProfiles is an in-memory ProfileRepository.
type memProfiles struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
}

func (m *memProfiles) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memProfiles) Insert(_ context.Context, profile *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *profile
	m.profiles[profile.ID] = &clone
	return nil
}

func (m *memProfiles) MarkVerified(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[id].Verified = true
	return nil
}

func (m *memProfiles) SetPasswordHash(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[id].PasswordHash = hash
	return nil
}

// capturingMailer records outbound mail bodies.
type capturingMailer struct {
	mu    sync.Mutex
	mails []string
}

func (c *capturingMailer) Send(_, _, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mails = append(c.mails, body)
	return nil
}

func (c *capturingMailer) lastCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.mails) == 0 {
		return ""
	}
	return regexp.MustCompile(`\d{6}`).FindString(c.mails[len(c.mails)-1])
}

func setupApp(t *testing.T) (*fiber.App, *capturingMailer) {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	mailer := &capturingMailer{}
	cfg := &config.AppConfig{
		PublicBaseURL: "http://localhost:8080",
		Auth: config.AuthConfig{
			TokenSecret:              "test-secret",
			SessionTTLHours:          168,
			OTPTTLSeconds:            600,
			OTPResendCooldownSeconds: 60,
		},
	}

	profiles := &memProfiles{profiles: make(map[string]*domain.Profile)}
	svc := service.NewAuthService(profiles, adapters.NewRedisCodeStore(adapter), mailer, cfg)
	h := NewAuthHandler(svc)

	app := fiber.New()
	app.Post("/auth/signup", h.SignUp)
	app.Post("/auth/verify-otp", h.VerifyCode)
	app.Post("/auth/resend-otp", h.ResendCode)
	app.Post("/auth/signin", h.SignIn)
	app.Post("/auth/signout", h.SignOut)
	app.Get("/admin/ping", h.RequireSession, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})

	return app, mailer
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_SignUpVerifySignIn(t *testing.T) {
	app, mailer := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", SignUpRequest{
		Email:    "ana@example.com",
		Password: "secret1",
		FullName: "Ana",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	code := mailer.lastCode()
	require.Len(t, code, 6)

	// A pasted code with separators still verifies.
	spaced := code[:2] + " " + code[2:4] + " " + code[4:]
	resp = postJSON(t, app, "/auth/verify-otp", VerifyRequest{Email: "ana@example.com", Code: spaced}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var tr TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tr))
	assert.NotEmpty(t, tr.Token)

	resp = postJSON(t, app, "/auth/signin", CredentialsRequest{Email: "ana@example.com", Password: "secret1"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthHandler_WrongCode(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", SignUpRequest{
		Email:    "ana@example.com",
		Password: "secret1",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/verify-otp", VerifyRequest{Email: "ana@example.com", Code: "000000"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/auth/verify-otp", VerifyRequest{Email: "ana@example.com", Code: "12 34"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthHandler_ResendCooldown(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", SignUpRequest{
		Email:    "ana@example.com",
		Password: "secret1",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/resend-otp", EmailRequest{Email: "ana@example.com"}, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestAuthHandler_SessionMiddleware(t *testing.T) {
	app, mailer := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", SignUpRequest{
		Email:    "ana@example.com",
		Password: "secret1",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/verify-otp", VerifyRequest{Email: "ana@example.com", Code: mailer.lastCode()}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tr TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tr))

	// Without a token the guarded route is refused.
	noAuth, err := app.Test(httptest.NewRequest("GET", "/admin/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, noAuth.StatusCode)

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tr.Token)
	ok, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, ok.StatusCode)

	// Sign-out revokes the session, the same token stops working.
	resp = postJSON(t, app, "/auth/signout", fiber.Map{}, map[string]string{
		fiber.HeaderAuthorization: "Bearer " + tr.Token,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tr.Token)
	revoked, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, revoked.StatusCode)
}
