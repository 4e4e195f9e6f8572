package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jf-travels-be/internal/bootstrap"
	"jf-travels-be/internal/config"
	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestApp wires a full application against an in-test role-lookup
// endpoint, so the async admin check has something real to call.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	roleBackend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dto.CheckAdminRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(dto.CheckAdminResponse{
			IsAdmin: strings.EqualFold(req.Email, "admin@jftravels.com"),
		})
	}))
	t.Cleanup(roleBackend.Close)

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "development",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Auth: config.AuthConfig{
			JwtSecret:       "integration-secret",
			AdminCheckURL:   roleBackend.URL,
			SessionTTLHours: 1,
		},
		Exchange: config.ExchangeConfig{DefaultCurrency: "USD"},
	}

	container := bootstrap.NewContainer(cfg)
	require.NoError(t, container.SessionService.Start())
	t.Cleanup(container.SessionService.Stop)

	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var env envelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp, env
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, env := doJSON(t, app, "POST", "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

// render polls the current decision. It never fails the test itself so it
// is safe inside assert.Eventually conditions.
func render(t *testing.T, app *fiber.App) dto.RenderInstruction {
	t.Helper()

	var instr dto.RenderInstruction
	resp, err := app.Test(httptest.NewRequest("GET", "/api/navigation/render", nil), -1)
	if err != nil {
		return instr
	}
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return instr
	}
	var env envelope
	if json.Unmarshal(raw, &env) == nil {
		_ = json.Unmarshal(env.Data, &instr)
	}
	return instr
}

func TestGatedDashboardResolvesAfterLogin(t *testing.T) {
	app := newTestApp(t)

	// Signed out: dashboard renders the login prompt.
	resp, env := doJSON(t, app, "POST", "/api/navigation/navigate", dto.NavigateRequest{View: "dashboard"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var instr dto.RenderInstruction
	require.NoError(t, json.Unmarshal(env.Data, &instr))
	assert.Equal(t, "login", instr.View)
	assert.Equal(t, "dashboard", instr.RequestedView)
	assert.False(t, instr.IsAuthenticated)

	// Login flips the same navigation state without another transition,
	// and the role lookup eventually lands.
	login(t, app, "admin@jftravels.com", "admin123")
	assert.Eventually(t, func() bool {
		current := render(t, app)
		return current.View == "dashboard" && current.IsAdmin
	}, 2*time.Second, 20*time.Millisecond)
}

func TestRegularUserNeverBecomesAdmin(t *testing.T) {
	app := newTestApp(t)

	login(t, app, "amaka@example.com", "password1")

	assert.Eventually(t, func() bool {
		return render(t, app).IsAuthenticated
	}, 2*time.Second, 20*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	instr := render(t, app)
	assert.False(t, instr.IsAdmin)
	assert.Equal(t, "amaka@example.com", instr.UserEmail)
}

func TestLogoutLandsOnHome(t *testing.T) {
	app := newTestApp(t)

	token := login(t, app, "amaka@example.com", "password1")
	doJSON(t, app, "POST", "/api/navigation/navigate", dto.NavigateRequest{View: "dashboard"}, "")

	resp, env := doJSON(t, app, "POST", "/api/session/logout", dto.LogoutRequest{Token: token}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var instr dto.RenderInstruction
	require.NoError(t, json.Unmarshal(env.Data, &instr))
	assert.Equal(t, "home", instr.View)
	assert.False(t, instr.IsAuthenticated)
	assert.False(t, instr.IsAdmin)
	assert.Empty(t, instr.UserEmail)
}

func TestRevokedTokenIsRejected(t *testing.T) {
	app := newTestApp(t)

	token := login(t, app, "amaka@example.com", "password1")

	// The fresh token passes the guard.
	resp, _ := doJSON(t, app, "GET", "/api/dashboard", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Logout revokes the server-side session; the token still verifies
	// cryptographically but must no longer pass the guard.
	resp, _ = doJSON(t, app, "POST", "/api/session/logout", dto.LogoutRequest{Token: token}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/dashboard", nil, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCurrencyConversionEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/currency/convert", dto.ConvertRequest{
		Amount: "100", From: "USD", To: "NGN",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var conv dto.ConvertResponse
	require.NoError(t, json.Unmarshal(env.Data, &conv))
	assert.Equal(t, "154200.00 NGN", conv.Converted)
	assert.Equal(t, "1542.0000", conv.Rate)

	resp, _ = doJSON(t, app, "POST", "/api/currency/convert", dto.ConvertRequest{
		Amount: "not-a-number", From: "USD", To: "NGN",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = doJSON(t, app, "POST", "/api/currency/swap", dto.SwapRequest{
		Amount: "100", From: "USD", To: "NGN",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &conv))
	assert.Equal(t, "NGN", conv.From)
	assert.Equal(t, "USD", conv.To)
}

func TestSelectedCurrencyDrivesCatalogPrices(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/session/currency", dto.SelectCurrencyRequest{Code: "NGN"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, app, "GET", "/api/tours/t-001", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tour dto.TourResponse
	require.NoError(t, json.Unmarshal(env.Data, &tour))
	assert.Equal(t, "2928258.00 NGN", tour.Price)

	resp, _ = doJSON(t, app, "POST", "/api/session/currency", dto.SelectCurrencyRequest{Code: "XYZ"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminEndpointsEnforceRole(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/admin/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	userToken := login(t, app, "amaka@example.com", "password1")
	resp, _ = doJSON(t, app, "GET", "/api/admin/stats", nil, userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken := login(t, app, "admin@jftravels.com", "admin123")
	resp, env := doJSON(t, app, "GET", "/api/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats dto.AdminDashboardStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 8, stats.ActiveTours)
}

func TestUserDashboardRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := login(t, app, "amaka@example.com", "password1")
	resp, env := doJSON(t, app, "GET", "/api/dashboard", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dash dto.UserDashboardResponse
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, "amaka@example.com", dash.Email)
	assert.Len(t, dash.Bookings, 2)
}

func TestCheckAdminWireShape(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/auth/check-admin",
		strings.NewReader(fmt.Sprintf(`{"email":%q}`, "admin@jftravels.com")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	// Raw shape, no envelope: the role-lookup client reads exactly {isAdmin}.
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, true, body["isAdmin"])
	assert.NotContains(t, body, "success")
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/register", dto.RegisterRequest{
		Email:    "chidi@example.com",
		Password: "secret123",
		FullName: "Chidi Okafor",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token := login(t, app, "chidi@example.com", "secret123")
	assert.NotEmpty(t, token)

	resp, _ = doJSON(t, app, "POST", "/api/auth/login", dto.LoginRequest{
		Email: "chidi@example.com", Password: "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnknownViewFallsBackToHome(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/navigation/navigate", dto.NavigateRequest{View: "warp-zone"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var instr dto.RenderInstruction
	require.NoError(t, json.Unmarshal(env.Data, &instr))
	assert.Equal(t, "home", instr.View)
	assert.Equal(t, "warp-zone", instr.RequestedView)
}
