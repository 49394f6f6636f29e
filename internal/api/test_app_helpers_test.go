package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/customizeworkflow/portal/internal/db"
	"github.com/customizeworkflow/portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const testSecretKey = "test-secret-key-0123456789abcdef"

func newPortalTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()
	return newPortalTestAppWithCookieSecure(t, false)
}

func newPortalTestAppWithCookieSecure(t *testing.T, cookieSecure bool) (*fiber.App, *Handler) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	templatesDir := filepath.Join(filepath.Dir(apiDir), "templates")
	databasePath := filepath.Join(t.TempDir(), "portal-api-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, testSecretKey, templatesDir, cookieSecure)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func registerTestAccount(t *testing.T, handler *Handler, email string, password string) {
	t.Helper()

	wizard := services.NewSignupWizard()
	fillTestWizard(t, wizard, email, password)
	payload, err := wizard.Submit()
	if err != nil {
		t.Fatalf("submit test wizard: %v", err)
	}
	if _, err := handler.accounts.Register(payload); err != nil {
		t.Fatalf("register test account: %v", err)
	}
}

func fillTestWizard(t *testing.T, wizard *services.SignupWizard, email string, password string) {
	t.Helper()

	values := signupStepValues(email, password)
	for !wizard.IsFinalStep() {
		applySignupValues(wizard, flattenValues(values[wizard.Step()-1]))
		if !wizard.Advance() {
			t.Fatalf("advance test wizard from step %d: %v", wizard.Step(), wizard.Errors())
		}
	}
	applySignupValues(wizard, flattenValues(values[wizard.Step()-1]))
}

// signupStepValues returns the form posted on each of the four pages.
func signupStepValues(email string, password string) []url.Values {
	return []url.Values{
		{"firstName": {"Jane"}, "lastName": {"Doe"}, "email": {email}, "phone": {"+1 555 0100"}},
		{"otp": {"123456"}},
		{"password": {password}, "confirmPassword": {password}},
		{"dob": {"1990-05-17"}, "gender": {"female"}},
	}
}

func flattenValues(values url.Values) map[string]string {
	flat := make(map[string]string, len(values))
	for key := range values {
		flat[key] = values.Get(key)
	}
	return flat
}

// testClient drives the app like a browser, carrying cookies between calls.
type testClient struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newTestClient(t *testing.T, app *fiber.App) *testClient {
	return &testClient{t: t, app: app, cookies: map[string]string{}}
}

func (client *testClient) do(request *http.Request) *http.Response {
	client.t.Helper()

	if header := client.cookieHeader(); header != "" {
		request.Header.Set("Cookie", header)
	}
	response, err := client.app.Test(request, -1)
	if err != nil {
		client.t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Value == "" {
			delete(client.cookies, cookie.Name)
			continue
		}
		client.cookies[cookie.Name] = cookie.Value
	}
	return response
}

func (client *testClient) get(path string) *http.Response {
	client.t.Helper()
	return client.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (client *testClient) postForm(path string, values url.Values) *http.Response {
	client.t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return client.do(request)
}

func (client *testClient) postJSON(path string, payload any) *http.Response {
	client.t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		client.t.Fatalf("marshal payload: %v", err)
	}
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	request.Header.Set("Accept", fiber.MIMEApplicationJSON)
	return client.do(request)
}

func (client *testClient) cookieHeader() string {
	parts := make([]string, 0, len(client.cookies))
	for name, value := range client.cookies {
		parts = append(parts, name+"="+value)
	}
	return strings.Join(parts, "; ")
}

func readTestBody(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func readTestJSON(t *testing.T, response *http.Response, out any) {
	t.Helper()

	body := readTestBody(t, response)
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("decode json body %q: %v", body, err)
	}
}

func assertStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		t.Fatalf("expected status %d, got %d", want, response.StatusCode)
	}
}

func assertRedirect(t *testing.T, response *http.Response, location string) {
	t.Helper()
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if got := response.Header.Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func responseCookie(response *http.Response, name string) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie != nil && cookie.Name == name {
			return cookie
		}
	}
	return nil
}
