package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHealthz(t *testing.T) {
	app, _ := newPortalTestApp(t)
	client := newTestClient(t, app)

	response := client.get("/healthz")
	assertStatus(t, response, http.StatusOK)
	var payload map[string]string
	readTestJSON(t, response, &payload)
	if payload["status"] != "ok" {
		t.Fatalf("unexpected health payload %v", payload)
	}
}

func TestNotFoundRendersPageOrJSON(t *testing.T) {
	app, _ := newPortalTestApp(t)
	client := newTestClient(t, app)

	response := client.get("/missing")
	assertStatus(t, response, http.StatusNotFound)
	if body := readTestBody(t, response); !strings.Contains(body, "Page not found") || !strings.Contains(body, `href="/"`) {
		t.Fatalf("unexpected not found page %s", body)
	}

	response = client.get("/api/missing")
	assertStatus(t, response, http.StatusNotFound)
	var payload map[string]string
	readTestJSON(t, response, &payload)
	if payload["error"] != "not found" {
		t.Fatalf("unexpected not found payload %v", payload)
	}
}

func TestRedirectToPathUsesHXRedirectForHTMX(t *testing.T) {
	app := fiber.New()
	app.Post("/go", func(c *fiber.Ctx) error {
		return redirectToPath(c, postAuthPath)
	})

	request := httptest.NewRequest(http.MethodPost, "/go", nil)
	request.Header.Set("HX-Request", "true")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if got := response.Header.Get("HX-Redirect"); got != postAuthPath {
		t.Fatalf("expected HX-Redirect %q, got %q", postAuthPath, got)
	}
}

func TestSessionCookiesFollowSecureFlag(t *testing.T) {
	for _, secure := range []bool{false, true} {
		app, _ := newPortalTestAppWithCookieSecure(t, secure)
		client := newTestClient(t, app)

		response := client.get("/signup")
		defer response.Body.Close()

		cookie := responseCookie(response, signupCookieName)
		if cookie == nil {
			t.Fatal("expected signup cookie")
		}
		if cookie.Secure != secure || !cookie.HttpOnly {
			t.Fatalf("expected secure=%v httpOnly=true, got secure=%v httpOnly=%v", secure, cookie.Secure, cookie.HttpOnly)
		}
	}
}
