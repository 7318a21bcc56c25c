package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"folio/internal/view"
)

func loginValues(username, password string) url.Values {
	return url.Values{"username": {username}, "password": {password}}
}

func TestLoginPage(t *testing.T) {
	h := newHarness(t, seededStore(t))
	rr := h.client(t).get("/login")

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	assertContains(t, body, "Sign In", `name="csrf_token"`)
	assertNotContains(t, body, `id="login-error"`)
}

func TestLoginRejections(t *testing.T) {
	h := newHarness(t, seededStore(t))
	c := h.client(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "hunter2"},
		{"wrong username", "root", "password"},
		{"empty username", "", "password"},
		{"empty password", "admin", ""},
		{"oversized username", strings.Repeat("a", 101), "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := c.post("/login", loginValues(tt.username, tt.password))
			if rr.Code != http.StatusOK {
				t.Fatalf("status: got %d, want 200", rr.Code)
			}
			body := rr.Body.String()
			assertContains(t, body, `id="login-error"`, view.MsgInvalidCredentials)
		})
	}

	// Still anonymous.
	rr := c.get("/admin")
	if rr.Code != http.StatusSeeOther {
		t.Errorf("admin after failed logins: got %d, want 303", rr.Code)
	}
}

func TestLoginKeepsUsername(t *testing.T) {
	h := newHarness(t, seededStore(t))
	body := h.client(t).post("/login", loginValues("visitor", "nope")).Body.String()
	assertContains(t, body, `value="visitor"`)
}

func TestLoginAdminLogoutFlow(t *testing.T) {
	h := newHarness(t, seededStore(t))
	c := h.client(t)

	if rr := c.get("/admin"); rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/login" {
		t.Fatalf("anonymous admin: got %d to %q", rr.Code, rr.Header().Get("Location"))
	}

	rr := c.post("/login", loginValues(view.DemoUsername, view.DemoPassword))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("login status: got %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("login Location: got %q, want /admin", loc)
	}

	rr = c.get("/admin")
	if rr.Code != http.StatusOK {
		t.Fatalf("admin status: got %d, want 200", rr.Code)
	}
	assertContains(t, rr.Body.String(), "Sign Out")

	// The login page forwards a signed-in visitor.
	if rr := c.get("/login"); rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/admin" {
		t.Errorf("login while signed in: got %d to %q", rr.Code, rr.Header().Get("Location"))
	}

	rr = c.post("/logout", url.Values{})
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
		t.Fatalf("logout: got %d to %q", rr.Code, rr.Header().Get("Location"))
	}

	if rr := c.get("/admin"); rr.Code != http.StatusSeeOther {
		t.Errorf("admin after logout: got %d, want 303", rr.Code)
	}
}

func TestLoginPreservesContactState(t *testing.T) {
	h := newHarness(t, seededStore(t))
	c := h.client(t)

	c.htmx(http.MethodPost, "/contact/open")
	c.post("/login", loginValues(view.DemoUsername, view.DemoPassword))

	body := c.get("/admin").Body.String()
	assertContains(t, body, "Sign Out", "mailto:arpitgoyal.iitkgp@gmail.com")
}

func TestLogoutWithoutSession(t *testing.T) {
	h := newHarness(t, seededStore(t))
	rr := h.client(t).post("/logout", url.Values{})

	if rr.Code != http.StatusSeeOther {
		t.Errorf("status: got %d, want 303", rr.Code)
	}
}
