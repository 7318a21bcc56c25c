package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"folio/internal/session"
)

// captureSession records the session each request reached the handler with.
func captureSession(got **session.Data, reached *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		*got = SessionFromCtx(r.Context())
	})
}

func TestSessionContextRoundTrip(t *testing.T) {
	if SessionFromCtx(context.Background()) != nil {
		t.Error("empty context should yield nil")
	}

	want := &session.Data{Token: session.MockToken, ContactOpen: true}
	if got := SessionFromCtx(WithSession(context.Background(), want)); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRequireToken(t *testing.T) {
	cases := map[string]struct {
		sess     *session.Data
		htmx     bool
		reached  bool
		status   int
		location string
		hxTarget string
	}{
		"anonymous":      {status: http.StatusSeeOther, location: LoginPath},
		"contact only":   {sess: &session.Data{ContactOpen: true}, status: http.StatusSeeOther, location: LoginPath},
		"anonymous htmx": {htmx: true, status: http.StatusUnauthorized, hxTarget: LoginPath},
		"logged in":      {sess: &session.Data{Token: session.MockToken}, reached: true, status: http.StatusOK},
		"logged in htmx": {sess: &session.Data{Token: "t"}, htmx: true, reached: true, status: http.StatusOK},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			reached := false
			h := RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.sess != nil {
				req = req.WithContext(WithSession(req.Context(), tc.sess))
			}
			if tc.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if reached != tc.reached {
				t.Errorf("reached = %v, want %v", reached, tc.reached)
			}
			if rr.Code != tc.status {
				t.Errorf("status = %d, want %d", rr.Code, tc.status)
			}
			if got := rr.Header().Get("Location"); got != tc.location {
				t.Errorf("Location = %q, want %q", got, tc.location)
			}
			if got := rr.Header().Get("HX-Redirect"); got != tc.hxTarget {
				t.Errorf("HX-Redirect = %q, want %q", got, tc.hxTarget)
			}
		})
	}
}

type brokenBackend struct{}

func (brokenBackend) Get(context.Context, string) ([]byte, error) {
	return nil, context.DeadlineExceeded
}
func (brokenBackend) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (brokenBackend) Del(context.Context, string) error                        { return nil }

func TestLoadSession(t *testing.T) {
	store := session.NewStore(session.NewMemoryBackend(), false)
	created := httptest.NewRecorder()
	if _, err := store.Create(context.Background(), created, &session.Data{Token: session.MockToken}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	live := created.Result().Cookies()[0]

	cases := map[string]struct {
		store  *session.Store
		cookie *http.Cookie
		token  string
	}{
		"live cookie":    {store: store, cookie: live, token: session.MockToken},
		"no cookie":      {store: store},
		"unknown cookie": {store: store, cookie: &http.Cookie{Name: session.CookieName, Value: "nope"}},
		"backend down":   {store: session.NewStore(brokenBackend{}, false), cookie: live},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got *session.Data
			reached := false
			h := LoadSession(tc.store)(captureSession(&got, &reached))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if !reached {
				t.Fatal("LoadSession must always call the next handler")
			}
			if tc.token == "" {
				if got != nil {
					t.Errorf("expected anonymous, got %+v", got)
				}
				return
			}
			if got == nil || got.Token != tc.token {
				t.Errorf("session = %+v, want token %q", got, tc.token)
			}
		})
	}
}
