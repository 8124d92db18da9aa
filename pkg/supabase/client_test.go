package supabase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuery_SendsFiltersAndServiceKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/checkins" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "eq.u1" {
			t.Errorf("user_id filter = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer service" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("apikey"); got != "service" {
			t.Errorf("apikey = %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service")
	body, err := c.Query(context.Background(), "checkins", map[string]string{"user_id": "eq.u1"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if string(body) != "[]" {
		t.Errorf("body = %s", body)
	}
}

func TestInsert_UsesUserTokenFromContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer user-jwt" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Prefer"); got != "return=representation" {
			t.Errorf("Prefer = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write([]byte("[" + string(body) + "]"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service")
	ctx := WithUserToken(context.Background(), "user-jwt")
	body, err := c.Insert(ctx, "checkins", map[string]any{"id": "c1"})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if string(body) != `[{"id":"c1"}]` {
		t.Errorf("body = %s", body)
	}
}

func TestDo_ReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"23505"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service")
	_, err := c.Insert(context.Background(), "checkins", map[string]any{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if !apiErr.IsConflict() {
		t.Errorf("IsConflict() = false for status %d", apiErr.StatusCode)
	}
}

func TestVerifyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@example.com","app_metadata":{"role":"admin"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service")

	user, err := c.VerifyToken(context.Background(), "good")
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if user.ID != "u1" || user.Role() != "admin" {
		t.Errorf("user = %+v", user)
	}

	if _, err := c.VerifyToken(context.Background(), "bad"); err == nil {
		t.Error("VerifyToken() with bad token succeeded")
	}

	if got := (&User{}).Role(); got != "user" {
		t.Errorf("default Role() = %q", got)
	}
}
