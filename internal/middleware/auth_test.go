package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/auth"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/model"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store"
)

type fakeSessions struct {
	byToken map[string]*model.Session
}

func (f *fakeSessions) Create(ctx context.Context, userID int64) (*model.Session, error) {
	sess := &model.Session{ID: 1, Token: "tok", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	f.byToken[sess.Token] = sess
	return sess, nil
}

func (f *fakeSessions) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	sess, ok := f.byToken[token]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, store.ErrNotFound
	}
	return sess, nil
}

func (f *fakeSessions) Delete(ctx context.Context, token string) error {
	delete(f.byToken, token)
	return nil
}

func (f *fakeSessions) DeleteExpired(ctx context.Context) (int64, error) { return 0, nil }

type fakeUsers struct {
	byID map[int64]*model.User
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) Create(ctx context.Context, email, hash, role string) (*model.User, error) {
	u := &model.User{ID: int64(len(f.byID) + 1), Email: email, PasswordHash: hash, Role: role, Active: true}
	f.byID[u.ID] = u
	return u, nil
}

func setupAuthFakes() (*fakeSessions, *fakeUsers) {
	sessions := &fakeSessions{byToken: map[string]*model.Session{
		"valid": {ID: 1, Token: "valid", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)},
	}}
	users := &fakeUsers{byID: map[int64]*model.User{
		1: {ID: 1, Email: "ana@example.com", Role: "admin", Active: true},
	}}
	return sessions, users
}

func TestRequireAuthNoCookie(t *testing.T) {
	sessions, users := setupAuthFakes()

	handler := RequireAuth(sessions, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/events", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	sessions, users := setupAuthFakes()

	handler := RequireAuth(sessions, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthExpiredSession(t *testing.T) {
	sessions, users := setupAuthFakes()
	sessions.byToken["expired"] = &model.Session{Token: "expired", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}

	handler := RequireAuth(sessions, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthInactiveUser(t *testing.T) {
	sessions, users := setupAuthFakes()
	users.byID[1].Active = false

	handler := RequireAuth(sessions, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthValidSession(t *testing.T) {
	sessions, users := setupAuthFakes()

	var gotAC auth.AuthContext
	handler := RequireAuth(sessions, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, ok := auth.FromContext(r.Context())
		if !ok {
			t.Fatal("expected AuthContext in request context")
		}
		gotAC = ac
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotAC.UserID != 1 {
		t.Errorf("UserID = %d, want 1", gotAC.UserID)
	}
	if gotAC.Email != "ana@example.com" {
		t.Errorf("Email = %q, want ana@example.com", gotAC.Email)
	}
	if gotAC.Role != "admin" {
		t.Errorf("Role = %q, want admin", gotAC.Role)
	}
}

func TestRequireAdminAllowed(t *testing.T) {
	ctx := auth.WithAuth(context.Background(), auth.AuthContext{Role: "admin"})
	req := httptest.NewRequest("DELETE", "/api/events/1", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireAdminForbidden(t *testing.T) {
	ctx := auth.WithAuth(context.Background(), auth.AuthContext{Role: "user"})
	req := httptest.NewRequest("DELETE", "/api/events/1", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireAdminUnauthenticated(t *testing.T) {
	req := httptest.NewRequest("DELETE", "/api/events/1", nil)
	rec := httptest.NewRecorder()

	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
