package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/unityvolunteers/unityhub/internal/app/system/auth"
)

const testSecret = "unit-test-secret-0123456789"

func newManager(t *testing.T, expiry time.Duration) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager(testSecret, expiry, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	return tm
}

func TestTokenManager_IssueVerifyRoundtrip(t *testing.T) {
	tm := newManager(t, time.Hour)
	id := primitive.NewObjectID()

	token, err := tm.Issue(id, auth.KindVolunteer)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	subject, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if subject.ID != id {
		t.Errorf("subject ID: got %v, want %v", subject.ID, id)
	}
	if subject.Kind != auth.KindVolunteer {
		t.Errorf("subject kind: got %q, want %q", subject.Kind, auth.KindVolunteer)
	}
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	tm := newManager(t, time.Millisecond)
	token, err := tm.Issue(primitive.NewObjectID(), auth.KindNGO)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := tm.Verify(token); err != auth.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	tm := newManager(t, time.Hour)
	token, err := tm.Issue(primitive.NewObjectID(), auth.KindVolunteer)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	other, err := auth.NewTokenManager("a-completely-different-secret", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	if _, err := other.Verify(token); err != auth.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	tm := newManager(t, time.Hour)
	if _, err := tm.Verify("not-a-token"); err != auth.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewTokenManager_RejectsEmptySecret(t *testing.T) {
	if _, err := auth.NewTokenManager("", time.Hour, zap.NewNop()); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := auth.NewTokenManager("secret", 0, zap.NewNop()); err == nil {
		t.Error("expected error for zero expiry")
	}
}

func TestRequire_ValidToken(t *testing.T) {
	tm := newManager(t, time.Hour)
	id := primitive.NewObjectID()
	token, err := tm.Issue(id, auth.KindNGO)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var seen auth.Subject
	handler := tm.Require(auth.KindNGO)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.CurrentSubject(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen.ID != id {
		t.Errorf("bound subject ID: got %v, want %v", seen.ID, id)
	}
}

func TestRequire_RejectsWrongKind(t *testing.T) {
	tm := newManager(t, time.Hour)
	token, err := tm.Issue(primitive.NewObjectID(), auth.KindVolunteer)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	handler := tm.Require(auth.KindNGO)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for wrong-kind token")
	}))

	req := httptest.NewRequest("POST", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequire_RejectsMissingToken(t *testing.T) {
	tm := newManager(t, time.Hour)
	handler := tm.Require(auth.KindVolunteer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a token")
	}))

	for _, header := range []string{"", "Bearer", "Bearer  ", "Basic abc123", "token-without-scheme"} {
		req := httptest.NewRequest("POST", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestRequire_HonorsPreBoundSubject(t *testing.T) {
	tm := newManager(t, time.Hour)
	id := primitive.NewObjectID()

	handler := tm.Require(auth.KindVolunteer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := auth.WithTestSubject(httptest.NewRequest("POST", "/protected", nil),
		auth.Subject{ID: id, Kind: auth.KindVolunteer})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for pre-bound subject, got %d", rec.Code)
	}

	// Pre-bound subject of the wrong kind is still rejected.
	req = auth.WithTestSubject(httptest.NewRequest("POST", "/protected", nil),
		auth.Subject{ID: id, Kind: auth.KindNGO})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong-kind pre-bound subject, got %d", rec.Code)
	}
}
