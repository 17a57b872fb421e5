package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unityvolunteers/unityhub/internal/app/system/auth"
)

// AsVolunteer binds a volunteer subject to the request, bypassing token
// verification. Use in handler tests for volunteer-gated operations.
func AsVolunteer(r *http.Request, id primitive.ObjectID) *http.Request {
	return auth.WithTestSubject(r, auth.Subject{ID: id, Kind: auth.KindVolunteer})
}

// AsNGO binds an NGO subject to the request.
func AsNGO(r *http.Request, id primitive.ObjectID) *http.Request {
	return auth.WithTestSubject(r, auth.Subject{ID: id, Kind: auth.KindNGO})
}

// NewJSONRequest creates an HTTP request carrying body marshaled as JSON.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSONResponse unmarshals the recorded response body into out.
func DecodeJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to parse response body %q: %v", rec.Body.String(), err)
	}
}

// AssertStatus checks the recorded status code.
func AssertStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rec.Code != expected {
		t.Errorf("status code: got %d, want %d (body: %s)", rec.Code, expected, rec.Body.String())
	}
}

// AssertMessage checks the "message" field of an error/ack response body.
func AssertMessage(t *testing.T, rec *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	DecodeJSONResponse(t, rec, &body)
	if body.Message != expected {
		t.Errorf("message: got %q, want %q", body.Message, expected)
	}
}
