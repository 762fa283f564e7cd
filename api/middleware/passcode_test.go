package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/lotflow-backend/pkg/config"
	"github.com/angelmondragon/lotflow-backend/pkg/security"
)

func TestPasscodeMiddleware(t *testing.T) {
	verifier, err := security.NewPasscodeVerifier(config.AuthConfig{Passcode: "let-me-in"})
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong passcode", "nope", http.StatusUnauthorized},
		{"matching passcode", "let-me-in", http.StatusOK},
		{"surrounding whitespace", "  let-me-in ", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := Passcode(verifier, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/memos/close", nil)
			if tt.header != "" {
				req.Header.Set(PasscodeHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
			if called != (tt.want == http.StatusOK) {
				t.Fatalf("unexpected handler invocation: %v", called)
			}
			if tt.want == http.StatusUnauthorized {
				var payload struct {
					Error string `json:"error"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if payload.Error != "Invalid passcode" {
					t.Fatalf("unexpected message %q", payload.Error)
				}
			}
		})
	}
}

func TestPasscodeMiddlewareWithoutVerifierRejects(t *testing.T) {
	handler := Passcode(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run")
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sell", nil)
	req.Header.Set(PasscodeHeader, "anything")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
