package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	msuuid "github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/golang-jwt/jwt/v4"
	guuid "github.com/google/uuid"
)

const testSecret = "test-secret"

var testUserID = msuuid.UUID(guuid.MustParse("11111111-2222-3333-4444-555555555555"))

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	return token
}

// captureUID records whether the handler ran and which user id it saw.
type captureUID struct {
	ran bool
	uid *msuuid.UUID
}

func (c *captureUID) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.ran = true
		if uid, ok := api_context.AuthUserIDFromContext(r.Context()); ok {
			c.uid = &uid
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithAuth_ValidToken(t *testing.T) {
	capture := &captureUID{}
	mw := WithAuth(testSecret)(capture.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, testUserID.String()))

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !capture.ran {
		t.Fatal("expected the handler to run")
	}
	if capture.uid == nil || *capture.uid != testUserID {
		t.Errorf("resolved uid = %v, want %q", capture.uid, testUserID)
	}
}

func TestWithAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not a bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer "},
		{"non-uuid subject", "Bearer "},
	}
	tests[3].header += signToken(t, "other-secret", testUserID.String())
	tests[4].header += signToken(t, testSecret, "not-a-uuid")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			capture := &captureUID{}
			mw := WithAuth(testSecret)(capture.handler())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			mw.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
			}
			if capture.ran {
				t.Error("did not expect the handler to run")
			}
		})
	}
}

func TestWithAuth_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	claims := jwt.RegisteredClaims{
		Subject:   testUserID.String(),
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}

	capture := &captureUID{}
	mw := WithAuth(testSecret)(capture.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if capture.ran {
		t.Error("did not expect the handler to run")
	}
}

func TestWithOptionalAuth_ValidToken(t *testing.T) {
	capture := &captureUID{}
	mw := WithOptionalAuth(testSecret)(capture.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, testUserID.String()))

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if capture.uid == nil || *capture.uid != testUserID {
		t.Errorf("resolved uid = %v, want %q", capture.uid, testUserID)
	}
}

func TestWithOptionalAuth_AnonymousPassthrough(t *testing.T) {
	for _, header := range []string{"", "Bearer garbage"} {
		capture := &captureUID{}
		mw := WithOptionalAuth(testSecret)(capture.handler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if !capture.ran {
			t.Error("expected the handler to run anonymously")
		}
		if capture.uid != nil {
			t.Errorf("expected no resolved uid, got %v", capture.uid)
		}
	}
}
