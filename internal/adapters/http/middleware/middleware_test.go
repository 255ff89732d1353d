package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/adapters/http/response"
	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	valid    string
	identity domain.Identity
	seen     string
}

func (s *stubAuthenticator) Authenticate(token string) (domain.Identity, error) {
	s.seen = token
	if token == "" || token != s.valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	return s.identity, nil
}

func newTestAuth(authn domain.Authenticator) *Auth {
	return NewAuth(authn, response.NewJSONWriter(logger.Nop()), logger.Nop())
}

func TestRequireRejectsMissingAndInvalidTokens(t *testing.T) {
	authn := &stubAuthenticator{valid: "good"}
	called := false
	h := newTestAuth(authn).Require(func(http.ResponseWriter, *http.Request, domain.Identity) {
		called = true
	})

	for _, header := range []string{"", "bad", "Bearer bad"} {
		req := httptest.NewRequest(http.MethodPost, "/blog/create", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, header)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, map[string]string{"message": "You are not logged in"}, body)
	}

	assert.False(t, called)
}

func TestRequirePassesIdentityExplicitly(t *testing.T) {
	userID := uuid.New()
	authn := &stubAuthenticator{valid: "good", identity: domain.Identity{UserID: userID}}

	var got domain.Identity
	h := newTestAuth(authn).Require(func(w http.ResponseWriter, _ *http.Request, identity domain.Identity) {
		got = identity
		w.WriteHeader(http.StatusNoContent)
	})

	for _, header := range []string{"good", "Bearer good", "bearer good"} {
		req := httptest.NewRequest(http.MethodPost, "/blog/create", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code, header)
		assert.Equal(t, "good", authn.seen)
		assert.Equal(t, userID, got.UserID)
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := New().Use(mk("a")).Use(mk("b")).Then(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b", "handler"}, order)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://app.test"}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := CORS(cfg)(next)

	req := httptest.NewRequest(http.MethodGet, "/blog/bulk", nil)
	req.Header.Set("Origin", "http://app.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "http://app.test", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/blog/bulk", nil)
	req.Header.Set("Origin", "http://evil.test")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/blog/create", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	h := RequestLogger(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	_, err := uuid.Parse(rr.Header().Get(HeaderRequestID))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "given-id")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "given-id", rr.Header().Get(HeaderRequestID))
}

func TestRecoverTurnsPanicInto500(t *testing.T) {
	h := Recover(response.NewJSONWriter(logger.Nop()), logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rr.Body.String())
}
