package authmw

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func TestToken_ValidBearer(t *testing.T) {
	t.Parallel()

	h := Token("secret-token-123")(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestToken_ValidAPIKeyHeader(t *testing.T) {
	t.Parallel()

	h := Token("secret-token-123")(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	req.Header.Set("X-API-Key", "secret-token-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestToken_MissingCredentials(t *testing.T) {
	t.Parallel()

	h := Token("secret")(okHandler)

	tests := []struct {
		name   string
		header string
		value  string
	}{
		{"no headers", "", ""},
		{"basic auth", "Authorization", "Basic dXNlcjpwYXNz"},
		{"lowercase bearer", "Authorization", "bearer secret"},
		{"bare token", "Authorization", "secret"},
		{"empty bearer", "Authorization", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestToken_InvalidToken(t *testing.T) {
	t.Parallel()

	h := Token("correct-token")(okHandler)

	tests := []struct {
		name   string
		header string
		token  string
	}{
		{"wrong bearer", "Authorization", "Bearer wrong-token"},
		{"partial bearer", "Authorization", "Bearer correct"},
		{"bearer with suffix", "Authorization", "Bearer correct-token-extra"},
		{"wrong api key", "X-API-Key", "wrong-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
			req.Header.Set(tt.header, tt.token)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestToken_BearerTakesPrecedenceOverAPIKey(t *testing.T) {
	t.Parallel()

	h := Token("tok")(okHandler)

	// When a Bearer header is present its value is the one compared; a
	// valid X-API-Key does not rescue a wrong bearer token.
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer wrong")
	req.Header.Set("X-API-Key", "tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d (bearer value wins when prefixed)", rec.Code, http.StatusUnauthorized)
	}
}

func TestToken_PassesRequestThrough(t *testing.T) {
	t.Parallel()

	var called bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})

	h := Token("tok")(inner)

	req := httptest.NewRequest(http.MethodPost, "/webhook", http.NoBody)
	req.Header.Set("X-API-Key", "tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !called {
		t.Error("inner handler was not called")
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
}
