package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testVerifier(secret, verifyURL string) *TurnstileVerifier {
	return &TurnstileVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: time.Second},
	}
}

func TestTurnstileVerifier_FailsOpenWithoutSecret(t *testing.T) {
	v := NewTurnstileVerifier("")
	assert.True(t, v.Verify(context.Background(), ""))
	assert.True(t, v.Verify(context.Background(), "anything"))
}

func TestTurnstileVerifier_EmptyTokenRejected(t *testing.T) {
	v := testVerifier("secret-key", DefaultVerifyURL)
	assert.False(t, v.Verify(context.Background(), ""))
}

func TestTurnstileVerifier_Verify(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "secret-key", r.Form.Get("secret"))
			assert.Equal(t, "client-token", r.Form.Get("response"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": true}`))
		}))
		defer srv.Close()

		v := testVerifier("secret-key", srv.URL)
		assert.True(t, v.Verify(context.Background(), "client-token"))
	})

	t.Run("Rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
		}))
		defer srv.Close()

		v := testVerifier("secret-key", srv.URL)
		assert.False(t, v.Verify(context.Background(), "bad-token"))
	})

	t.Run("TransportFailure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		v := testVerifier("secret-key", srv.URL)
		assert.False(t, v.Verify(context.Background(), "client-token"))
	})

	t.Run("MalformedResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		v := testVerifier("secret-key", srv.URL)
		assert.False(t, v.Verify(context.Background(), "client-token"))
	})
}
