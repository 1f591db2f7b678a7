package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendartesanal/tienda-cli/internal/models"
	"github.com/tiendartesanal/tienda-cli/internal/session"
	"github.com/tiendartesanal/tienda-cli/internal/state"
)

func testEnv(t *testing.T, backendURL string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("API_GATEWAY_URL", backendURL)
	t.Setenv("TIENDA_STATE_DIR", t.TempDir())
	t.Setenv("TIENDA_CACHE_DIR", "")
}

// currentSession reopens the state directory the command wrote to, the same
// way the next invocation would.
func currentSession(t *testing.T) session.Session {
	t.Helper()
	st, err := state.NewStore(os.Getenv("TIENDA_STATE_DIR"))
	require.NoError(t, err)
	return session.NewStore(st).Current()
}

func authBackend(t *testing.T, me http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			AccessToken: "tok1",
			TokenType:   "bearer",
			Username:    "marta",
			Email:       "marta@example.com",
		})
	})
	mux.HandleFunc("/api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			AccessToken: "tok1",
			TokenType:   "bearer",
			Username:    "marta",
			Email:       "marta@example.com",
		})
	})
	mux.HandleFunc("/api/v1/auth/me", me)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func profileHandler(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(models.User{ID: 7, Username: "marta", Email: "marta@example.com"})
}

func TestLoginCmd(t *testing.T) {
	t.Run("stores the resolved profile with its id", func(t *testing.T) {
		server := authBackend(t, profileHandler)
		testEnv(t, server.URL)

		cmd := LoginCmd{Username: "marta", Password: "s3cret"}
		require.NoError(t, cmd.Run(context.Background(), &Globals{}))

		sess := currentSession(t)
		require.True(t, sess.IsAuthenticated())
		assert.Equal(t, int64(7), sess.User.ID)
		assert.Equal(t, "tok1", sess.Token)
	})

	t.Run("failed profile fetch rolls the session back", func(t *testing.T) {
		server := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
		})
		testEnv(t, server.URL)

		cmd := LoginCmd{Username: "marta", Password: "s3cret"}
		err := cmd.Run(context.Background(), &Globals{})
		require.Error(t, err)

		sess := currentSession(t)
		assert.False(t, sess.IsAuthenticated())

		st, err := state.NewStore(os.Getenv("TIENDA_STATE_DIR"))
		require.NoError(t, err)
		_, err = st.Get(state.TokenKey)
		assert.ErrorIs(t, err, state.ErrKeyNotFound)
	})
}

func TestRegisterCmd(t *testing.T) {
	t.Run("establishes a session from the register response", func(t *testing.T) {
		server := authBackend(t, profileHandler)
		testEnv(t, server.URL)

		cmd := RegisterCmd{Username: "marta", Email: "marta@example.com", Password: "s3cret"}
		require.NoError(t, cmd.Run(context.Background(), &Globals{}))

		sess := currentSession(t)
		require.True(t, sess.IsAuthenticated())
		assert.Equal(t, int64(7), sess.User.ID)
		assert.Equal(t, "tok1", sess.Token)
	})
}
