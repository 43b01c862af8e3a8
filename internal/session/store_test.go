package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"clubportal/internal/api"
	"clubportal/internal/auth"
	"clubportal/internal/model"
	"clubportal/internal/notify"
)

func authServer(t *testing.T, respond func(action string) (int, interface{})) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		status, body := respond(req["action"])
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
}

func newTestStore(t *testing.T, authURL string) (*Store, *Storage) {
	t.Helper()
	storage := NewStorage(t.TempDir())
	client := api.New(api.Endpoints{Auth: authURL}, time.Second)
	return NewStore(client, storage, notify.NewCenter(8)), storage
}

func TestLoginAdoptsAndPersists(t *testing.T) {
	srv := authServer(t, func(action string) (int, interface{}) {
		require.Equal(t, "login", action)
		return http.StatusOK, map[string]interface{}{
			"success": true,
			"token":   "tok-123",
			"user":    model.User{ID: 1, Email: "a@b.c", FullName: "Alice", Role: model.RoleAdmin},
		}
	})
	defer srv.Close()

	store, storage := newTestStore(t, srv.URL)
	res := store.Login(context.Background(), "a@b.c", "pw")
	require.True(t, res.Success)
	require.Equal(t, "Alice", res.User.FullName)
	require.Equal(t, "tok-123", store.Token())

	saved, token := storage.Read()
	require.NotNil(t, saved)
	require.Equal(t, 1, saved.ID)
	require.Equal(t, "tok-123", token)
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	srv := authServer(t, func(string) (int, interface{}) {
		return http.StatusUnauthorized, map[string]interface{}{"success": false, "error": "invalid credentials"}
	})
	defer srv.Close()

	store, storage := newTestStore(t, srv.URL)
	res := store.Login(context.Background(), "a@b.c", "bad")
	require.False(t, res.Success)
	require.Nil(t, store.Current())

	saved, _ := storage.Read()
	require.Nil(t, saved)
}

func TestLoginTransportFailure(t *testing.T) {
	store, _ := newTestStore(t, "http://127.0.0.1:1")
	res := store.Login(context.Background(), "a@b.c", "pw")
	require.False(t, res.Success)
	require.Nil(t, store.Current())
}

func TestRegisterAdopts(t *testing.T) {
	srv := authServer(t, func(action string) (int, interface{}) {
		require.Equal(t, "register", action)
		return http.StatusOK, map[string]interface{}{
			"success": true,
			"token":   "tok-reg",
			"user":    model.User{ID: 2, Email: "n@b.c", FullName: "New", Role: model.RoleMember},
		}
	})
	defer srv.Close()

	store, _ := newTestStore(t, srv.URL)
	res := store.Register(context.Background(), "n@b.c", "pw", "New")
	require.True(t, res.Success)
	require.Equal(t, model.RoleMember, store.Current().Role)
}

func TestRestoreIsIdempotent(t *testing.T) {
	storage := NewStorage(t.TempDir())
	user := &model.User{ID: 3, Email: "m@b.c", FullName: "Mem", Role: model.RoleMember}
	require.NoError(t, storage.Write(user, "opaque-token"))

	store := NewStore(api.New(api.Endpoints{}, time.Second), storage, nil)
	first := store.Restore()
	second := store.Restore()
	require.NotNil(t, first)
	require.Equal(t, first, second)
	require.Equal(t, "opaque-token", store.Token())
}

func TestRestoreMissingStorage(t *testing.T) {
	store := NewStore(api.New(api.Endpoints{}, time.Second), NewStorage(t.TempDir()), nil)
	require.Nil(t, store.Restore())
	require.Nil(t, store.Current())
}

func TestRestoreMalformedBlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600))

	store := NewStore(api.New(api.Endpoints{}, time.Second), NewStorage(dir), nil)
	require.Nil(t, store.Restore())
}

func TestRestoreDropsExpiredJWT(t *testing.T) {
	storage := NewStorage(t.TempDir())
	expired, err := auth.Issue("3", "m@b.c", model.RoleMember, "club-portal", "secret", -time.Minute)
	require.NoError(t, err)
	require.NoError(t, storage.Write(&model.User{ID: 3, Role: model.RoleMember}, expired))

	store := NewStore(api.New(api.Endpoints{}, time.Second), storage, nil)
	require.Nil(t, store.Restore())

	saved, _ := storage.Read()
	require.Nil(t, saved, "expired session should be cleared from storage")
}

func TestLogoutClearsMemoryAndStorage(t *testing.T) {
	srv := authServer(t, func(string) (int, interface{}) {
		return http.StatusOK, map[string]interface{}{
			"success": true,
			"token":   "tok",
			"user":    model.User{ID: 1, Role: model.RoleAdmin},
		}
	})
	defer srv.Close()

	store, storage := newTestStore(t, srv.URL)
	require.True(t, store.Login(context.Background(), "a@b.c", "pw").Success)

	store.Logout()
	require.Nil(t, store.Current())
	require.Empty(t, store.Token())

	saved, token := storage.Read()
	require.Nil(t, saved)
	require.Empty(t, token)
}
