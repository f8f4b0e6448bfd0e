package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-balance-keeper/internal/adapter"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/mock"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/models"
)

type clientFixture struct {
	auth     *clientAuthService
	sessions *mock.MockLocalSessionStorage
	adapter  *mock.MockServerAdapter
}

func newClientFixture(t *testing.T) clientFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockLocalSessionStorage(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	auth := NewClientAuthService(sessions, serverAdapter, logger.Nop()).(*clientAuthService)
	auth.now = func() time.Time { return fixedNow }

	return clientFixture{auth: auth, sessions: sessions, adapter: serverAdapter}
}

func TestClientAuthService_Login_CachesSession(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()
	req := models.LoginRequest{Email: "ann@example.com", Password: "secret1"}

	f.adapter.EXPECT().Login(ctx, req).
		Return(models.UserProfile{UserID: "abc123", Name: "Ann", Email: "ann@example.com"}, nil)
	f.adapter.EXPECT().Token().Return("jwt-token")
	want := models.LocalSession{UserID: "abc123", Name: "Ann", Email: "ann@example.com", Token: "jwt-token", SavedAt: fixedNow}
	f.sessions.EXPECT().SaveSession(ctx, want).Return(nil)

	got, err := f.auth.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientAuthService_Register_ServerRejects(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().Register(ctx, gomock.Any()).Return(models.UserProfile{}, adapter.ErrConflict)

	_, err := f.auth.Register(ctx, models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestClientAuthService_RestoreSession(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		f := newClientFixture(t)
		ctx := context.Background()

		f.sessions.EXPECT().LoadSession(ctx).Return(models.LocalSession{UserID: "abc123", Token: "jwt-token"}, nil)
		f.adapter.EXPECT().SetToken("jwt-token")

		session, err := f.auth.RestoreSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc123", session.UserID)
	})

	t.Run("nothing cached", func(t *testing.T) {
		f := newClientFixture(t)
		ctx := context.Background()

		f.sessions.EXPECT().LoadSession(ctx).Return(models.LocalSession{}, store.ErrLocalSessionNotFound)

		_, err := f.auth.RestoreSession(ctx)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})
}

func TestClientAuthService_Logout(t *testing.T) {
	serverDown := errors.New("connection refused")
	diskFull := errors.New("disk full")
	unreadable := errors.New("database is locked")

	tests := []struct {
		name      string
		token     string
		cached    string
		loadErr   error
		serverErr error
		cacheErr  error
		wantCall  bool
		want      models.LogoutResult
	}{
		{name: "signed in", token: "jwt-token", wantCall: true},
		{name: "token restored from cache", cached: "cached-jwt", wantCall: true},
		{name: "nothing cached skips the server", loadErr: store.ErrLocalSessionNotFound},
		{name: "unreadable cache skips the server", loadErr: unreadable},
		{name: "server failure still clears", token: "jwt-token", serverErr: serverDown, wantCall: true, want: models.LogoutResult{ServerErr: serverDown}},
		{name: "cache failure is reported", token: "jwt-token", cacheErr: diskFull, wantCall: true, want: models.LogoutResult{CacheErr: diskFull}},
		{name: "both fail", cached: "cached-jwt", serverErr: serverDown, cacheErr: diskFull, wantCall: true, want: models.LogoutResult{ServerErr: serverDown, CacheErr: diskFull}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newClientFixture(t)
			ctx := context.Background()

			f.adapter.EXPECT().Token().Return(tt.token)
			if tt.token == "" {
				if tt.cached != "" {
					f.sessions.EXPECT().LoadSession(ctx).Return(models.LocalSession{UserID: "abc123", Token: tt.cached}, nil)
					f.adapter.EXPECT().SetToken(tt.cached)
				} else {
					f.sessions.EXPECT().LoadSession(ctx).Return(models.LocalSession{}, tt.loadErr)
				}
			}
			if tt.wantCall {
				f.adapter.EXPECT().Logout(ctx).Return(tt.serverErr)
			}
			f.adapter.EXPECT().SetToken("")
			f.sessions.EXPECT().ClearSession(ctx).Return(tt.cacheErr)

			got := f.auth.Logout(ctx)
			assert.Equal(t, tt.want, got)
		})
	}
}
