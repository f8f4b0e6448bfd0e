package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/mock"
	"github.com/MKhiriev/go-balance-keeper/internal/service"
	"github.com/MKhiriev/go-balance-keeper/models"
)

type recordingNavigator struct {
	calls int
	err   error
}

func (n *recordingNavigator) ToLogin(context.Context) error {
	n.calls++
	return n.err
}

func TestLogout_AlwaysCleansUpAndNavigates(t *testing.T) {
	serverDown := errors.New("connection refused")
	diskFull := errors.New("disk full")
	noScreen := errors.New("no screen")

	tests := []struct {
		name        string
		token       string
		serverErr   error
		cacheErr    error
		navigateErr error
		want        models.LogoutResult
	}{
		{name: "everything succeeds", token: "jwt"},
		{name: "not signed in", token: ""},
		{name: "server unreachable", token: "jwt", serverErr: serverDown, want: models.LogoutResult{ServerErr: serverDown}},
		{name: "cache failure", token: "jwt", cacheErr: diskFull, want: models.LogoutResult{CacheErr: diskFull}},
		{
			name: "every step fails", token: "jwt",
			serverErr: serverDown, cacheErr: diskFull, navigateErr: noScreen,
			want: models.LogoutResult{ServerErr: serverDown, CacheErr: diskFull, NavigateErr: noScreen},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serverAdapter := mock.NewMockServerAdapter(ctrl)
			sessions := mock.NewMockLocalSessionStorage(ctrl)
			nav := &recordingNavigator{err: tt.navigateErr}

			serverAdapter.EXPECT().Token().Return(tt.token)
			if tt.token != "" {
				serverAdapter.EXPECT().Logout(gomock.Any()).Return(tt.serverErr)
			}
			serverAdapter.EXPECT().SetToken("")
			sessions.EXPECT().ClearSession(gomock.Any()).Return(tt.cacheErr)

			auth := service.NewClientAuthService(sessions, serverAdapter, logger.Nop())
			got := Logout(context.Background(), auth, nav)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, nav.calls)
			if tt.want == (models.LogoutResult{}) {
				assert.NoError(t, got.Err())
			} else {
				assert.Error(t, got.Err())
			}
		})
	}
}
