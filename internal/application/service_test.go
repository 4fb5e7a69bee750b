package application

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/bnema/clickup-cli/internal/adapters/clickup"
	credfile "github.com/bnema/clickup-cli/internal/adapters/credentials/file"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/bnema/clickup-cli/internal/ports"
	"github.com/bnema/clickup-cli/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func staticFactory(client ports.ClickUp, seen *[]string) ClientFactory {
	return func(token string) (ports.ClickUp, error) {
		if seen != nil {
			*seen = append(*seen, token)
		}
		return client, nil
	}
}

func TestResolveTokenPrecedence(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		explicit   string
		stored     string
		env        string
		wantToken  string
		wantSource TokenSource
		wantErr    error
	}{
		{name: "flag wins", explicit: "flag-token", stored: "stored-token", env: "env-token", wantToken: "flag-token", wantSource: TokenSourceFlag},
		{name: "stored before env", stored: "stored-token", env: "env-token", wantToken: "stored-token", wantSource: TokenSourceStore},
		{name: "env fallback", env: "env-token", wantToken: "env-token", wantSource: TokenSourceEnv},
		{name: "blank flag ignored", explicit: "   ", stored: "stored-token", wantToken: "stored-token", wantSource: TokenSourceStore},
		{name: "nothing configured", wantErr: domain.ErrNotAuthenticated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockCredentialStore(t)
			if tc.explicit == "" || tc.explicit == "   " {
				store.EXPECT().Load(mockAnyContext()).Return(domain.Credentials{AccessToken: tc.stored}, nil)
			}
			service := NewService(store, nil, tc.env)

			token, source, err := service.ResolveToken(context.Background(), tc.explicit)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, token)
			assert.Equal(t, tc.wantSource, source)
		})
	}
}

func TestClientBuildsWithResolvedToken(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	store.EXPECT().Load(mockAnyContext()).Return(domain.Credentials{AccessToken: "stored-token"}, nil)
	api := mocks.NewMockClickUp(t)

	var seen []string
	service := NewService(store, staticFactory(api, &seen), "")

	client, err := service.Client(context.Background(), "")
	require.NoError(t, err)
	assert.Same(t, api, client)
	assert.Equal(t, []string{"stored-token"}, seen)
}

func TestClientWithoutTokenFailsBeforeBuilding(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	store.EXPECT().Load(mockAnyContext()).Return(domain.Credentials{}, nil)

	var seen []string
	service := NewService(store, staticFactory(nil, &seen), "")

	_, err := service.Client(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Empty(t, seen)
}

func TestLoginStoresVerifiedToken(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	api := mocks.NewMockClickUp(t)
	api.EXPECT().GetUser(mockAnyContext()).Return(domain.User{ID: 123, Username: "testuser"}, nil)
	store.EXPECT().Set(mockAnyContext(), domain.CredentialAccessToken, "pk_new").Return(nil)

	var seen []string
	service := NewService(store, staticFactory(api, &seen), "")

	user, err := service.Login(context.Background(), "  pk_new\n")
	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, []string{"pk_new"}, seen)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	service := NewService(store, nil, "")

	_, err := service.Login(context.Background(), " ")
	require.ErrorIs(t, err, domain.ErrEmptyToken)
}

func TestLoginDoesNotStoreRejectedToken(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	api := mocks.NewMockClickUp(t)
	apiErr := &clickup.APIError{Method: http.MethodGet, Path: "/user", StatusCode: http.StatusUnauthorized}
	api.EXPECT().GetUser(mockAnyContext()).Return(domain.User{}, apiErr)

	service := NewService(store, staticFactory(api, nil), "")

	_, err := service.Login(context.Background(), "pk_bad")
	require.Error(t, err)

	var target *clickup.APIError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, http.StatusUnauthorized, target.StatusCode)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginPropagatesStoreFailure(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	api := mocks.NewMockClickUp(t)
	writeErr := errors.New("disk full")
	api.EXPECT().GetUser(mockAnyContext()).Return(domain.User{ID: 1}, nil)
	store.EXPECT().Set(mockAnyContext(), domain.CredentialAccessToken, "pk_new").Return(writeErr)

	service := NewService(store, staticFactory(api, nil), "")

	_, err := service.Login(context.Background(), "pk_new")
	require.ErrorIs(t, err, writeErr)
}

func TestLogoutRemovesOnlyToken(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	store.EXPECT().Update(mockAnyContext(), mock.MatchedBy(func(patch domain.CredentialsPatch) bool {
		return patch.AccessToken != nil && *patch.AccessToken == "" &&
			patch.DefaultTeamID == nil && patch.DefaultSpaceID == nil
	})).Return(nil)

	service := NewService(store, nil, "")
	require.NoError(t, service.Logout(context.Background()))
}

func TestLogoutKeepsDefaultsOnDisk(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(credfile.CredentialsPathKey, filepath.Join(t.TempDir(), "config.json"))
	store, err := credfile.NewStore(cfg, nil)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Credentials{AccessToken: "pk_1", DefaultTeamID: "team-1"}))

	service := NewService(store, nil, "")
	require.NoError(t, service.Logout(ctx))

	creds, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{DefaultTeamID: "team-1"}, creds)
}

func TestStatus(t *testing.T) {
	t.Parallel()

	t.Run("unauthenticated", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		store.EXPECT().Load(mockAnyContext()).Return(domain.Credentials{}, nil)
		service := NewService(store, nil, "")

		status, err := service.Status(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, AuthStatus{State: AuthStateUnauthenticated}, status)
	})

	t.Run("authenticated", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		store.EXPECT().Load(mockAnyContext()).Return(domain.Credentials{AccessToken: "pk_12345678_ABCDEFG"}, nil)
		api := mocks.NewMockClickUp(t)
		api.EXPECT().GetUser(mockAnyContext()).Return(domain.User{ID: 7, Username: "alice"}, nil)
		service := NewService(store, staticFactory(api, nil), "")

		status, err := service.Status(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, AuthStateAuthenticated, status.State)
		assert.Equal(t, TokenSourceStore, status.Source)
		assert.Equal(t, "pk_1234…", status.MaskedToken)
		require.NotNil(t, status.User)
		assert.Equal(t, "alice", status.User.Username)
	})

	t.Run("expired", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		api := mocks.NewMockClickUp(t)
		api.EXPECT().GetUser(mockAnyContext()).Return(domain.User{}, &clickup.APIError{StatusCode: http.StatusUnauthorized})
		service := NewService(store, staticFactory(api, nil), "")

		status, err := service.Status(context.Background(), "pk_explicit_token")
		require.NoError(t, err)
		assert.Equal(t, AuthStateExpired, status.State)
		assert.Equal(t, TokenSourceFlag, status.Source)
		assert.Nil(t, status.User)
	})

	t.Run("other failures propagate", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		api := mocks.NewMockClickUp(t)
		api.EXPECT().GetUser(mockAnyContext()).Return(domain.User{}, &clickup.APIError{StatusCode: http.StatusInternalServerError})
		service := NewService(store, staticFactory(api, nil), "pk_env_token_value")

		store.EXPECT().Load(mockAnyContext()).Return(domain.Credentials{}, nil)

		_, err := service.Status(context.Background(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	t.Run("argument wins", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		service := NewService(store, nil, "")

		id, err := service.ResolveTeamID(context.Background(), "111")
		require.NoError(t, err)
		assert.Equal(t, "111", id)
	})

	t.Run("stored default", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		store.EXPECT().Get(mockAnyContext(), domain.CredentialDefaultSpaceID).Return("222", nil)
		service := NewService(store, nil, "")

		id, err := service.ResolveSpaceID(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "222", id)
	})

	t.Run("missing", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		store.EXPECT().Get(mockAnyContext(), domain.CredentialDefaultTeamID).Return("", nil)
		store.EXPECT().Get(mockAnyContext(), domain.CredentialDefaultSpaceID).Return("", nil)
		service := NewService(store, nil, "")

		_, err := service.ResolveTeamID(context.Background(), "")
		require.ErrorIs(t, err, domain.ErrMissingTeamID)

		_, err = service.ResolveSpaceID(context.Background(), "")
		require.ErrorIs(t, err, domain.ErrMissingSpaceID)
	})
}

func TestSetDefaults(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	store.EXPECT().Set(mockAnyContext(), domain.CredentialDefaultTeamID, "111").Return(nil)
	store.EXPECT().Set(mockAnyContext(), domain.CredentialDefaultSpaceID, "222").Return(nil)
	service := NewService(store, nil, "")

	require.NoError(t, service.SetDefaultTeam(context.Background(), " 111 "))
	require.NoError(t, service.SetDefaultSpace(context.Background(), "222"))
	require.ErrorIs(t, service.SetDefaultTeam(context.Background(), ""), domain.ErrEmptyID)
}

func TestDefaultsMasksToken(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCredentialStore(t)
	store.EXPECT().Load(mockAnyContext()).Return(domain.Credentials{AccessToken: "pk_12345678_ABCDEFG", DefaultTeamID: "111"}, nil)
	service := NewService(store, nil, "")

	creds, err := service.Defaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{AccessToken: "pk_1234…", DefaultTeamID: "111"}, creds)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
