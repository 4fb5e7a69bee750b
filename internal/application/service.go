package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/bnema/clickup-cli/internal/ports"
)

// TokenSource records where the token of a session came from.
type TokenSource string

const (
	TokenSourceNone  TokenSource = ""
	TokenSourceFlag  TokenSource = "flag"
	TokenSourceStore TokenSource = "config"
	TokenSourceEnv   TokenSource = "environment"
)

// ClientFactory builds an API client bound to a single token.
type ClientFactory func(token string) (ports.ClickUp, error)

type AuthState string

const (
	AuthStateUnauthenticated AuthState = "unauthenticated"
	AuthStateAuthenticated   AuthState = "authenticated"
	AuthStateExpired         AuthState = "expired"
)

type AuthStatus struct {
	State       AuthState    `json:"state"`
	Source      TokenSource  `json:"source,omitempty"`
	MaskedToken string       `json:"token,omitempty"`
	User        *domain.User `json:"user,omitempty"`
}

type Service struct {
	store    ports.CredentialStore
	factory  ClientFactory
	envToken string
}

func NewService(store ports.CredentialStore, factory ClientFactory, envToken string) *Service {
	return &Service{
		store:    store,
		factory:  factory,
		envToken: strings.TrimSpace(envToken),
	}
}

// ResolveToken picks the explicit token first, then the stored one, then the
// environment fallback.
func (s *Service) ResolveToken(ctx context.Context, explicit string) (string, TokenSource, error) {
	if token := strings.TrimSpace(explicit); token != "" {
		return token, TokenSourceFlag, nil
	}

	creds, err := s.store.Load(ctx)
	if err != nil {
		return "", TokenSourceNone, fmt.Errorf("load credentials: %w", err)
	}
	if token := strings.TrimSpace(creds.AccessToken); token != "" {
		return token, TokenSourceStore, nil
	}

	if s.envToken != "" {
		return s.envToken, TokenSourceEnv, nil
	}

	return "", TokenSourceNone, domain.ErrNotAuthenticated
}

func (s *Service) Client(ctx context.Context, explicit string) (ports.ClickUp, error) {
	token, _, err := s.ResolveToken(ctx, explicit)
	if err != nil {
		return nil, err
	}
	return s.newClient(token)
}

// Login stores the token only after the API accepted it.
func (s *Service) Login(ctx context.Context, token string) (domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, domain.ErrEmptyToken
	}

	client, err := s.newClient(token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := client.GetUser(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("verify token: %w", err)
	}

	if err := s.store.Set(ctx, domain.CredentialAccessToken, token); err != nil {
		return domain.User{}, fmt.Errorf("save access token: %w", err)
	}

	return user, nil
}

func (s *Service) Logout(ctx context.Context) error {
	removed := ""
	if err := s.store.Update(ctx, domain.CredentialsPatch{AccessToken: &removed}); err != nil {
		return fmt.Errorf("remove access token: %w", err)
	}
	return nil
}

// Status reports a 401 from the API as an expired session instead of an
// error. Any other failure is returned.
func (s *Service) Status(ctx context.Context, explicit string) (AuthStatus, error) {
	token, source, err := s.ResolveToken(ctx, explicit)
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return AuthStatus{State: AuthStateUnauthenticated}, nil
	}
	if err != nil {
		return AuthStatus{}, err
	}

	status := AuthStatus{Source: source, MaskedToken: domain.MaskToken(token)}

	client, err := s.newClient(token)
	if err != nil {
		return AuthStatus{}, err
	}

	user, err := client.GetUser(ctx)
	if err != nil {
		if isUnauthorized(err) {
			status.State = AuthStateExpired
			return status, nil
		}
		return AuthStatus{}, fmt.Errorf("get current user: %w", err)
	}

	status.State = AuthStateAuthenticated
	status.User = &user
	return status, nil
}

func (s *Service) Defaults(ctx context.Context) (domain.Credentials, error) {
	creds, err := s.store.Load(ctx)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("load credentials: %w", err)
	}
	creds.AccessToken = domain.MaskToken(creds.AccessToken)
	return creds, nil
}

func (s *Service) SetDefaultTeam(ctx context.Context, teamID string) error {
	return s.setDefault(ctx, domain.CredentialDefaultTeamID, teamID)
}

func (s *Service) SetDefaultSpace(ctx context.Context, spaceID string) error {
	return s.setDefault(ctx, domain.CredentialDefaultSpaceID, spaceID)
}

func (s *Service) ResolveTeamID(ctx context.Context, arg string) (string, error) {
	return s.resolveDefault(ctx, arg, domain.CredentialDefaultTeamID, domain.ErrMissingTeamID)
}

func (s *Service) ResolveSpaceID(ctx context.Context, arg string) (string, error) {
	return s.resolveDefault(ctx, arg, domain.CredentialDefaultSpaceID, domain.ErrMissingSpaceID)
}

func (s *Service) setDefault(ctx context.Context, key domain.CredentialKey, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.ErrEmptyID
	}
	if err := s.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Service) resolveDefault(ctx context.Context, arg string, key domain.CredentialKey, missing error) (string, error) {
	if id := strings.TrimSpace(arg); id != "" {
		return id, nil
	}

	value, err := s.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}

	return "", missing
}

func (s *Service) newClient(token string) (ports.ClickUp, error) {
	if s.factory == nil {
		return nil, errors.New("client factory is not configured")
	}
	client, err := s.factory(token)
	if err != nil {
		return nil, fmt.Errorf("build clickup client: %w", err)
	}
	return client, nil
}

func isUnauthorized(err error) bool {
	var target interface{ Unauthorized() bool }
	return errors.As(err, &target) && target.Unauthorized()
}
