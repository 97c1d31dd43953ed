package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-task-tracker/internal/adapter"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

// accessTokenKey is the local-storage key the bearer token persists under.
const accessTokenKey = "accessToken"

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

type sessionService struct {
	storages *store.ClientStorages
	gateway  adapter.Gateway
	log      *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewSessionService builds the session service and registers it as the
// gateway's unauthorized hook, so any 401 anywhere force-resets the session.
func NewSessionService(storages *store.ClientStorages, gateway adapter.Gateway, log *logger.Logger) SessionService {
	s := &sessionService{
		storages: storages,
		gateway:  gateway,
		log:      log,
		session:  models.Session{State: models.SessionInitializing},
	}

	gateway.OnUnauthorized(s.forceLogout)

	return s
}

func (s *sessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionService) Restore(ctx context.Context) models.Session {
	token, err := s.storages.Settings.Get(ctx, accessTokenKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.log.Warn().Err(err).Msg("failed to read persisted token")
		}
		return s.transition("", nil)
	}

	// The subject is decoded without signature verification: the token is
	// trusted as opaque once issued over a secure channel, and an expired
	// token stays a live session until the first 401.
	username, err := utils.ParseSubjectFromJWT(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("persisted token does not decode, dropping it")
		if delErr := s.storages.Settings.Delete(ctx, accessTokenKey); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to drop undecodable token")
		}
		return s.transition("", nil)
	}

	s.gateway.SetToken(token)
	s.log.Info().Str("username", username).Msg("session restored from persisted token")

	return s.transition(token, &models.User{Username: username})
}

func (s *sessionService) Login(ctx context.Context, username, password string) (models.Session, error) {
	body, err := s.gateway.Post(ctx, loginPath, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		s.transition("", nil)
		return s.Session(), fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	var authResp models.AuthResponse
	if err = json.Unmarshal(body, &authResp); err != nil {
		s.transition("", nil)
		return s.Session(), fmt.Errorf("%w: decode login response: %w", ErrLoginOnServer, err)
	}
	if authResp.AccessToken == "" {
		s.transition("", nil)
		return s.Session(), fmt.Errorf("%w: %w", ErrLoginOnServer, ErrEmptyToken)
	}

	// Prefer the token subject for identity; fall back to the credentials
	// the user typed when the token does not decode.
	subject, err := utils.ParseSubjectFromJWT(authResp.AccessToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("login token does not decode, using typed username")
		subject = username
	}

	if err = s.storages.Settings.Set(ctx, accessTokenKey, authResp.AccessToken); err != nil {
		// Persisting is best-effort: the session is still valid for this
		// process, it just will not survive a restart.
		s.log.Warn().Err(err).Msg("failed to persist access token")
	}

	s.gateway.SetToken(authResp.AccessToken)
	s.log.Info().Str("username", subject).Msg("login successful")

	return s.transition(authResp.AccessToken, &models.User{Username: subject}), nil
}

func (s *sessionService) Register(ctx context.Context, name, username, password string) error {
	req := models.RegisterRequest{Name: name, Username: username, Password: password}
	if _, err := s.gateway.Post(ctx, registerPath, req); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	s.log.Info().Str("username", username).Msg("registration successful")

	return nil
}

func (s *sessionService) Logout(ctx context.Context) {
	if err := s.storages.Settings.Delete(ctx, accessTokenKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted token on logout")
	}

	s.gateway.SetToken("")
	s.transition("", nil)
	s.log.Info().Msg("logged out")
}

// forceLogout is invoked by the gateway whenever any call returns 401. The
// gateway has already dropped its in-memory token; this clears the persisted
// copy and resets the session record.
func (s *sessionService) forceLogout() {
	if err := s.storages.Settings.Delete(context.Background(), accessTokenKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted token after 401")
	}

	s.transition("", nil)
	s.log.Warn().Msg("session terminated by unauthorized response")
}

// transition moves the state machine: a token plus user means AUTHENTICATED,
// anything else means UNAUTHENTICATED. Returns the new snapshot.
func (s *sessionService) transition(token string, user *models.User) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" && user != nil {
		s.session = models.Session{Token: token, User: user, State: models.SessionAuthenticated}
	} else {
		s.session = models.Session{State: models.SessionUnauthenticated}
	}

	return s.session
}
