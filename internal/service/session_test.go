package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/mock"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

// newTestSessionSvc — хелпер: собирает sessionService на моках и перехватывает
// хук, который сервис регистрирует в шлюзе при создании.
func newTestSessionSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	SessionService,
	*mock.MockGateway,
	*mock.MockSettingsRepository,
	*func(),
) {
	t.Helper()

	mockGateway := mock.NewMockGateway(ctrl)
	mockSettings := mock.NewMockSettingsRepository(ctrl)

	var hook func()
	mockGateway.EXPECT().OnUnauthorized(gomock.Any()).Do(func(h func()) { hook = h })

	storages := &store.ClientStorages{Settings: mockSettings}
	svc := NewSessionService(storages, mockGateway, logger.Nop())

	return svc, mockGateway, mockSettings, &hook
}

// signedToken выпускает настоящий HS256-токен для subject
func signedToken(t *testing.T, username string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("go-task-tracker", username, time.Hour, "test-sign-key")
	require.NoError(t, err)
	return token.SignedString
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestSessionService_Restore_FromPersistedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockSettings, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, "alice")

	mockSettings.EXPECT().Get(ctx, "accessToken").Return(token, nil)
	mockGateway.EXPECT().SetToken(token)

	session := svc.Restore(ctx)

	assert.True(t, session.Authenticated())
	assert.Equal(t, models.SessionAuthenticated, session.State)
	require.NotNil(t, session.User)
	assert.Equal(t, "alice", session.User.Username)
	assert.Equal(t, token, session.Token)
}

func TestSessionService_Restore_NoPersistedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSettings, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().Get(ctx, "accessToken").Return("", store.ErrKeyNotFound)

	session := svc.Restore(ctx)

	assert.False(t, session.Authenticated())
	assert.Equal(t, models.SessionUnauthenticated, session.State)
	assert.Nil(t, session.User)
}

func TestSessionService_Restore_CorruptTokenIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSettings, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().Get(ctx, "accessToken").Return("not-a-jwt", nil)
	mockSettings.EXPECT().Delete(ctx, "accessToken").Return(nil)

	session := svc.Restore(ctx)

	assert.Equal(t, models.SessionUnauthenticated, session.State)
}

// Истёкший, но корректно декодируемый токен остаётся живой сессией до первого
// 401 от сервера — клиент не проверяет exp локально.
func TestSessionService_Restore_ExpiredTokenStillCountsAsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockSettings, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken("go-task-tracker", "bob", -time.Hour, "test-sign-key")
	require.NoError(t, err)

	mockSettings.EXPECT().Get(ctx, "accessToken").Return(expired.SignedString, nil)
	mockGateway.EXPECT().SetToken(expired.SignedString)

	session := svc.Restore(ctx)

	assert.True(t, session.Authenticated())
	assert.Equal(t, "bob", session.User.Username)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockSettings, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, "alice")

	gomock.InOrder(
		mockGateway.EXPECT().
			Post(ctx, "/auth/login", models.LoginRequest{Username: "alice", Password: "secret"}).
			Return([]byte(`{"accessToken":"`+token+`"}`), nil),
		mockSettings.EXPECT().Set(ctx, "accessToken", token).Return(nil),
		mockGateway.EXPECT().SetToken(token),
	)

	session, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	assert.True(t, session.Authenticated())
	assert.Equal(t, "alice", session.User.Username)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, session, svc.Session())
}

func TestSessionService_Login_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().
		Post(ctx, "/auth/login", gomock.Any()).
		Return(nil, errors.New("Invalid username or password"))

	session, err := svc.Login(ctx, "alice", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.Contains(t, err.Error(), "Invalid username or password")
	assert.Equal(t, models.SessionUnauthenticated, session.State)
}

func TestSessionService_Login_EmptyTokenInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().
		Post(ctx, "/auth/login", gomock.Any()).
		Return([]byte(`{}`), nil)

	_, err := svc.Login(ctx, "alice", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestSessionService_Login_MalformedResponseBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().
		Post(ctx, "/auth/login", gomock.Any()).
		Return([]byte(`not json`), nil)

	_, err := svc.Login(ctx, "alice", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.Contains(t, err.Error(), "decode login response")
}

// Токен-непрозрачная строка: subject не достать, identity берём из введённого
// логина. Сессия всё равно аутентифицирована.
func TestSessionService_Login_OpaqueTokenFallsBackToTypedUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockSettings, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().
		Post(ctx, "/auth/login", gomock.Any()).
		Return([]byte(`{"accessToken":"opaque-blob"}`), nil)
	mockSettings.EXPECT().Set(ctx, "accessToken", "opaque-blob").Return(nil)
	mockGateway.EXPECT().SetToken("opaque-blob")

	session, err := svc.Login(ctx, "carol", "secret")
	require.NoError(t, err)
	assert.True(t, session.Authenticated())
	assert.Equal(t, "carol", session.User.Username)
}

func TestSessionService_Login_PersistFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockSettings, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, "alice")

	mockGateway.EXPECT().
		Post(ctx, "/auth/login", gomock.Any()).
		Return([]byte(`{"accessToken":"`+token+`"}`), nil)
	mockSettings.EXPECT().Set(ctx, "accessToken", token).Return(errors.New("disk full"))
	mockGateway.EXPECT().SetToken(token)

	session, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, session.Authenticated())
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestSessionService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().
		Post(ctx, "/auth/register", models.RegisterRequest{Name: "Alice", Username: "alice", Password: "secret"}).
		Return([]byte(`{"message":"User registered successfully"}`), nil)

	err := svc.Register(ctx, "Alice", "alice", "secret")
	require.NoError(t, err)

	// Регистрация не выдаёт сессию
	assert.False(t, svc.Session().Authenticated())
}

func TestSessionService_Register_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().
		Post(ctx, "/auth/register", gomock.Any()).
		Return(nil, errors.New("Username already exists"))

	err := svc.Register(ctx, "Bob", "bob", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.Contains(t, err.Error(), "Username already exists")
}

// ── Logout and forced logout ─────────────────────────────────────────────────

func TestSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockSettings, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, "alice")

	mockGateway.EXPECT().Post(ctx, "/auth/login", gomock.Any()).Return([]byte(`{"accessToken":"`+token+`"}`), nil)
	mockSettings.EXPECT().Set(ctx, "accessToken", token).Return(nil)
	mockGateway.EXPECT().SetToken(token)

	_, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	mockSettings.EXPECT().Delete(ctx, "accessToken").Return(nil)
	mockGateway.EXPECT().SetToken("")

	svc.Logout(ctx)

	session := svc.Session()
	assert.Equal(t, models.SessionUnauthenticated, session.State)
	assert.Empty(t, session.Token)
	assert.Nil(t, session.User)
}

// Хук, который шлюз дёргает на любом 401: стирается персистентный токен и
// сессия сбрасывается. Токен в самом шлюзе к этому моменту уже очищен.
func TestSessionService_ForcedLogoutOn401(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, mockSettings, hook := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, "alice")

	mockGateway.EXPECT().Post(ctx, "/auth/login", gomock.Any()).Return([]byte(`{"accessToken":"`+token+`"}`), nil)
	mockSettings.EXPECT().Set(ctx, "accessToken", token).Return(nil)
	mockGateway.EXPECT().SetToken(token)

	_, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	require.True(t, svc.Session().Authenticated())

	require.NotNil(t, *hook, "session service must register the unauthorized hook")

	mockSettings.EXPECT().Delete(gomock.Any(), "accessToken").Return(nil)

	(*hook)()

	assert.Equal(t, models.SessionUnauthenticated, svc.Session().State)
}
