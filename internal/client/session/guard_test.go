package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportlane/shopclient/internal/client/storage"
	"github.com/sportlane/shopclient/pkg/api"
)

// mockRefreshClient counts refresh calls and returns a canned pair
type mockRefreshClient struct {
	mu       sync.Mutex
	calls    atomic.Int32
	delay    time.Duration
	response *api.TokenResponse
	err      error
}

func (m *mockRefreshClient) RefreshToken(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	m.calls.Add(1)
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

// mockAuthStorage is an in-memory AuthStorage
type mockAuthStorage struct {
	mu   sync.Mutex
	auth *storage.AuthData

	saveErr error
}

func (m *mockAuthStorage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *auth
	m.auth = &cp
	return nil
}

func (m *mockAuthStorage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.auth == nil {
		return nil, storage.ErrAuthNotFound
	}
	cp := *m.auth
	return &cp, nil
}

func (m *mockAuthStorage) DeleteAuth(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.auth == nil {
		return storage.ErrAuthNotFound
	}
	m.auth = nil
	return nil
}

func (m *mockAuthStorage) IsAuthenticated(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.auth != nil, nil
}

func (m *mockAuthStorage) stored() *storage.AuthData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.auth
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// TestGuard_Token_Fresh checks that a fresh token is handed out without
// a refresh call
func TestGuard_Token_Fresh(t *testing.T) {
	freshToken := makeToken(t, time.Now().Add(15*time.Minute))
	client := &mockRefreshClient{}
	creds := &mockAuthStorage{}
	state := NewState()
	state.SetCredentials(&api.UserProfile{ID: "user-1"}, freshToken)

	guard := NewGuard(client, creds, state, testLogger())

	token, err := guard.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, freshToken, token)
	assert.Equal(t, int32(0), client.calls.Load())
}

// TestGuard_Token_ReadThrough checks that an empty session state is
// primed from storage before the freshness check
func TestGuard_Token_ReadThrough(t *testing.T) {
	freshToken := makeToken(t, time.Now().Add(15*time.Minute))
	client := &mockRefreshClient{}
	creds := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  freshToken,
		RefreshToken: "refresh-1",
	}}
	state := NewState()

	guard := NewGuard(client, creds, state, testLogger())

	token, err := guard.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, freshToken, token)
	assert.Equal(t, freshToken, state.AccessToken())
	assert.Equal(t, int32(0), client.calls.Load())
}

// TestGuard_Token_Refresh checks that a stale token triggers a refresh
// and the pair is replaced wholesale in storage and state
func TestGuard_Token_Refresh(t *testing.T) {
	staleToken := makeToken(t, time.Now().Add(10*time.Second))
	newToken := makeToken(t, time.Now().Add(15*time.Minute))

	client := &mockRefreshClient{response: &api.TokenResponse{
		AccessToken:  newToken,
		RefreshToken: "refresh-2",
	}}
	creds := &mockAuthStorage{auth: &storage.AuthData{
		UserID:       "user-1",
		AccessToken:  staleToken,
		RefreshToken: "refresh-1",
	}}
	state := NewState()
	state.SetCredentials(&api.UserProfile{ID: "user-1"}, staleToken)

	guard := NewGuard(client, creds, state, testLogger())

	token, err := guard.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, newToken, token)
	assert.Equal(t, int32(1), client.calls.Load())

	stored := creds.stored()
	require.NotNil(t, stored)
	assert.Equal(t, newToken, stored.AccessToken)
	assert.Equal(t, "refresh-2", stored.RefreshToken)
	assert.NotZero(t, stored.ExpiresAt)
	assert.Equal(t, "user-1", stored.UserID)

	assert.Equal(t, newToken, state.AccessToken())
	assert.True(t, state.IsAuthenticated())
}

// TestGuard_Token_ConcurrentRefresh checks that parallel callers with a
// stale token share one refresh exchange
func TestGuard_Token_ConcurrentRefresh(t *testing.T) {
	staleToken := makeToken(t, time.Now().Add(10*time.Second))
	newToken := makeToken(t, time.Now().Add(15*time.Minute))

	client := &mockRefreshClient{
		delay: 50 * time.Millisecond,
		response: &api.TokenResponse{
			AccessToken:  newToken,
			RefreshToken: "refresh-2",
		},
	}
	creds := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  staleToken,
		RefreshToken: "refresh-1",
	}}
	state := NewState()
	state.SetCredentials(&api.UserProfile{ID: "user-1"}, staleToken)

	guard := NewGuard(client, creds, state, testLogger())

	const callers = 5
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = guard.Token(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, newToken, tokens[i])
	}
	assert.Equal(t, int32(1), client.calls.Load(), "parallel callers must share one refresh")
}

// TestGuard_Token_SequentialAfterRefresh checks that a caller arriving
// after the refresh completed gets the fresh token without another call
func TestGuard_Token_SequentialAfterRefresh(t *testing.T) {
	staleToken := makeToken(t, time.Now().Add(10*time.Second))
	newToken := makeToken(t, time.Now().Add(15*time.Minute))

	client := &mockRefreshClient{response: &api.TokenResponse{
		AccessToken:  newToken,
		RefreshToken: "refresh-2",
	}}
	creds := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  staleToken,
		RefreshToken: "refresh-1",
	}}
	state := NewState()
	state.SetCredentials(&api.UserProfile{ID: "user-1"}, staleToken)

	guard := NewGuard(client, creds, state, testLogger())

	_, err := guard.Token(context.Background())
	require.NoError(t, err)

	token, err := guard.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, newToken, token)
	assert.Equal(t, int32(1), client.calls.Load())
}

// TestGuard_Token_RefreshFailure checks that a failed refresh
// terminates the session: credentials dropped, state cleared,
// ErrSessionExpired returned
func TestGuard_Token_RefreshFailure(t *testing.T) {
	staleToken := makeToken(t, time.Now().Add(10*time.Second))

	client := &mockRefreshClient{err: errors.New("refresh token revoked")}
	creds := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  staleToken,
		RefreshToken: "refresh-1",
	}}
	state := NewState()
	state.SetCredentials(&api.UserProfile{ID: "user-1"}, staleToken)

	guard := NewGuard(client, creds, state, testLogger())

	_, err := guard.Token(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, creds.stored())
	assert.False(t, state.IsAuthenticated())
	assert.Empty(t, state.AccessToken())
}

// TestGuard_Token_NoCredentials checks the stale-token-and-no-storage
// case
func TestGuard_Token_NoCredentials(t *testing.T) {
	client := &mockRefreshClient{}
	creds := &mockAuthStorage{}
	state := NewState()

	guard := NewGuard(client, creds, state, testLogger())

	_, err := guard.Token(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int32(0), client.calls.Load())
}

// TestGuard_Token_IncompletePair checks that a refresh response missing
// half the pair terminates the session instead of storing it
func TestGuard_Token_IncompletePair(t *testing.T) {
	staleToken := makeToken(t, time.Now().Add(10*time.Second))

	client := &mockRefreshClient{response: &api.TokenResponse{
		AccessToken: makeToken(t, time.Now().Add(15*time.Minute)),
		// RefreshToken missing
	}}
	creds := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  staleToken,
		RefreshToken: "refresh-1",
	}}
	state := NewState()
	state.SetCredentials(&api.UserProfile{ID: "user-1"}, staleToken)

	guard := NewGuard(client, creds, state, testLogger())

	_, err := guard.Token(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, creds.stored())
	assert.False(t, state.IsAuthenticated())
}

// TestGuard_Token_PersistFailureTolerated checks that a failing save
// does not fail the refresh; the in-memory pair stays usable
func TestGuard_Token_PersistFailureTolerated(t *testing.T) {
	staleToken := makeToken(t, time.Now().Add(10*time.Second))
	newToken := makeToken(t, time.Now().Add(15*time.Minute))

	client := &mockRefreshClient{response: &api.TokenResponse{
		AccessToken:  newToken,
		RefreshToken: "refresh-2",
	}}
	creds := &mockAuthStorage{
		auth: &storage.AuthData{
			AccessToken:  staleToken,
			RefreshToken: "refresh-1",
		},
		saveErr: errors.New("disk full"),
	}
	state := NewState()
	state.SetCredentials(&api.UserProfile{ID: "user-1"}, staleToken)

	guard := NewGuard(client, creds, state, testLogger())

	token, err := guard.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, newToken, token)
	assert.Equal(t, newToken, state.AccessToken())
}

// TestGuard_Unauthorized checks that a reported 401 terminates the
// session
func TestGuard_Unauthorized(t *testing.T) {
	freshToken := makeToken(t, time.Now().Add(15*time.Minute))
	client := &mockRefreshClient{}
	creds := &mockAuthStorage{auth: &storage.AuthData{
		AccessToken:  freshToken,
		RefreshToken: "refresh-1",
	}}
	state := NewState()
	state.SetCredentials(&api.UserProfile{ID: "user-1"}, freshToken)

	guard := NewGuard(client, creds, state, testLogger())

	guard.Unauthorized(context.Background())

	assert.Nil(t, creds.stored())
	assert.False(t, state.IsAuthenticated())
	assert.Empty(t, state.AccessToken())
}
