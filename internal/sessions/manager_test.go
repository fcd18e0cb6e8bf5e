package sessions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/van-rental-manager/internal/jwt"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(store Store) *Manager {
	return NewManager(store, jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Hour)), time.Hour, false)
}

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
	}
	return req
}

func TestManager_SaveThenLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	m := newTestManager(store)
	ctx := context.Background()

	sess := &models.Session{ID: "abc", UserID: 5}
	store.EXPECT().Set(gomock.Any(), sess).Return(nil)

	rr := httptest.NewRecorder()
	require.NoError(t, m.Save(ctx, rr, sess))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	store.EXPECT().Get(gomock.Any(), "abc").Return(&models.Session{ID: "abc", UserID: 5}, nil)

	loaded := m.Load(ctx, requestWithCookie(cookies[0].Value))
	assert.Equal(t, "abc", loaded.ID)
	assert.Equal(t, int64(5), loaded.UserID)
}

func TestManager_Load_FallsBackToAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validToken, err := jwt.New(jwt.WithSecretKey("test-secret")).Generate(context.Background(), "abc")
	require.NoError(t, err)
	forgedToken, err := jwt.New(jwt.WithSecretKey("other")).Generate(context.Background(), "abc")
	require.NoError(t, err)

	tests := []struct {
		name      string
		cookie    string
		mockSetup func(s *MockStore)
	}{
		{name: "no cookie"},
		{name: "garbage cookie", cookie: "not-a-token"},
		{name: "forged cookie", cookie: forgedToken},
		{
			name:   "expired in store",
			cookie: validToken,
			mockSetup: func(s *MockStore) {
				s.EXPECT().Get(gomock.Any(), "abc").Return(nil, nil)
			},
		},
		{
			name:   "store error",
			cookie: validToken,
			mockSetup: func(s *MockStore) {
				s.EXPECT().Get(gomock.Any(), "abc").Return(nil, errors.New("redis down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMockStore(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(store)
			}

			sess := newTestManager(store).Load(context.Background(), requestWithCookie(tt.cookie))
			require.NotNil(t, sess)
			assert.NotEmpty(t, sess.ID)
			assert.NotEqual(t, "abc", sess.ID)
			assert.False(t, sess.Authenticated())
		})
	}
}

func TestManager_Save_AssignsIDAndReportsStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	sess := &models.Session{}
	rr := httptest.NewRecorder()
	err := newTestManager(store).Save(context.Background(), rr, sess)

	assert.Error(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Empty(t, rr.Result().Cookies())
}

func TestManager_Renew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().Delete(gomock.Any(), "old").Return(nil)

	old := &models.Session{ID: "old", UserID: 1, Flashes: []models.Flash{{Category: "error", Message: "x"}}}
	fresh := newTestManager(store).Renew(context.Background(), old)

	assert.NotEqual(t, "old", fresh.ID)
	assert.False(t, fresh.Authenticated())
	assert.Empty(t, fresh.Flashes)
}

func TestManager_Destroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().Delete(gomock.Any(), "abc").Return(errors.New("redis down"))

	rr := httptest.NewRecorder()
	newTestManager(store).Destroy(context.Background(), rr, &models.Session{ID: "abc", UserID: 2})

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
