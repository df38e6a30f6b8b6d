package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
)

const secret = "test-secret"

func newService(t *testing.T, now time.Time) (*auth.Service, *auth.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := auth.NewMockRepository(ctrl)
	svc := auth.NewService(repo, secret, 14*24*time.Hour).WithClock(func() time.Time { return now })

	return svc, repo
}

func TestService_Register(t *testing.T) {
	type testCase struct {
		name      string
		params    auth.RegisterParams
		setupMock func(m *auth.MockRepository)
		wantErr   error
	}

	valid := auth.RegisterParams{FirstName: " Ana ", LastName: "Gómez", Email: " Ana@Example.COM ", Password: "secret123"}

	tests := []testCase{
		{
			name:   "Success",
			params: valid,
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
					assert.Equal(t, "Ana", u.FirstName)
					assert.Equal(t, "ana@example.com", u.Email)
					assert.NotEqual(t, "secret123", u.PasswordHash)
					u.ID = 9

					return nil
				})
			},
		},
		{
			name:      "MissingName",
			params:    auth.RegisterParams{LastName: "G", Email: "a@b.co", Password: "secret123"},
			setupMock: func(*auth.MockRepository) {},
			wantErr:   auth.ErrInvalidInput,
		},
		{
			name:      "BadEmail",
			params:    auth.RegisterParams{FirstName: "A", LastName: "G", Email: "not-an-email", Password: "secret123"},
			setupMock: func(*auth.MockRepository) {},
			wantErr:   auth.ErrInvalidInput,
		},
		{
			name:      "ShortPassword",
			params:    auth.RegisterParams{FirstName: "A", LastName: "G", Email: "a@b.co", Password: "short"},
			setupMock: func(*auth.MockRepository) {},
			wantErr:   auth.ErrInvalidInput,
		},
		{
			name:   "Duplicate",
			params: valid,
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(auth.ErrEmailTaken)
			},
			wantErr: auth.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t, time.Now())
			tt.setupMock(repo)

			sess, err := svc.Register(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sess)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, sess.Token)

			id, err := svc.Verify(sess.Token)
			require.NoError(t, err)
			assert.Equal(t, int64(9), id)
		})
	}
}

func TestService_Login(t *testing.T) {
	svc, repo := newService(t, time.Now())

	var stored *auth.User

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
		u.ID = 4
		stored = u

		return nil
	})

	_, err := svc.Register(context.Background(), auth.RegisterParams{FirstName: "A", LastName: "G", Email: "a@b.co", Password: "secret123"})
	require.NoError(t, err)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "a@b.co").Return(stored, nil).Times(2)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@b.co").Return(nil, auth.ErrNotFound)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "down@b.co").Return(nil, errors.New("db down"))

	sess, err := svc.Login(context.Background(), "A@B.co", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(4), sess.User.ID)

	_, err = svc.Login(context.Background(), "a@b.co", "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@b.co", "secret123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "down@b.co", "secret123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_VerifyExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	svc, repo := newService(t, issuedAt)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
		u.ID = 1
		return nil
	})

	sess, err := svc.Register(context.Background(), auth.RegisterParams{FirstName: "A", LastName: "G", Email: "a@b.co", Password: "secret123"})
	require.NoError(t, err)

	later, _ := newService(t, issuedAt.Add(13*24*time.Hour))
	_, err = later.Verify(sess.Token)
	assert.NoError(t, err)

	expired, _ := newService(t, issuedAt.Add(15*24*time.Hour))
	_, err = expired.Verify(sess.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	other := auth.NewService(nil, "other-secret", time.Hour).WithClock(func() time.Time { return issuedAt })
	_, err = other.Verify(sess.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Verify("garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestUserIDContext(t *testing.T) {
	_, ok := auth.UserID(context.Background())
	assert.False(t, ok)

	id, ok := auth.UserID(auth.WithUserID(context.Background(), 12))
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)
}
