package contract_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

func TestService_List(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *contract.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *contract.MockRepository) {
				m.EXPECT().
					ListContracts(gomock.Any()).
					Return([]*contract.Contract{{ID: "C-1"}, {ID: "C-2"}}, nil)
			},
			wantLen: 2,
		},
		{
			name: "Error",
			setupMock: func(m *contract.MockRepository) {
				m.EXPECT().
					ListContracts(gomock.Any()).
					Return(nil, errors.New("backend down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := contract.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := contract.NewService(repo).List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    contract.CreateParams
		setupMock func(m *contract.MockRepository)
		wantID    string
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: validParams(),
			setupMock: func(m *contract.MockRepository) {
				m.EXPECT().CreateContract(gomock.Any(), validParams()).Return("C-42", nil)
			},
			wantID: "C-42",
		},
		{
			name:      "ValidationSkipsRepository",
			params:    contract.CreateParams{OwnerName: "only owner"},
			setupMock: func(*contract.MockRepository) {},
			wantErr:   contract.ErrValidation,
		},
		{
			name:   "RepoError",
			params: validParams(),
			setupMock: func(m *contract.MockRepository) {
				m.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return("", errBackend)
			},
			wantErr: errBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := contract.NewMockRepository(ctrl)
			tt.setupMock(repo)

			id, err := contract.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, id)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

var errBackend = errors.New("backend down")

func TestService_EndingIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	repo := contract.NewMockRepository(ctrl)
	repo.EXPECT().ListContracts(gomock.Any()).Return([]*contract.Contract{
		{ID: "C-1", EndDate: day(2026, 12, 16)},
		{ID: "C-2", EndDate: day(2026, 12, 17)},
		{ID: "C-3"},
		{ID: "C-4", EndDate: day(2026, 12, 16)},
	}, nil)

	svc := contract.NewService(repo).WithClock(func() time.Time { return now })

	got, err := svc.EndingIn(context.Background(), 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"C-1", "C-4"}, ids(got))
}

func TestFallbackRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := contract.NewMockRepository(ctrl)
	fallback := contract.NewMockRepository(ctrl)
	repo := &contract.FallbackRepository{Primary: primary, Fallback: fallback}

	primary.EXPECT().ListContracts(gomock.Any()).Return(nil, errBackend)
	fallback.EXPECT().ListContracts(gomock.Any()).Return([]*contract.Contract{{ID: "DEMO"}}, nil)

	got, err := repo.ListContracts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"DEMO"}, ids(got))

	primary.EXPECT().ListContracts(gomock.Any()).Return([]*contract.Contract{{ID: "C-1"}}, nil)

	got, err = repo.ListContracts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"C-1"}, ids(got))

	primary.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return("", errBackend)

	_, err = repo.CreateContract(context.Background(), validParams())
	assert.ErrorIs(t, err, errBackend)
}
