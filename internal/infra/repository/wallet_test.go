//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"auction-engine/internal/infra"
	"auction-engine/internal/infra/repository"
	sqlc "auction-engine/internal/infra/sqlc/generated"
	"auction-engine/tests/common/builder"
	repositorymock "auction-engine/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWalletRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.Wallets
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row converted",
			row:  builder.NewWalletBuilder(8).Funds(5000, 1200).BuildInfra(),
		},
		{
			name:       "error: no wallet",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database failure",
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: null balance column",
			row:        sqlc.Wallets{ID: 1, UserID: 8},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockWalletQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewWalletRepository(mockQueries)

			mockQueries.EXPECT().GetWalletByUserID(ctx, mockDB, int64(8)).Return(tc.row, tc.queryErr)

			w, err := repo.FindByUserID(ctx, mockDB, 8)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(8), w.UserID())
			assert.True(t, decimal.NewFromInt(5000).Equal(w.Balance()))
			assert.True(t, decimal.NewFromInt(1200).Equal(w.Locked()))
		})
	}
}

func TestWalletRepository_Save(t *testing.T) {
	ctx := context.Background()
	w := builder.NewWalletBuilder(8).Funds(5000, 1200).BuildDomain()

	t.Run("writes both balances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWalletQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().UpdateWalletBalances(ctx, mockDB, gomock.Cond(func(p sqlc.UpdateWalletBalancesParams) bool {
			return p.ID == w.ID() && p.Balance.Int.Int64() == 5000 && p.LockedBalance.Int.Int64() == 1200
		})).Return(nil)

		require.NoError(t, repository.NewWalletRepository(mockQueries).Save(ctx, mockDB, w))
	})

	t.Run("database failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWalletQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().UpdateWalletBalances(ctx, mockDB, gomock.Any()).Return(errors.New("boom"))

		err := repository.NewWalletRepository(mockQueries).Save(ctx, mockDB, w)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
