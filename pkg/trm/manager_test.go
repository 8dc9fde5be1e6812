package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/payment-service/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (trm.Manager, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return trm.NewManager(sqlx.NewDb(db, "postgres")), mock
}

func TestManager_Do(t *testing.T) {
	callbackErr := errors.New("callback failed")

	testCases := []struct {
		name     string
		callback func(ctx context.Context) error
		expect   func(mock sqlmock.Sqlmock)
		wantErr  error
	}{
		{
			name: "commit",
			callback: func(ctx context.Context) error {
				if trm.ExtractTx(ctx) == nil {
					return errors.New("no tx in context")
				}
				return nil
			},
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name:     "rollback on error",
			callback: func(context.Context) error { return callbackErr },
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: callbackErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, mock := newManager(t)
			tc.expect(mock)

			err := m.Do(context.Background(), tc.callback)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_DoJoinsOuterTx(t *testing.T) {
	m, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := m.Do(context.Background(), func(ctx context.Context) error {
		outer := trm.ExtractTx(ctx)
		return m.Do(ctx, func(ctx context.Context) error {
			assert.Same(t, outer, trm.ExtractTx(ctx))
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExtractTx_Empty(t *testing.T) {
	assert.Nil(t, trm.ExtractTx(context.Background()))
}
