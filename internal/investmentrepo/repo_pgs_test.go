package investmentrepo

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	lockBalancePattern    = `SELECT balance FROM users WHERE id = \$1 FOR UPDATE`
	lockInvestmentPattern = `FROM investments WHERE id = \$1 FOR UPDATE`
	insertPattern         = `INSERT INTO investments`
	setStatusPattern      = `UPDATE investments SET status = \$2`
	adjustBalancePattern  = `UPDATE users SET balance = balance \+ \$1`
)

var columns = []string{
	"id", "user_id", "product_id", "amount", "expected_return",
	"invested_at", "maturity_date", "status", "notification_read",
}

func investmentRows(items ...domain.Investment) *sqlmock.Rows {
	rows := sqlmock.NewRows(columns)

	for _, i := range items {
		rows.AddRow(
			i.ID.String(), i.UserID.String(), i.ProductID.String(), i.Amount.String(), i.ExpectedReturn.String(),
			i.InvestedAt, i.MaturityDate, string(i.Status), i.NotificationRead,
		)
	}

	return rows
}

func balanceRows(balance string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"balance"}).AddRow(balance)
}

func testInvestment(userID uuid.UUID, status domain.InvestmentStatus) domain.Investment {
	investedAt := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	return domain.Investment{
		ID:             uuid.New(),
		UserID:         userID,
		ProductID:      uuid.New(),
		Amount:         decimal.NewFromInt(2000),
		ExpectedReturn: decimal.NewFromInt(2240),
		InvestedAt:     investedAt,
		MaturityDate:   domain.MaturityDate(investedAt, 12),
		Status:         status,
	}
}

func TestCreate(t *testing.T) {
	userID := uuid.New()
	inv := testInvestment(userID, domain.StatusActive)

	arg := domain.CreateInvestmentParams{
		UserID:         userID,
		ProductID:      inv.ProductID,
		Amount:         inv.Amount,
		ExpectedReturn: inv.ExpectedReturn,
		MaturityDate:   inv.MaturityDate,
	}

	testCases := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		wantBalance decimal.Decimal
		wantErr     error
	}{
		{
			name: "OK",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WithArgs(userID).WillReturnRows(balanceRows("10000"))
				mock.ExpectQuery(insertPattern).
					WithArgs(userID, inv.ProductID, inv.Amount, inv.ExpectedReturn, inv.MaturityDate).
					WillReturnRows(investmentRows(inv))
				mock.ExpectQuery(adjustBalancePattern).
					WithArgs(inv.Amount.Neg(), userID).
					WillReturnRows(balanceRows("8000"))
				mock.ExpectCommit()
			},
			wantBalance: decimal.NewFromInt(8000),
		},
		{
			name: "InsufficientBalance",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WithArgs(userID).WillReturnRows(balanceRows("1999.99"))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrInsufficientBalance,
		},
		{
			name: "UserNotFound",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WithArgs(userID).WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "BeginFails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			wantErr: domain.ErrTransactionFailed,
		},
		{
			name: "LockFails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WillReturnError(errors.New("lock timeout"))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrTransactionFailed,
		},
		{
			// The position write fails after the balance check: no debit is attempted.
			name: "InsertFails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WithArgs(userID).WillReturnRows(balanceRows("10000"))
				mock.ExpectQuery(insertPattern).WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrTransactionFailed,
		},
		{
			// The position is written but the debit fails: the insert is rolled back.
			name: "DebitFails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WithArgs(userID).WillReturnRows(balanceRows("10000"))
				mock.ExpectQuery(insertPattern).WillReturnRows(investmentRows(inv))
				mock.ExpectQuery(adjustBalancePattern).WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrTransactionFailed,
		},
		{
			name: "CommitFails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WithArgs(userID).WillReturnRows(balanceRows("10000"))
				mock.ExpectQuery(insertPattern).WillReturnRows(investmentRows(inv))
				mock.ExpectQuery(adjustBalancePattern).WillReturnRows(balanceRows("8000"))
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			wantErr: domain.ErrTransactionFailed,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tc.setup(mock)

			got, err := NewRepoPGS(db).Create(context.Background(), arg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Equal(t, uuid.Nil, got.Investment.ID)
			} else {
				require.NoError(t, err)
				require.Equal(t, inv.ID, got.Investment.ID)
				require.Equal(t, domain.StatusActive, got.Investment.Status)
				require.True(t, tc.wantBalance.Equal(got.Balance))
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCancel(t *testing.T) {
	userID := uuid.New()
	active := testInvestment(userID, domain.StatusActive)

	cancelled := active
	cancelled.Status = domain.StatusCancelled

	matured := active
	matured.Status = domain.StatusMatured

	foreign := testInvestment(uuid.New(), domain.StatusActive)
	foreign.ID = active.ID

	testCases := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		wantBalance decimal.Decimal
		wantErr     error
	}{
		{
			name: "OK",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WithArgs(userID).WillReturnRows(balanceRows("8000"))
				mock.ExpectQuery(lockInvestmentPattern).WithArgs(active.ID).WillReturnRows(investmentRows(active))
				mock.ExpectQuery(setStatusPattern).
					WithArgs(active.ID, domain.StatusCancelled).
					WillReturnRows(investmentRows(cancelled))
				mock.ExpectQuery(adjustBalancePattern).
					WithArgs(active.Amount, userID).
					WillReturnRows(balanceRows("10000"))
				mock.ExpectCommit()
			},
			wantBalance: decimal.NewFromInt(10000),
		},
		{
			name: "NotFound",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WillReturnRows(balanceRows("8000"))
				mock.ExpectQuery(lockInvestmentPattern).WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrInvestmentNotFound,
		},
		{
			name: "AccessDenied",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WillReturnRows(balanceRows("8000"))
				mock.ExpectQuery(lockInvestmentPattern).WillReturnRows(investmentRows(foreign))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrAccessDenied,
		},
		{
			name: "AlreadyCancelled",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WillReturnRows(balanceRows("10000"))
				mock.ExpectQuery(lockInvestmentPattern).WillReturnRows(investmentRows(cancelled))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrInvalidState,
		},
		{
			name: "Matured",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WillReturnRows(balanceRows("8000"))
				mock.ExpectQuery(lockInvestmentPattern).WillReturnRows(investmentRows(matured))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrInvalidState,
		},
		{
			name: "StatusUpdateFails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WillReturnRows(balanceRows("8000"))
				mock.ExpectQuery(lockInvestmentPattern).WillReturnRows(investmentRows(active))
				mock.ExpectQuery(setStatusPattern).WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrTransactionFailed,
		},
		{
			// The status flip is rolled back together with the failed credit.
			name: "CreditFails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockBalancePattern).WillReturnRows(balanceRows("8000"))
				mock.ExpectQuery(lockInvestmentPattern).WillReturnRows(investmentRows(active))
				mock.ExpectQuery(setStatusPattern).WillReturnRows(investmentRows(cancelled))
				mock.ExpectQuery(adjustBalancePattern).WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrTransactionFailed,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tc.setup(mock)

			got, err := NewRepoPGS(db).Cancel(context.Background(), active.ID, userID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, domain.StatusCancelled, got.Investment.Status)
				require.True(t, tc.wantBalance.Equal(got.Balance))
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCancelMessageNamesStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := uuid.New()
	inv := testInvestment(userID, domain.StatusMatured)

	mock.ExpectBegin()
	mock.ExpectQuery(lockBalancePattern).WillReturnRows(balanceRows("0"))
	mock.ExpectQuery(lockInvestmentPattern).WillReturnRows(investmentRows(inv))
	mock.ExpectRollback()

	_, err = NewRepoPGS(db).Cancel(context.Background(), inv.ID, userID)
	require.EqualError(t, err, "invalid investment state: investment is matured")
}

func TestGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	inv := testInvestment(uuid.New(), domain.StatusActive)

	mock.ExpectQuery(`FROM investments WHERE id = \$1`).WithArgs(inv.ID).WillReturnRows(investmentRows(inv))
	mock.ExpectQuery(`FROM investments WHERE id = \$1`).WithArgs(inv.ID).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`FROM investments WHERE id = \$1`).WithArgs(inv.ID).WillReturnError(sql.ErrConnDone)

	repo := NewRepoPGS(db)

	got, err := repo.Get(context.Background(), inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.UserID, got.UserID)
	require.True(t, inv.Amount.Equal(got.Amount))
	require.Equal(t, inv.MaturityDate, got.MaturityDate)

	_, err = repo.Get(context.Background(), inv.ID)
	require.ErrorIs(t, err, domain.ErrInvestmentNotFound)

	_, err = repo.Get(context.Background(), inv.ID)
	require.ErrorIs(t, err, errorspkg.ErrInternal)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := uuid.New()
	i1 := testInvestment(userID, domain.StatusActive)
	i2 := testInvestment(userID, domain.StatusActive)

	mock.ExpectQuery(`FROM investments WHERE user_id = \$1`).
		WithArgs(userID, "active", 10, 0).
		WillReturnRows(investmentRows(i1, i2))

	got, err := NewRepoPGS(db).List(context.Background(), domain.ListInvestmentsParams{
		UserID: userID,
		Status: domain.StatusActive,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, i1.ID, got[0].ID)
	require.Equal(t, i2.ID, got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkNotificationRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := uuid.New()
	inv := testInvestment(userID, domain.StatusMatured)
	inv.NotificationRead = true

	mock.ExpectQuery(`UPDATE investments SET notification_read = true`).
		WithArgs(inv.ID, userID).
		WillReturnRows(investmentRows(inv))
	mock.ExpectQuery(`UPDATE investments SET notification_read = true`).
		WillReturnError(sql.ErrNoRows)

	repo := NewRepoPGS(db)

	got, err := repo.MarkNotificationRead(context.Background(), inv.ID, userID)
	require.NoError(t, err)
	require.True(t, got.NotificationRead)

	_, err = repo.MarkNotificationRead(context.Background(), inv.ID, userID)
	require.ErrorIs(t, err, domain.ErrInvestmentNotFound)
}

func TestMarkMatured(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	today := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE investments SET status = 'matured', notification_read = false WHERE status = 'active' AND maturity_date < \$1`).
		WithArgs(today).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := NewRepoPGS(db).MarkMatured(context.Background(), today)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
