package sessionrepo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/go-petr/pet-invest/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "user_id", "refresh_token", "user_agent", "client_ip", "is_blocked", "expires_at", "created_at",
}

func randomSession() domain.Session {
	now := time.Now().UTC().Truncate(time.Second)

	return domain.Session{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		RefreshToken: randompkg.String(32),
		UserAgent:    "Mozilla/5.0",
		ClientIP:     "10.0.0.1",
		ExpiresAt:    now.Add(24 * time.Hour),
		CreatedAt:    now,
	}
}

func sessionRow(s domain.Session) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		s.ID.String(), s.UserID.String(), s.RefreshToken, s.UserAgent, s.ClientIP, s.IsBlocked, s.ExpiresAt, s.CreatedAt,
	)
}

func TestCreate(t *testing.T) {
	want := randomSession()

	arg := domain.CreateSessionParams{
		ID:           want.ID,
		UserID:       want.UserID,
		RefreshToken: want.RefreshToken,
		UserAgent:    want.UserAgent,
		ClientIP:     want.ClientIP,
		ExpiresAt:    want.ExpiresAt,
	}

	testCases := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "OK",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO sessions`).
					WithArgs(arg.ID, arg.UserID, arg.RefreshToken, arg.UserAgent, arg.ClientIP, false, arg.ExpiresAt).
					WillReturnRows(sessionRow(want))
			},
		},
		{
			name: "UserNotFound",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO sessions`).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "sessions_user_id_fkey"})
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "StorageError",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO sessions`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: errorspkg.ErrInternal,
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
				require.Empty(t, got)
			} else {
				require.NoError(t, err)

				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Create() mismatch (-want +got):\n%s", diff)
				}
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGet(t *testing.T) {
	want := randomSession()

	testCases := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "OK",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM sessions WHERE id = \$1`).WithArgs(want.ID).WillReturnRows(sessionRow(want))
			},
		},
		{
			name: "NotFound",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM sessions WHERE id = \$1`).WithArgs(want.ID).WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrSessionNotFound,
		},
		{
			name: "StorageError",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM sessions WHERE id = \$1`).WithArgs(want.ID).WillReturnError(sql.ErrConnDone)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tc.setup(mock)

			got, err := NewRepoPGS(db).Get(context.Background(), want.ID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)

				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Get() mismatch (-want +got):\n%s", diff)
				}
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
