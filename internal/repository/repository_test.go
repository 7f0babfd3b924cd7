package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"jigarafy/backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return gormDB, mock
}

var userColumns = []string{"id", "created_at", "updated_at", "full_name", "email", "password_hash", "role", "is_onboarded"}

func TestUserRepository_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow(7, time.Now(), time.Now(), "Ada", "ada@example.com", "hash", "user", true))
			},
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			tt.mockSetup(mock)

			user, err := NewUserRepository(db).FindByID(context.Background(), 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(7), user.ID)
				assert.Equal(t, "Ada", user.FullName)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_AreFriends(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "user_friends" WHERE user_id = $1 AND friend_id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := NewUserRepository(db).AreFriends(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CountByRole(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT role, count(*) AS count FROM "users" GROUP BY "role"`)).
		WillReturnRows(sqlmock.NewRows([]string{"role", "count"}).
			AddRow("user", 4).
			AddRow("admin", 1))

	counts, err := NewUserRepository(db).CountByRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts[models.RoleUser])
	assert.Equal(t, int64(1), counts[models.RoleAdmin])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := NewUserRepository(db).Update(context.Background(), 99, map[string]any{"bio": "hi"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRequestRepository_Create_DuplicatePending(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "friend_requests"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := NewFriendRequestRepository(db).Create(context.Background(), &models.FriendRequest{
		SenderID:    1,
		RecipientID: 2,
		Status:      models.StatusPending,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRequestRepository_PendingBetween(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "friend_requests" WHERE status = $1 AND ((sender_id = $2 AND recipient_id = $3) OR (sender_id = $4 AND recipient_id = $5))`)).
		WithArgs(models.StatusPending, 1, 2, 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	pending, err := NewFriendRequestRepository(db).PendingBetween(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, pending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRequestRepository_MarkAccepted_NoPendingRow(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "friend_requests" SET "status"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := NewFriendRequestRepository(db).MarkAccepted(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRequestRepository_FindByIDForUpdate(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "friend_requests" WHERE "friend_requests"."id" = $1`) + `.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_id", "recipient_id", "status"}).
			AddRow(5, 1, 2, "pending"))

	request, err := NewFriendRequestRepository(db).FindByIDForUpdate(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(2), request.RecipientID)
	assert.Equal(t, models.StatusPending, request.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Transaction_RollsBackCascadeWhenUserMissing(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "friend_requests" WHERE sender_id = $1 OR recipient_id = $2`)).
		WithArgs(9, 9).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "user_friends" WHERE user_id = $1 OR friend_id = $2`)).
		WithArgs(9, 9).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	store := NewStore(db)
	err := store.Transaction(context.Background(), func(tx Store) error {
		if _, err := tx.FriendRequests().DeleteForUser(context.Background(), 9); err != nil {
			return err
		}
		if _, err := tx.Users().RemoveFromAllFriends(context.Background(), 9); err != nil {
			return err
		}
		return tx.Users().Delete(context.Background(), 9)
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Recommended(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE .*id <> \$1 AND is_onboarded = \$2.*id NOT IN \(SELECT "?friend_id"? FROM "user_friends" WHERE user_id = \$3\)`).
		WithArgs(7, true, 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE .*id NOT IN \(SELECT "?friend_id"? FROM "user_friends" WHERE user_id = \$3\) ORDER BY created_at DESC LIMIT (\$4|10) OFFSET (\$5|10)`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, time.Now(), time.Now(), "Grace", "grace@example.com", "hash", "user", true).
			AddRow(4, time.Now(), time.Now(), "Linus", "linus@example.com", "hash", "user", true))

	page, err := NewUserRepository(db).Recommended(context.Background(), 7, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Grace", page.Items[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
