package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/flocknet/follow-service/internal/models"
)

func TestPostgresUserRepository_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepository(db)

	user := &models.User{Handle: "alice", DisplayName: "Alice Zhang"}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WithArgs(sqlmock.AnyArg(), "alice", "Alice Zhang", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID, "repository assigns the user ID")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_GetUserByID(t *testing.T) {
	id := uuid.NewString()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		rows := sqlmock.NewRows([]string{"id", "handle", "display_name", "created_at"}).
			AddRow(id, "alice", "Alice Zhang", time.Now())
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(rows)

		user, err := repo.GetUserByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "alice", user.Handle)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgresUserRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "handle", "display_name", "created_at"}))

		_, err := repo.GetUserByID(context.Background(), id)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestPostgresUserRepository_GetUserByHandle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepository(db)

	id := uuid.NewString()
	rows := sqlmock.NewRows([]string{"id", "handle", "display_name", "created_at"}).
		AddRow(id, "bob", "Bob Okafor", time.Now())
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE handle = \$1`).
		WithArgs("bob", 1).
		WillReturnRows(rows)

	user, err := repo.GetUserByHandle(context.Background(), "bob")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}

func TestPostgresUserRepository_UserExists(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{name: "present", count: 1, want: true},
		{name: "absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPostgresUserRepository(db)

			mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
				WithArgs(id).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.UserExists(context.Background(), id)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostgresUserRepository_ListUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "handle", "display_name", "created_at"}).
		AddRow(uuid.NewString(), "alice", "Alice Zhang", time.Now()).
		AddRow(uuid.NewString(), "bob", "Bob Okafor", time.Now())
	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY handle ASC`).
		WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Handle)
	assert.Equal(t, "bob", users[1].Handle)
}
