package store_test

import (
	"context"
	"testing"

	"formdesk/core/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormStore_LoadAll(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "message", "created_at"}).
		AddRow(int64(1), "Ada", "ada@example.com", "", "", "2024-01-01T00:00:00Z").
		AddRow(int64(2), "Grace", "grace@example.com", "555-0101", "hi", "2024-01-02T00:00:00Z")
	mock.ExpectQuery("SELECT(.*)submissions(.*)ORDER BY id asc").WillReturnRows(rows)

	subs, err := s.LoadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "Ada", subs[0].Name)
	assert.Equal(t, int64(2), subs[1].ID)
	assert.Equal(t, "555-0101", subs[1].Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_LoadAll_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	mock.ExpectQuery(".*").WillReturnError(assert.AnError)

	subs, err := s.LoadAll(context.Background())

	assert.Error(t, err)
	assert.Nil(t, subs)
}

func TestGormStore_AppendOne(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO(.*)submissions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	sub := store.Submission{ID: 1, Name: "Ada", Email: "ada@example.com", CreatedAt: "2024-01-01T00:00:00Z"}
	err := s.AppendOne(context.Background(), sub)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_AppendOne_InsertError(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.NewGormStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO(.*)submissions").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	sub := store.Submission{ID: 1, Name: "Ada", Email: "ada@example.com"}
	err := s.AppendOne(context.Background(), sub)

	assert.Error(t, err)
}
