package postgres

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT * FROM "public"."pet_care"`).
		WillReturnRows(sqlmock.NewRows([]string{"Pet Type", "Times Per Day", "Image Path"}).
			AddRow("Dog", int64(2), nil).
			AddRow([]byte("Cat"), 3.5, "cat.png"))

	headers, rows, err := ReadTable(context.Background(), db, "public.pet_care")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pet Type", "Times Per Day", "Image Path"}, headers)
	assert.Equal(t, [][]string{
		{"Dog", "2", ""},
		{"Cat", "3.5", "cat.png"},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadTable_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New(`relation "pet_facts" does not exist`)
	mock.ExpectQuery(`SELECT * FROM "pet_facts"`).WillReturnError(boom)

	_, _, err = ReadTable(context.Background(), db, "pet_facts")
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSplitRef(t *testing.T) {
	dsn, table, err := SplitRef("postgres://pets@localhost:5432/care?sslmode=disable&table=pet_care")
	require.NoError(t, err)
	assert.Equal(t, "pet_care", table)

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.False(t, u.Query().Has("table"))

	_, _, err = SplitRef("postgres://localhost/care")
	assert.ErrorIs(t, err, ErrTableRequired)
}

func TestIsRef(t *testing.T) {
	assert.True(t, IsRef("postgres://localhost/db?table=x"))
	assert.True(t, IsRef("PostgreSQL://localhost/db?table=x"))
	assert.False(t, IsRef("Pet_Care_Data.xlsx"))
	assert.False(t, IsRef("https://example.com/pets.csv"))
}
