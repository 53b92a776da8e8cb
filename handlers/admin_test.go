package handlers

import (
	"testing"
	"time"

	"food-order-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteOrdersXLSX(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "o1", UserID: "u1", Owner: "ann", Restaurant: "Luigi's", Food: "pizza", Drink: "cola", CreatedAt: created, UpdatedAt: created},
		{ID: "o2", UserID: "u2", Owner: "bob", Restaurant: "Wok", Food: "noodles", CreatedAt: created, UpdatedAt: created},
	}

	buf, err := writeOrdersXLSX(orders)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{exportSheet}, f.GetSheetList())
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Owner", "User ID", "Restaurant", "Food", "Drink", "Created At", "Updated At"}, rows[0])
	assert.Equal(t, []string{"o1", "ann", "u1", "Luigi's", "pizza", "cola", "2024-03-01T12:00:00Z", "2024-03-01T12:00:00Z"}, rows[1])
	assert.Equal(t, "o2", rows[2][0])
	assert.Equal(t, "Wok", rows[2][3])
}

func TestWriteOrdersXLSX_Empty(t *testing.T) {
	buf, err := writeOrdersXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
