package journal

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVHeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, CSVHeader, rows[0])
}

func TestWriteCSVRows(t *testing.T) {
	t.Parallel()

	e := testEntry()
	e.StopLoss = decimal.NullDecimal{}
	e.Notes.Context = "gap up, then fade"
	trade := Trade{ID: 7, Ref: "01JPA0000000000000000000AB", NetPnL: d("96.5"), Entry: e}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Trade{trade}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := map[string]string{}
	for i, col := range CSVHeader {
		row[col] = rows[1][i]
	}

	assert.Equal(t, "7", row["id"])
	assert.Equal(t, "01JPA0000000000000000000AB", row["ref"])
	assert.Equal(t, "AAPL", row["instrument"])
	assert.Equal(t, "25000", row["account_size"])
	assert.Equal(t, "", row["stop_loss"])
	assert.Equal(t, "Long", row["direction"])
	assert.Equal(t, "96.5", row["pnl_net"])
	assert.Equal(t, "0.35", row["commission"])
	assert.Equal(t, "1", row["multiplier"])
	assert.Equal(t, "gap up, then fade", row["context"])
	assert.Equal(t, "none", row["distractions"])
}
