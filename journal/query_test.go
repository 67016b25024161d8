package journal

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/pnl"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestListNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	defer j.Close()

	instruments := []string{"AAPL", "MSFT", "TSLA"}
	dates := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	ids := make([]int64, len(instruments))
	for i, sym := range instruments {
		e := testEntry()
		e.Instrument = sym
		e.Date = dates[i]
		var err error
		ids[i], err = j.Create(ctx, e)
		require.NoError(t, err)
	}

	got, err := j.List(ctx)
	require.NoError(t, err)

	want := []TradeSummary{
		{ID: ids[2], Date: "2025-03-12", Instrument: "TSLA", NetPnL: d("96.5"), Commission: d("0.35")},
		{ID: ids[1], Date: "2025-03-11", Instrument: "MSFT", NetPnL: d("96.5"), Commission: d("0.35")},
		{ID: ids[0], Date: "2025-03-10", Instrument: "AAPL", NetPnL: d("96.5"), Commission: d("0.35")},
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestListIsRestartable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	defer j.Close()

	empty, err := j.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	tradeID, err := j.Create(ctx, testEntry())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		list, err := j.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, tradeID, list[0].ID)
	}

	require.NoError(t, j.Delete(ctx, tradeID))
	list, err := j.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetTrade(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	defer j.Close()

	expected := testEntry()
	tradeID, err := j.Create(ctx, expected)
	require.NoError(t, err)

	actual, err := j.Get(ctx, tradeID)
	require.NoError(t, err)

	assert.Equal(t, tradeID, actual.ID)
	assert.Len(t, actual.Ref, 26)
	assert.Equal(t, expected.Date, actual.Date)
	assert.Equal(t, expected.Time, actual.Time)
	assert.Equal(t, expected.Instrument, actual.Instrument)
	assert.Equal(t, expected.Session, actual.Session)
	assert.Equal(t, expected.SetupName, actual.SetupName)
	assert.Equal(t, pnl.Long, actual.Direction)
	assert.True(t, expected.EntryPrice.Equal(actual.EntryPrice))
	assert.True(t, expected.ExitPrice.Equal(actual.ExitPrice))
	assert.True(t, expected.PositionSize.Equal(actual.PositionSize))
	assert.True(t, expected.Commission.Equal(actual.Commission))
	require.True(t, actual.AccountSize.Valid)
	assert.True(t, d("25000").Equal(actual.AccountSize.Decimal))
	require.True(t, actual.StopLoss.Valid)
	assert.True(t, d("98").Equal(actual.StopLoss.Decimal))
	assert.True(t, d("1").Equal(actual.Multiplier))
	assert.True(t, d("96.5").Equal(actual.NetPnL))
	assert.Equal(t, expected.Notes, actual.Notes)
}

func TestGetTradeOptionalFieldsNull(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	defer j.Close()

	e := testEntry()
	e.AccountSize = decimal.NullDecimal{}
	e.StopLoss = decimal.NullDecimal{}
	tradeID, err := j.Create(ctx, e)
	require.NoError(t, err)

	got, err := j.Get(ctx, tradeID)
	require.NoError(t, err)
	assert.False(t, got.AccountSize.Valid)
	assert.False(t, got.StopLoss.Valid)
}

func TestGetTradeNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestAllOldestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	defer j.Close()

	for _, sym := range []string{"AAPL", "MSFT"} {
		e := testEntry()
		e.Instrument = sym
		_, err := j.Create(ctx, e)
		require.NoError(t, err)
	}

	all, err := j.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "AAPL", all[0].Instrument)
	assert.Equal(t, "MSFT", all[1].Instrument)
	assert.Less(t, all[0].Ref, all[1].Ref)
}

func TestSameEntrySameRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	defer j.Close()

	first, err := j.Create(ctx, testEntry())
	require.NoError(t, err)
	second, err := j.Create(ctx, testEntry())
	require.NoError(t, err)

	a, err := j.Get(ctx, first)
	require.NoError(t, err)
	b, err := j.Get(ctx, second)
	require.NoError(t, err)

	assert.NotEqual(t, a.Ref, b.Ref)
	if diff := cmp.Diff(a, b, decimalEqual, cmpopts.IgnoreFields(Trade{}, "ID", "Ref")); diff != "" {
		t.Errorf("records differ beyond identity (-first +second):\n%s", diff)
	}
}

func TestComputeStats(t *testing.T) {
	t.Parallel()

	rows := []TradeSummary{
		{NetPnL: d("100")},
		{NetPnL: d("-40")},
		{NetPnL: d("60")},
		{NetPnL: d("-10")},
		{NetPnL: d("0")},
	}

	got := ComputeStats(rows)

	assert.Equal(t, 5, got.Trades)
	assert.Equal(t, 2, got.Wins)
	assert.Equal(t, 2, got.Losses)
	assert.True(t, d("110").Equal(got.NetPnL))
	assert.True(t, d("160").Equal(got.GrossProfit))
	assert.True(t, d("50").Equal(got.GrossLoss))
	assert.True(t, d("0.4").Equal(got.WinRate))
	assert.True(t, d("3.2").Equal(got.ProfitFactor))
}

func TestComputeStatsEmpty(t *testing.T) {
	t.Parallel()

	got := ComputeStats(nil)
	assert.Equal(t, 0, got.Trades)
	assert.True(t, got.WinRate.IsZero())
	assert.True(t, got.ProfitFactor.IsZero())
}

func TestStatsFromLedger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	defer j.Close()

	win := testEntry()
	loss := testEntry()
	loss.ExitPrice = d("95") // -50 - 3.5

	_, err := j.Create(ctx, win)
	require.NoError(t, err)
	_, err = j.Create(ctx, loss)
	require.NoError(t, err)

	s, err := j.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Trades)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.True(t, d("43").Equal(s.NetPnL), "net %s", s.NetPnL)
}
