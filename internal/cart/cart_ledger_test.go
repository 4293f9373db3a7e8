package cart_test

import (
	"testing"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/cart"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price, mrp int64) catalog.Product {
	return catalog.Product{
		ID:            id,
		Name:          "Product " + id,
		Brand:         "BabyHug",
		Price:         price,
		OriginalPrice: mrp,
		InStock:       true,
	}
}

func newTestLedger() *cart.Ledger {
	return cart.NewLedger(pricing.NewEngine(pricing.DefaultConfig()))
}

// assertInvariant checks the cached totals against a fresh sum over the
// lines after every mutation.
func assertInvariant(t *testing.T, l *cart.Ledger) {
	t.Helper()
	items := 0
	var price int64
	for _, line := range l.Lines() {
		items += line.Quantity
		price += int64(line.Quantity) * line.Product.Price
	}
	assert.Equal(t, items, l.TotalItems())
	assert.Equal(t, price, l.TotalPrice())
}

func TestLedger_AddLine(t *testing.T) {
	t.Run("appends_new_line", func(t *testing.T) {
		l := newTestLedger()

		id, err := l.AddLine(testProduct("gp001", 449, 699), 2, "3-6M", "Pink")
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		lines := l.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 2, l.TotalItems())
		assert.Equal(t, int64(898), l.TotalPrice())
		assertInvariant(t, l)
	})

	t.Run("merges_identical_variant", func(t *testing.T) {
		l := newTestLedger()
		p := testProduct("gp006", 999, 1599)

		first, err := l.AddLine(p, 1, "M", "Red")
		require.NoError(t, err)
		second, err := l.AddLine(p, 2, "M", "Red")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		lines := l.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
		assertInvariant(t, l)
	})

	t.Run("different_size_gets_own_line", func(t *testing.T) {
		l := newTestLedger()
		p := testProduct("gp006", 999, 1599)

		_, err := l.AddLine(p, 1, "M", "Red")
		require.NoError(t, err)
		_, err = l.AddLine(p, 1, "L", "Red")
		require.NoError(t, err)

		assert.Len(t, l.Lines(), 2)
		assert.Equal(t, 2, l.TotalItems())
		assertInvariant(t, l)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		l := newTestLedger()

		_, err := l.AddLine(testProduct("gp001", 449, 699), 0, "", "")
		assert.ErrorIs(t, err, cart.ErrInvalidQty)

		_, err = l.AddLine(testProduct("gp001", 449, 699), -3, "", "")
		assert.ErrorIs(t, err, cart.ErrInvalidQty)

		assert.Empty(t, l.Lines())
	})
}

func TestLedger_SetQuantity(t *testing.T) {
	t.Run("updates_in_place", func(t *testing.T) {
		l := newTestLedger()
		id, _ := l.AddLine(testProduct("gp001", 449, 699), 1, "", "")

		require.NoError(t, l.SetQuantity(id, 5))

		assert.Equal(t, 5, l.TotalItems())
		assert.Equal(t, int64(2245), l.TotalPrice())
		assertInvariant(t, l)
	})

	t.Run("zero_removes_line", func(t *testing.T) {
		l := newTestLedger()
		id, _ := l.AddLine(testProduct("gp001", 449, 699), 3, "", "")

		require.NoError(t, l.SetQuantity(id, 0))

		assert.Empty(t, l.Lines())
		assert.Equal(t, 0, l.TotalItems())
		assert.Equal(t, int64(0), l.TotalPrice())
	})

	t.Run("unknown_line_reports_not_found", func(t *testing.T) {
		l := newTestLedger()
		err := l.SetQuantity("no-such-line", 2)
		assert.ErrorIs(t, err, cart.ErrLineNotFound)
	})
}

func TestLedger_RemoveLine(t *testing.T) {
	t.Run("removes_existing_line", func(t *testing.T) {
		l := newTestLedger()
		id, _ := l.AddLine(testProduct("gp001", 449, 699), 1, "", "")
		keep, _ := l.AddLine(testProduct("gp007", 549, 799), 2, "", "")

		l.RemoveLine(id)

		lines := l.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, keep, lines[0].ID)
		assertInvariant(t, l)
	})

	t.Run("second_remove_is_noop", func(t *testing.T) {
		l := newTestLedger()
		id, _ := l.AddLine(testProduct("gp001", 449, 699), 1, "", "")

		l.RemoveLine(id)
		before := l.Lines()
		l.RemoveLine(id)

		assert.Equal(t, before, l.Lines())
		assertInvariant(t, l)
	})
}

func TestLedger_Clear(t *testing.T) {
	l := newTestLedger()
	l.AddLine(testProduct("gp001", 449, 699), 1, "", "")
	l.AddLine(testProduct("gp007", 549, 799), 4, "", "")

	l.Clear()

	assert.Empty(t, l.Lines())
	assert.Equal(t, 0, l.TotalItems())
	assert.Equal(t, int64(0), l.TotalPrice())
}

func TestLedger_InvariantAcrossSequence(t *testing.T) {
	l := newTestLedger()
	p1 := testProduct("gp001", 449, 699)
	p2 := testProduct("gp007", 549, 799)

	id1, _ := l.AddLine(p1, 2, "3-6M", "Pink")
	assertInvariant(t, l)

	id2, _ := l.AddLine(p2, 1, "2-3Y", "White")
	assertInvariant(t, l)

	l.AddLine(p1, 3, "3-6M", "Pink")
	assertInvariant(t, l)

	require.NoError(t, l.SetQuantity(id2, 7))
	assertInvariant(t, l)

	l.RemoveLine(id1)
	assertInvariant(t, l)

	require.NoError(t, l.SetQuantity(id2, 0))
	assertInvariant(t, l)

	l.Clear()
	assertInvariant(t, l)
}

func TestLedger_Snapshot(t *testing.T) {
	l := newTestLedger()
	l.AddLine(testProduct("gp006", 999, 1599), 1, "M", "Maroon")

	snap := l.Snapshot(nil)

	assert.Equal(t, 1, snap.TotalItems)
	assert.Equal(t, int64(999), snap.TotalPrice)
	assert.Equal(t, int64(999), snap.Breakdown.Subtotal)
	assert.Equal(t, int64(600), snap.Breakdown.MRPDiscount)

	// Snapshot lines are a copy; mutating them must not reach the ledger.
	snap.Lines[0].Quantity = 99
	assert.Equal(t, 1, l.TotalItems())
}

func TestLedger_RestoreFromStore(t *testing.T) {
	pricer := pricing.NewEngine(pricing.DefaultConfig())
	persisted := []cart.Line{
		{ID: "a", Product: testProduct("gp001", 449, 699), Quantity: 2},
		{ID: "b", Product: testProduct("gp007", 549, 799), Quantity: 0},
		{ID: "c", Product: testProduct("gp006", 999, 1599), Quantity: 1},
	}

	l := cart.NewLedgerFrom(pricer, persisted)

	// The zero-quantity line from the store is dropped.
	require.Len(t, l.Lines(), 2)
	assert.Equal(t, 3, l.TotalItems())
	assert.Equal(t, int64(1897), l.TotalPrice())
	assertInvariant(t, l)
}
