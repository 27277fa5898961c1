package ledger_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villagekitchen/billing/internal/catalog"
	"github.com/villagekitchen/billing/internal/ledger"
)

func entry(name string, price int64) catalog.Entry {
	return catalog.Entry{Name: name, UnitPrice: decimal.NewFromInt(price)}
}

func TestLedger_AddItem(t *testing.T) {
	type args struct {
		entry    catalog.Entry
		quantity int
	}

	type testCase struct {
		name      string
		args      args
		wantErr   bool
		wantTotal string
	}

	tests := []testCase{
		{
			name:      "Success",
			args:      args{entry: entry("Veg Biryani", 150), quantity: 2},
			wantTotal: "300",
		},
		{
			name:    "NoSelection",
			args:    args{entry: catalog.Entry{}, quantity: 1},
			wantErr: true,
		},
		{
			name:    "ZeroQuantity",
			args:    args{entry: entry("Raita", 40), quantity: 0},
			wantErr: true,
		},
		{
			name:    "NegativeQuantity",
			args:    args{entry: entry("Raita", 40), quantity: -3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New()

			item, err := l.AddItem(tt.args.entry, tt.args.quantity)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ledger.IsValidation(err))

				// Rejected input leaves the ledger unchanged.
				assert.Equal(t, 0, l.Len())
				assert.Equal(t, "0", l.Snapshot().Subtotal.String())

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, item.ID)
			assert.Equal(t, tt.args.entry.Name, item.Name)
			assert.Equal(t, tt.wantTotal, item.LineTotal.String())
			assert.Equal(t, 1, l.Len())
			assert.Equal(t, tt.wantTotal, l.Snapshot().Subtotal.String())
		})
	}
}

func TestLedger_AddItem_AssignsUniqueIDs(t *testing.T) {
	l := ledger.New()

	seen := make(map[uuid.UUID]bool)

	for i := 0; i < 10; i++ {
		item, err := l.AddItem(entry("Masala Chai", 20), 1)
		require.NoError(t, err)
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}
}

func TestLedger_RemoveItem(t *testing.T) {
	l := ledger.New()

	first, err := l.AddItem(entry("Veg Biryani", 150), 2)
	require.NoError(t, err)
	_, err = l.AddItem(entry("Raita", 40), 1)
	require.NoError(t, err)

	require.Equal(t, "340", l.Snapshot().Subtotal.String())

	assert.True(t, l.RemoveItem(first.ID))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, "40", l.Snapshot().Subtotal.String())

	// Unknown id is a silent no-op.
	assert.False(t, l.RemoveItem(uuid.New()))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, "40", l.Snapshot().Subtotal.String())
}

func TestLedger_RemoveItem_MiddleOfList(t *testing.T) {
	l := ledger.New()

	_, err := l.AddItem(entry("Veg Biryani", 150), 1)
	require.NoError(t, err)
	middle, err := l.AddItem(entry("Dal Tadka", 120), 1)
	require.NoError(t, err)
	_, err = l.AddItem(entry("Raita", 40), 1)
	require.NoError(t, err)

	require.True(t, l.RemoveItem(middle.ID))

	snap := l.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "Veg Biryani", snap.Items[0].Name)
	assert.Equal(t, "Raita", snap.Items[1].Name)
	assert.Equal(t, "190", snap.Subtotal.String())
}

func TestLedger_DeliveryCharge(t *testing.T) {
	l := ledger.New()

	_, err := l.AddItem(entry("Veg Biryani", 150), 2)
	require.NoError(t, err)
	_, err = l.AddItem(entry("Raita", 40), 1)
	require.NoError(t, err)

	require.Equal(t, "340", l.Snapshot().Subtotal.String())

	l.SetDeliveryCharge(decimal.NewFromInt(30))
	assert.Equal(t, "370", l.Snapshot().FinalTotal.String())

	// Negative amounts are clamped to zero.
	l.SetDeliveryCharge(decimal.NewFromInt(-5))
	assert.Equal(t, "0", l.Snapshot().DeliveryCharge.String())
	assert.Equal(t, "340", l.Snapshot().FinalTotal.String())
}

func TestLedger_FreeDelivery(t *testing.T) {
	l := ledger.New()

	_, err := l.AddItem(entry("Veg Biryani", 150), 2)
	require.NoError(t, err)
	_, err = l.AddItem(entry("Raita", 40), 1)
	require.NoError(t, err)

	l.SetDeliveryCharge(decimal.NewFromInt(30))
	require.Equal(t, "370", l.Snapshot().FinalTotal.String())

	l.SetFreeDelivery(true)

	snap := l.Snapshot()
	assert.True(t, snap.FreeDelivery)
	assert.Equal(t, "0", snap.DeliveryCharge.String())
	assert.Equal(t, "340", snap.FinalTotal.String())

	// Direct edits are ignored while free delivery is on.
	l.SetDeliveryCharge(decimal.NewFromInt(50))
	assert.Equal(t, "0", l.Snapshot().DeliveryCharge.String())
	assert.Equal(t, "340", l.Snapshot().FinalTotal.String())

	// Disabling unlocks the charge again.
	l.SetFreeDelivery(false)
	l.SetDeliveryCharge(decimal.NewFromInt(50))
	assert.Equal(t, "50", l.Snapshot().DeliveryCharge.String())
	assert.Equal(t, "390", l.Snapshot().FinalTotal.String())
}

func TestLedger_Clear(t *testing.T) {
	l := ledger.New()

	_, err := l.AddItem(entry("Veg Biryani", 150), 2)
	require.NoError(t, err)
	l.SetDeliveryCharge(decimal.NewFromInt(30))
	l.SetFreeDelivery(true)

	l.Clear()

	snap := l.Snapshot()
	assert.Empty(t, snap.Items)
	assert.False(t, snap.FreeDelivery)
	assert.Equal(t, "0", snap.Subtotal.String())
	assert.Equal(t, "0", snap.DeliveryCharge.String())
	assert.Equal(t, "0", snap.FinalTotal.String())

	// The ledger stays usable after a reset.
	_, err = l.AddItem(entry("Raita", 40), 1)
	require.NoError(t, err)
	assert.Equal(t, "40", l.Snapshot().FinalTotal.String())
}

// Subtotal must always equal the sum of the current items' line totals,
// whatever sequence of adds and removes produced them.
func TestLedger_SubtotalInvariant(t *testing.T) {
	l := ledger.New()

	var ids []uuid.UUID

	entries := []catalog.Entry{
		entry("Veg Biryani", 150),
		entry("Paneer Butter Masala", 180),
		entry("Butter Naan", 35),
		entry("Gulab Jamun", 60),
	}

	for i, e := range entries {
		item, err := l.AddItem(e, i+1)
		require.NoError(t, err)

		ids = append(ids, item.ID)
		assertSubtotalConsistent(t, l.Snapshot())
	}

	for _, id := range []uuid.UUID{ids[2], ids[0], uuid.New()} {
		l.RemoveItem(id)
		assertSubtotalConsistent(t, l.Snapshot())
	}
}

func assertSubtotalConsistent(t *testing.T, snap ledger.Snapshot) {
	t.Helper()

	sum := decimal.Zero
	for _, item := range snap.Items {
		assert.True(t, item.LineTotal.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))))
		sum = sum.Add(item.LineTotal)
	}

	assert.True(t, snap.Subtotal.Equal(sum), "subtotal %s != items sum %s", snap.Subtotal, sum)
	assert.True(t, snap.FinalTotal.Equal(snap.Subtotal.Add(snap.DeliveryCharge)))
}
