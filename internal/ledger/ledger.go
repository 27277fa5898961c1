package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/villagekitchen/billing/internal/catalog"
)

// LineItem is one catalog selection with its quantity and computed total.
// LineTotal is derived from UnitPrice and Quantity at creation and never
// mutated independently.
type LineItem struct {
	ID        uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// Snapshot is a value copy of the ledger state handed to adapters and to
// the invoice projector. Items preserve insertion order.
type Snapshot struct {
	Items          []LineItem
	Subtotal       decimal.Decimal
	DeliveryCharge decimal.Decimal
	FinalTotal     decimal.Decimal
	FreeDelivery   bool
}

// Ledger owns the line items and derived totals for one billing session.
// Totals are fully recomputed after every mutation; item counts are small
// enough that incremental bookkeeping isn't worth it.
//
// A Ledger is not safe for concurrent use. Adapters serialize access.
type Ledger struct {
	items          []LineItem
	deliveryCharge decimal.Decimal
	freeDelivery   bool

	subtotal   decimal.Decimal
	finalTotal decimal.Decimal
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddItem appends a line item for the given catalog entry. It rejects an
// empty entry (nothing selected) and non-positive quantities.
func (l *Ledger) AddItem(entry catalog.Entry, quantity int) (LineItem, error) {
	if entry.Name == "" {
		return LineItem{}, validationf("no item selected")
	}

	if quantity <= 0 {
		return LineItem{}, validationf("quantity must be greater than zero")
	}

	item := LineItem{
		ID:        uuid.New(),
		Name:      entry.Name,
		UnitPrice: entry.UnitPrice,
		Quantity:  quantity,
		LineTotal: entry.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}

	l.items = append(l.items, item)
	l.recompute()

	return item, nil
}

// RemoveItem removes the item with the given id. Removing an unknown id is
// a no-op, not an error; the return value reports whether anything changed.
func (l *Ledger) RemoveItem(id uuid.UUID) bool {
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.recompute()

			return true
		}
	}

	return false
}

// SetDeliveryCharge sets the delivery charge, clamping negative amounts to
// zero. While free delivery is active the charge is forced to zero and
// direct edits are ignored.
func (l *Ledger) SetDeliveryCharge(amount decimal.Decimal) {
	if l.freeDelivery {
		l.deliveryCharge = decimal.Zero
	} else {
		if amount.IsNegative() {
			amount = decimal.Zero
		}

		l.deliveryCharge = amount
	}

	l.recompute()
}

// SetFreeDelivery toggles free-delivery mode. Enabling it zeroes the
// delivery charge and locks it against direct edits until disabled.
func (l *Ledger) SetFreeDelivery(enabled bool) {
	l.freeDelivery = enabled
	if enabled {
		l.deliveryCharge = decimal.Zero
	}

	l.recompute()
}

// Clear resets the ledger in place: no items, zero delivery charge, free
// delivery off. The ledger remains usable afterwards.
func (l *Ledger) Clear() {
	l.items = nil
	l.deliveryCharge = decimal.Zero
	l.freeDelivery = false
	l.recompute()
}

// Len returns the number of line items.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Snapshot returns a value copy of the current state.
func (l *Ledger) Snapshot() Snapshot {
	items := make([]LineItem, len(l.items))
	copy(items, l.items)

	return Snapshot{
		Items:          items,
		Subtotal:       l.subtotal,
		DeliveryCharge: l.deliveryCharge,
		FinalTotal:     l.finalTotal,
		FreeDelivery:   l.freeDelivery,
	}
}

func (l *Ledger) recompute() {
	subtotal := decimal.Zero
	for _, item := range l.items {
		subtotal = subtotal.Add(item.LineTotal)
	}

	l.subtotal = subtotal
	l.finalTotal = subtotal.Add(l.deliveryCharge)
}
