package session_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/villagekitchen/billing/internal/catalog"
	"github.com/villagekitchen/billing/internal/ledger"
	"github.com/villagekitchen/billing/internal/session"
)

func TestSession_SerializesAccess(t *testing.T) {
	s := session.New()
	entry := catalog.Entry{Name: "Masala Chai", UnitPrice: decimal.NewFromInt(20)}

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			s.With(func(l *ledger.Ledger) {
				_, _ = l.AddItem(entry, 1)
			})
		}()
	}

	wg.Wait()

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 50)
	assert.Equal(t, "1000", snap.Subtotal.String())
}
