package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/villagekitchen/billing/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=renderer_mock.go -package=invoice
type Renderer interface {
	Render(snap ledger.Snapshot, meta Metadata) (*Artifact, error)
}

// Service handles invoice exports: it validates the request, fills metadata
// defaults and delegates rendering. An export either completes or fails
// synchronously; failures never touch the ledger.
type Service struct {
	renderer     Renderer
	numberPrefix string
	now          func() time.Time
}

func NewService(renderer Renderer, brand Brand) *Service {
	return &Service{
		renderer:     renderer,
		numberPrefix: brandInitials(brand.Name),
		now:          time.Now,
	}
}

// Export renders an invoice for the given snapshot and metadata. A zero
// date defaults to today and an empty number is generated from the brand
// initials.
func (s *Service) Export(snap ledger.Snapshot, meta Metadata) (*Artifact, error) {
	if err := validate(snap, meta); err != nil {
		return nil, err
	}

	if meta.Date.IsZero() {
		meta.Date = s.now()
	}

	if meta.Number == "" {
		meta.Number = s.invoiceNumber()
	}

	artifact, err := s.renderer.Render(snap, meta)
	if err != nil {
		return nil, fmt.Errorf("exporting invoice: %w", err)
	}

	return artifact, nil
}

// invoiceNumber derives a short human-readable number from the brand
// initials and the last six digits of the current unix milliseconds.
func (s *Service) invoiceNumber() string {
	millis := strconv.FormatInt(s.now().UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	return s.numberPrefix + millis
}

func brandInitials(name string) string {
	var b strings.Builder

	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}

	return b.String()
}
