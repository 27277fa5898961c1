// Package invoice projects a ledger snapshot plus customer metadata onto a
// paginated, fixed-layout PDF document.
package invoice

import (
	"strings"
	"time"

	"github.com/villagekitchen/billing/internal/ledger"
)

// Metadata carries the customer and delivery details supplied at export
// time. It has no stored relationship to the ledger.
type Metadata struct {
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	Date            time.Time
	Number          string
}

// Artifact is the rendered document handed to the host environment for
// delivery. It is not retained after the export completes.
type Artifact struct {
	Filename string
	Data     []byte
}

// Canvas is the document rendering capability the projector draws on.
// Coordinates are in millimetres on an A4 portrait page.
type Canvas interface {
	AddPage()
	SetFont(family, style string, size float64)
	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	Rect(x, y, w, h float64, fill bool)
	Line(x1, y1, x2, y2 float64)
	Text(x, y float64, s string)
	SplitText(s string, width float64) []string
	Bytes() ([]byte, error)
}

func validate(snap ledger.Snapshot, meta Metadata) error {
	switch {
	case strings.TrimSpace(meta.CustomerName) == "":
		return &ledger.ValidationError{Reason: "customer name is required"}
	case strings.TrimSpace(meta.CustomerPhone) == "":
		return &ledger.ValidationError{Reason: "customer phone is required"}
	case strings.TrimSpace(meta.DeliveryAddress) == "":
		return &ledger.ValidationError{Reason: "delivery address is required"}
	case len(snap.Items) == 0:
		return &ledger.ValidationError{Reason: "at least one item is required"}
	}

	return nil
}
