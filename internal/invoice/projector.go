package invoice

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/villagekitchen/billing/internal/ledger"
	"github.com/villagekitchen/billing/internal/money"
)

// Brand is the business identity printed on every invoice.
type Brand struct {
	Name          string
	Tagline       string
	Phone         string
	CurrencyLabel string
}

// Layout constants, in millimetres on an A4 portrait page.
const (
	pageWidth    = 210
	headerHeight = 40
	contentWidth = 170
	marginLeft   = 20

	addressStartY     = 87
	addressLineHeight = 5
	tableMinY         = 105

	colItemX  = 25
	colPriceX = 120
	colQtyX   = 145
	colTotalX = 165

	rowHeight       = 8
	pageBottomLimit = 250
	continuationTop = 30

	maxItemNameLen = 35

	fontFamily = "Helvetica"
)

// Colors: accent for the header band and final total, heading for titles
// and table labels, body for everything else.
var (
	accentColor    = [3]int{255, 107, 107}
	headingColor   = [3]int{52, 73, 94}
	bodyColor      = [3]int{44, 62, 80}
	tableBandColor = [3]int{240, 240, 240}
	whiteColor     = [3]int{255, 255, 255}
)

// Projector renders ledger snapshots as paginated invoice documents. It is
// written entirely against the Canvas primitives.
type Projector struct {
	brand     Brand
	newCanvas func() Canvas
	now       func() time.Time
}

// NewProjector returns a projector that draws on canvases produced by
// newCanvas, one per rendered document.
func NewProjector(brand Brand, newCanvas func() Canvas) *Projector {
	return &Projector{
		brand:     brand,
		newCanvas: newCanvas,
		now:       time.Now,
	}
}

// Render produces the invoice document for the given snapshot and metadata.
// It fails with a ValidationError when required customer fields are missing
// or the snapshot has no items; no partial artifact is produced.
func (p *Projector) Render(snap ledger.Snapshot, meta Metadata) (*Artifact, error) {
	if err := validate(snap, meta); err != nil {
		return nil, err
	}

	c := p.newCanvas()
	c.AddPage()

	p.drawHeader(c, meta)
	addressEnd := p.drawCustomerBlock(c, meta)
	y := p.drawTable(c, snap.Items, addressEnd)
	y = p.drawSummary(c, snap, y)
	p.drawFooter(c, y)

	data, err := c.Bytes()
	if err != nil {
		return nil, fmt.Errorf("producing document: %w", err)
	}

	return &Artifact{
		Filename: p.filename(meta.CustomerName, p.now()),
		Data:     data,
	}, nil
}

// drawHeader paints the accent band with the business identity, then the
// invoice title and metadata top-right. First page only.
func (p *Projector) drawHeader(c Canvas, meta Metadata) {
	c.SetFillColor(accentColor[0], accentColor[1], accentColor[2])
	c.Rect(0, 0, pageWidth, headerHeight, true)

	c.SetTextColor(whiteColor[0], whiteColor[1], whiteColor[2])
	c.SetFont(fontFamily, "B", 24)
	c.Text(marginLeft, 20, p.brand.Name)
	c.SetFont(fontFamily, "I", 12)
	c.Text(marginLeft, 28, p.brand.Tagline)
	c.SetFont(fontFamily, "", 10)
	c.Text(marginLeft, 35, "Phone: "+p.brand.Phone)

	c.SetTextColor(headingColor[0], headingColor[1], headingColor[2])
	c.SetFont(fontFamily, "B", 20)
	c.Text(150, 20, "INVOICE")
	c.SetFont(fontFamily, "", 10)
	c.Text(150, 30, "Date: "+meta.Date.Format("02/01/2006"))
	c.Text(150, 36, "Invoice No: "+meta.Number)
}

// drawCustomerBlock renders the customer and delivery-address blocks and
// returns the y position one line below the last address line.
func (p *Projector) drawCustomerBlock(c Canvas, meta Metadata) float64 {
	c.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	c.SetFont(fontFamily, "B", 12)
	c.Text(marginLeft, 55, "Bill To:")
	c.SetFont(fontFamily, "", 12)
	c.Text(marginLeft, 63, meta.CustomerName)
	c.Text(marginLeft, 70, "Phone: "+meta.CustomerPhone)

	c.SetFont(fontFamily, "B", 12)
	c.Text(marginLeft, 80, "Delivery Address:")
	c.SetFont(fontFamily, "", 12)

	y := float64(addressStartY)
	for _, line := range c.SplitText(meta.DeliveryAddress, contentWidth) {
		c.Text(marginLeft, y, line)
		y += addressLineHeight
	}

	return y
}

// drawTable renders the column header band and one row per line item, in
// ledger order, starting a new page whenever the cursor passes the bottom
// limit. The header band is not reprinted on continuation pages.
func (p *Projector) drawTable(c Canvas, items []ledger.LineItem, addressEnd float64) float64 {
	y := math.Max(addressEnd+10, tableMinY)

	c.SetFillColor(tableBandColor[0], tableBandColor[1], tableBandColor[2])
	c.Rect(marginLeft, y-5, contentWidth, 10, true)

	c.SetTextColor(headingColor[0], headingColor[1], headingColor[2])
	c.SetFont(fontFamily, "B", 10)
	c.Text(colItemX, y, "Item")
	c.Text(colPriceX, y, "Price")
	c.Text(colQtyX, y, "Qty")
	c.Text(colTotalX, y, "Total")

	y += 15
	c.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	c.SetFont(fontFamily, "", 10)

	for _, item := range items {
		if y > pageBottomLimit {
			c.AddPage()
			y = continuationTop
		}

		c.Text(colItemX, y, truncateName(item.Name))
		c.Text(colPriceX, y, p.amount(item.UnitPrice))
		c.Text(colQtyX, y, strconv.Itoa(item.Quantity))
		c.Text(colTotalX, y, p.amount(item.LineTotal))

		y += rowHeight
	}

	return y
}

func (p *Projector) drawSummary(c Canvas, snap ledger.Snapshot, y float64) float64 {
	y += 10
	c.Line(colPriceX, y, 190, y)
	y += 10

	c.SetFont(fontFamily, "B", 12)
	c.Text(colPriceX, y, "Subtotal:")
	c.Text(colTotalX, y, p.amount(snap.Subtotal))

	y += 8
	c.Text(colPriceX, y, "Delivery Charges:")
	c.Text(colTotalX, y, p.amount(snap.DeliveryCharge))

	y += 8
	c.SetFont(fontFamily, "B", 14)
	c.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
	c.Text(colPriceX, y, "Total Amount:")
	c.Text(colTotalX, y, p.amount(snap.FinalTotal))

	return y
}

// drawFooter places the thank-you and disclaimer lines at fixed offsets
// below the summary. It does not check the page boundary, so a near-full
// last page can overflow.
func (p *Projector) drawFooter(c Canvas, y float64) {
	y += 30
	c.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	c.SetFont(fontFamily, "I", 12)
	c.Text(marginLeft, y, "Thanks for ordering from "+p.brand.Name+"!")

	y += 10
	c.SetFont(fontFamily, "", 8)
	c.Text(marginLeft, y, "This is a computer generated invoice.")
}

func (p *Projector) amount(d decimal.Decimal) string {
	return p.brand.CurrencyLabel + " " + money.Format(d)
}

// filename builds the deterministic artifact name from the sanitized
// customer name and the current date.
func (p *Projector) filename(customer string, now time.Time) string {
	brand := strings.ReplaceAll(p.brand.Name, " ", "_")

	clean := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}

		return '_'
	}, customer)

	return fmt.Sprintf("%s_Invoice_%s_%s.pdf", brand, clean, now.Format(time.DateOnly))
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxItemNameLen {
		return name
	}

	return string(runes[:maxItemNameLen]) + "..."
}
