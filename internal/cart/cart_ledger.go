package cart

import (
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"
	"github.com/google/uuid"
)

// Line is one cart row: a product plus the chosen variant and quantity.
// A line exists only while its quantity is at least 1.
type Line struct {
	ID       string          `json:"id"`
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// Snapshot is a read-only view of the ledger plus the breakdown for an
// optional coupon.
type Snapshot struct {
	Lines      []Line
	TotalItems int
	TotalPrice int64
	Breakdown  pricing.Breakdown
}

// Ledger owns the ordered line collection and its derived totals. The
// totals are caches: every mutation recomputes them from the lines, so
// they can never drift from the sum over lines. The ledger is not safe
// for concurrent use; callers serialize access.
type Ledger struct {
	pricer     *pricing.Engine
	lines      []Line
	totalItems int
	totalPrice int64
}

func NewLedger(pricer *pricing.Engine) *Ledger {
	return &Ledger{pricer: pricer}
}

// NewLedgerFrom rebuilds a ledger from persisted lines. Lines with a
// non-positive quantity are dropped rather than trusted; the store is a
// collaborator, not an authority on the invariant.
func NewLedgerFrom(pricer *pricing.Engine, lines []Line) *Ledger {
	l := &Ledger{pricer: pricer}
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		l.lines = append(l.lines, line)
	}
	l.recompute()
	return l
}

// AddLine appends a line, or merges into an existing line when the
// product and the size/color selection are identical. Returns the ID of
// the line that now holds the quantity.
func (l *Ledger) AddLine(p catalog.Product, quantity int, size, color string) (string, error) {
	if quantity < 1 {
		return "", ErrInvalidQty
	}

	for i := range l.lines {
		existing := &l.lines[i]
		if existing.Product.ID == p.ID && existing.Size == size && existing.Color == color {
			existing.Quantity += quantity
			l.recompute()
			return existing.ID, nil
		}
	}

	line := Line{
		ID:       uuid.NewString(),
		Product:  p,
		Quantity: quantity,
		Size:     size,
		Color:    color,
	}
	l.lines = append(l.lines, line)
	l.recompute()
	return line.ID, nil
}

// SetQuantity updates a line in place. A quantity of zero or less
// removes the line entirely; any confirmation belongs to the UI, the
// ledger removes unconditionally.
func (l *Ledger) SetQuantity(lineID string, quantity int) error {
	idx := l.indexOf(lineID)
	if idx < 0 {
		return ErrLineNotFound
	}

	if quantity < 1 {
		l.lines = append(l.lines[:idx], l.lines[idx+1:]...)
	} else {
		l.lines[idx].Quantity = quantity
	}
	l.recompute()
	return nil
}

// RemoveLine is idempotent: removing an unknown line is a no-op.
func (l *Ledger) RemoveLine(lineID string) {
	idx := l.indexOf(lineID)
	if idx < 0 {
		return
	}
	l.lines = append(l.lines[:idx], l.lines[idx+1:]...)
	l.recompute()
}

func (l *Ledger) Clear() {
	l.lines = nil
	l.recompute()
}

func (l *Ledger) Line(lineID string) (Line, bool) {
	idx := l.indexOf(lineID)
	if idx < 0 {
		return Line{}, false
	}
	return l.lines[idx], true
}

// Lines returns a copy in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) TotalItems() int {
	return l.totalItems
}

func (l *Ledger) TotalPrice() int64 {
	return l.totalPrice
}

func (l *Ledger) Snapshot(coupon *pricing.Coupon) Snapshot {
	return Snapshot{
		Lines:      l.Lines(),
		TotalItems: l.totalItems,
		TotalPrice: l.totalPrice,
		Breakdown:  l.pricer.Compute(PricingLines(l.lines), coupon),
	}
}

func (l *Ledger) indexOf(lineID string) int {
	for i := range l.lines {
		if l.lines[i].ID == lineID {
			return i
		}
	}
	return -1
}

func (l *Ledger) recompute() {
	items := 0
	var price int64
	for _, line := range l.lines {
		items += line.Quantity
		price += int64(line.Quantity) * line.Product.Price
	}
	l.totalItems = items
	l.totalPrice = price
}

// PricingLines maps cart lines into the pricing engine's input shape.
func PricingLines(lines []Line) []pricing.Line {
	out := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, pricing.Line{
			UnitPrice: l.Product.Price,
			UnitMRP:   l.Product.OriginalPrice,
			Quantity:  l.Quantity,
		})
	}
	return out
}
