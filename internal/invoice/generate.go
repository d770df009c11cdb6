package invoice

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Clock returns the current time. Production wiring passes time.Now; tests
// pass a fixed clock so generated numbers and dates are reproducible.
type Clock func() time.Time

// Generator produces invoice numbers, line item IDs and default dates for
// new invoices. All outputs derive from the injected clock.
type Generator struct {
	now Clock
	rnd *rand.Rand
}

// NewGenerator creates a Generator backed by the given clock.
func NewGenerator(now Clock) *Generator {
	return &Generator{
		now: now,
		rnd: rand.New(rand.NewSource(now().UnixNano())),
	}
}

// InvoiceNumber returns "INV-" followed by the last 8 digits of the current
// unix-millisecond timestamp. The value is only best-effort distinct: real
// uniqueness is enforced by the invoices table's unique constraint, and
// callers regenerate on a duplicate-number error.
func (g *Generator) InvoiceNumber() string {
	ms := strconv.FormatInt(g.now().UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "INV-" + ms
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// LineItemID returns "line-<unix-ms>-<9 random base36 chars>". Collision
// resistance only needs to hold within one invoice in one editing session.
func (g *Generator) LineItemID() string {
	var suffix strings.Builder
	for i := 0; i < 9; i++ {
		suffix.WriteByte(base36Alphabet[g.rnd.Intn(len(base36Alphabet))])
	}
	return "line-" + strconv.FormatInt(g.now().UnixMilli(), 10) + "-" + suffix.String()
}

// TodayDate returns today's date as YYYY-MM-DD in the local time zone.
// The zone itself is not retained.
func (g *Generator) TodayDate() string {
	return g.now().Format("2006-01-02")
}

// DefaultDueDate returns the default due date, 30 calendar days from today.
func (g *Generator) DefaultDueDate() string {
	return g.now().AddDate(0, 0, 30).Format("2006-01-02")
}
