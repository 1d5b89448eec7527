package cart

import (
	"context"
	"errors"
	"io"
	"log"

	"foodrepublic/internal/domain"
)

// Status describes a single table's cart lifecycle.
type Status int

const (
	StatusEmpty Status = iota
	StatusPopulated
	StatusFinalizing
)

// Submitter sends a finalized order to the store and returns the
// generated invoice id.
type Submitter interface {
	CreateInvoice(ctx context.Context, tableName string, lines []Line, totalBill, totalDiscount int64) (string, error)
}

// ErrCheckoutDeclined is returned when the confirmation step rejects a
// checkout. The cart is left unchanged.
var ErrCheckoutDeclined = errors.New("checkout declined")

// Engine owns the cart state and its persistence side effects. All
// mutations run through it; it is meant for a single event loop and is
// not safe for concurrent use.
type Engine struct {
	state      State
	store      SnapshotStore
	submitter  Submitter
	logger     *log.Logger
	finalizing map[string]bool
}

// NewEngine rehydrates the cart from the snapshot store. A corrupt
// snapshot degrades to an empty cart rather than failing startup.
func NewEngine(store SnapshotStore, submitter Submitter, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	state, err := store.Load()
	if err != nil {
		logger.Printf("cart engine: snapshot load failed, starting empty: %v", err)
		state = State{}
	}

	return &Engine{
		state:      state,
		store:      store,
		submitter:  submitter,
		logger:     logger,
		finalizing: make(map[string]bool),
	}
}

// State returns the current cart snapshot.
func (e *Engine) State() State {
	return e.state
}

// TableStatus reports where the given table sits in the cart lifecycle.
func (e *Engine) TableStatus(tableName string) Status {
	if e.finalizing[tableName] {
		return StatusFinalizing
	}
	for range e.state.TableLines(tableName) {
		return StatusPopulated
	}
	return StatusEmpty
}

// AddItem merges an item into the table's cart and persists the
// snapshot.
func (e *Engine) AddItem(item Item, tableName string) error {
	next, err := e.state.Add(item, tableName)
	if err != nil {
		return err
	}
	e.commit(next)
	return nil
}

// RemoveLine drops the (item, table) line and persists the snapshot.
// It reports whether a line was removed.
func (e *Engine) RemoveLine(itemID, tableName string) bool {
	next, removed := e.state.Remove(itemID, tableName)
	if !removed {
		return false
	}
	e.commit(next)
	return true
}

// ToggleMark flips the transient removal mark; no persistence since
// marks are not part of the durable state.
func (e *Engine) ToggleMark(itemID, tableName string) {
	e.state = e.state.ToggleMark(itemID, tableName)
}

// Clear empties the whole cart across all tables.
func (e *Engine) Clear() {
	e.commit(e.state.Clear())
}

// TableTotal sums the given table's lines.
func (e *Engine) TableTotal(tableName string) int64 {
	return Total(e.state.TableLines(tableName))
}

// Checkout finalizes a table's order. The confirm callback gates the
// irreversible submission; declining leaves the cart unchanged, and so
// does a store failure. On success only the finalized table's lines
// are cleared and the generated invoice id is returned.
func (e *Engine) Checkout(ctx context.Context, tableName string, quote Quote, confirm func() bool) (string, error) {
	var lines []Line
	for line := range e.state.TableLines(tableName) {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "", domain.Validation("no items in cart for table " + tableName)
	}

	totalBill := Total(e.state.TableLines(tableName))
	totalDiscount := Apply(totalBill, quote)

	if confirm == nil || !confirm() {
		return "", ErrCheckoutDeclined
	}

	e.finalizing[tableName] = true
	defer delete(e.finalizing, tableName)

	id, err := e.submitter.CreateInvoice(ctx, tableName, lines, totalBill, totalDiscount)
	if err != nil {
		return "", err
	}

	e.commit(e.state.ClearTable(tableName))
	return id, nil
}

// commit swaps in the new state and persists it best-effort. A failed
// write is logged, not surfaced; the in-memory state stays canonical.
func (e *Engine) commit(next State) {
	e.state = next
	if err := e.store.Save(next); err != nil {
		e.logger.Printf("cart engine: snapshot save failed: %v", err)
	}
}
