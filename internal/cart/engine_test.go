package cart

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

type memStore struct {
	saved   []State
	loadErr error
	state   State
}

func (m *memStore) Load() (State, error) {
	if m.loadErr != nil {
		return State{}, m.loadErr
	}
	return m.state, nil
}

func (m *memStore) Save(s State) error {
	m.saved = append(m.saved, s)
	m.state = s
	return nil
}

type stubSubmitter struct {
	id    string
	err   error
	calls int
	got   struct {
		table    string
		lines    []Line
		bill     int64
		discount int64
	}
}

func (s *stubSubmitter) CreateInvoice(_ context.Context, tableName string, lines []Line, totalBill, totalDiscount int64) (string, error) {
	s.calls++
	s.got.table = tableName
	s.got.lines = lines
	s.got.bill = totalBill
	s.got.discount = totalDiscount
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func alwaysConfirm() bool { return true }

func TestEngine_AddPersistsSnapshot(t *testing.T) {
	store := &memStore{}
	e := NewEngine(store, &stubSubmitter{}, nil)

	if err := e.AddItem(Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 snapshot write, got %d", len(store.saved))
	}
	if e.TableStatus("table-1") != StatusPopulated {
		t.Fatal("expected populated status after add")
	}
	if e.TableStatus("table-2") != StatusEmpty {
		t.Fatal("expected empty status for untouched table")
	}
}

func TestEngine_RemoveLine(t *testing.T) {
	store := &memStore{}
	e := NewEngine(store, &stubSubmitter{}, nil)

	if err := e.AddItem(Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !e.RemoveLine("a", "table-1") {
		t.Fatal("expected removal to succeed")
	}
	if e.RemoveLine("a", "table-1") {
		t.Fatal("expected second removal to be a no-op")
	}
	if len(store.saved) != 2 {
		t.Fatalf("no-op removal must not persist, got %d writes", len(store.saved))
	}
	if e.TableStatus("table-1") != StatusEmpty {
		t.Fatal("expected empty status after removal")
	}
}

func TestEngine_CorruptSnapshotDegradesToEmpty(t *testing.T) {
	store := &memStore{loadErr: errors.New("decode snapshot: boom")}
	e := NewEngine(store, &stubSubmitter{}, nil)

	if e.State().Len() != 0 {
		t.Fatal("expected empty cart after corrupt snapshot")
	}
}

func TestEngine_CheckoutClearsOnlyFinalizedTable(t *testing.T) {
	store := &memStore{}
	sub := &stubSubmitter{id: "inv-1"}
	e := NewEngine(store, sub, nil)

	seed := []struct {
		item  Item
		table string
	}{
		{Item{ID: "a", Name: "a", UnitPrice: 250}, "table-3"},
		{Item{ID: "a", Name: "a", UnitPrice: 250}, "table-3"},
		{Item{ID: "b", Name: "b", UnitPrice: 90}, "table-3"},
		{Item{ID: "c", Name: "c", UnitPrice: 500}, "table-1"},
	}
	for _, s := range seed {
		if err := e.AddItem(s.item, s.table); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	id, err := e.Checkout(context.Background(), "table-3", Quote{Percent: 10, Resolved: true}, alwaysConfirm)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if id != "inv-1" {
		t.Fatalf("expected invoice id inv-1, got %s", id)
	}

	if sub.got.table != "table-3" || sub.got.bill != 590 || sub.got.discount != 59 {
		t.Fatalf("unexpected submission: %+v", sub.got)
	}
	if len(sub.got.lines) != 2 {
		t.Fatalf("expected 2 submitted lines, got %d", len(sub.got.lines))
	}

	for range e.State().TableLines("table-3") {
		t.Fatal("finalized table still has lines")
	}
	if Total(e.State().TableLines("table-1")) != 500 {
		t.Fatal("other table's cart must survive checkout")
	}

	// the cleared state was persisted
	last := store.saved[len(store.saved)-1]
	if last.Len() != 1 {
		t.Fatalf("expected persisted state with 1 line, got %d", last.Len())
	}
}

func TestEngine_CheckoutDeclinedLeavesCartUnchanged(t *testing.T) {
	store := &memStore{}
	sub := &stubSubmitter{id: "inv-1"}
	e := NewEngine(store, sub, nil)

	if err := e.AddItem(Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := e.State().Lines()

	_, err := e.Checkout(context.Background(), "table-1", Quote{}, func() bool { return false })
	if !errors.Is(err, ErrCheckoutDeclined) {
		t.Fatalf("expected ErrCheckoutDeclined, got %v", err)
	}
	if sub.calls != 0 {
		t.Fatal("declined checkout must not submit")
	}
	if !reflect.DeepEqual(before, e.State().Lines()) {
		t.Fatal("declined checkout changed the cart")
	}
}

func TestEngine_FailedCheckoutPreservesCart(t *testing.T) {
	store := &memStore{}
	sub := &stubSubmitter{err: errors.New("store unavailable")}
	e := NewEngine(store, sub, nil)

	if err := e.AddItem(Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := e.State().Lines()
	writes := len(store.saved)

	if _, err := e.Checkout(context.Background(), "table-1", Quote{}, alwaysConfirm); err == nil {
		t.Fatal("expected checkout to fail")
	}
	if !reflect.DeepEqual(before, e.State().Lines()) {
		t.Fatal("failed checkout changed the cart")
	}
	if len(store.saved) != writes {
		t.Fatal("failed checkout must not persist a new snapshot")
	}
	if e.TableStatus("table-1") != StatusPopulated {
		t.Fatal("expected table to stay populated after failure")
	}
}

func TestEngine_CheckoutEmptyTableRejected(t *testing.T) {
	e := NewEngine(&memStore{}, &stubSubmitter{}, nil)
	if _, err := e.Checkout(context.Background(), "table-1", Quote{}, alwaysConfirm); err == nil {
		t.Fatal("expected error for empty table checkout")
	}
}

func TestEngine_RehydratesFromFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileStore(path)

	first := NewEngine(store, &stubSubmitter{}, nil)
	if err := first.AddItem(Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	second := NewEngine(NewFileStore(path), &stubSubmitter{}, nil)
	if !reflect.DeepEqual(first.State().Lines(), second.State().Lines()) {
		t.Fatal("rehydrated engine differs from original")
	}
}
