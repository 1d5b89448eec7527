package cart

import (
	"testing"
)

func mustAdd(t *testing.T, s State, item Item, table string) State {
	t.Helper()
	next, err := s.Add(item, table)
	if err != nil {
		t.Fatalf("add %s to %s: %v", item.ID, table, err)
	}
	return next
}

func TestState_AddMergesByItemAndTable(t *testing.T) {
	tea := Item{ID: "id-tea", Name: "iced-tea", UnitPrice: 250}

	var s State
	for i := 0; i < 5; i++ {
		s = mustAdd(t, s, tea, "table-1")
	}

	if s.Len() != 1 {
		t.Fatalf("expected a single merged line, got %d", s.Len())
	}
	line := s.Lines()[0]
	if line.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", line.Quantity)
	}
	if line.ItemName != "iced-tea" || line.UnitPrice != 250 || line.TableName != "table-1" {
		t.Fatalf("unexpected line %+v", line)
	}
}

func TestState_AddSameItemDifferentTables(t *testing.T) {
	tea := Item{ID: "id-tea", Name: "iced-tea", UnitPrice: 250}

	var s State
	s = mustAdd(t, s, tea, "table-1")
	s = mustAdd(t, s, tea, "table-2")

	if s.Len() != 2 {
		t.Fatalf("expected one line per table, got %d", s.Len())
	}
}

func TestState_AddPreconditions(t *testing.T) {
	var s State

	if _, err := s.Add(Item{Name: "tea", UnitPrice: 1}, "table-1"); err == nil {
		t.Fatal("expected error for missing item id")
	}
	if _, err := s.Add(Item{ID: "x", UnitPrice: 1}, "table-1"); err == nil {
		t.Fatal("expected error for missing item name")
	}
	if _, err := s.Add(Item{ID: "x", Name: "tea", UnitPrice: -1}, "table-1"); err == nil {
		t.Fatal("expected error for negative price")
	}
	if _, err := s.Add(Item{ID: "x", Name: "tea", UnitPrice: 1}, ""); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestState_RemoveIsTableScoped(t *testing.T) {
	tea := Item{ID: "id-tea", Name: "iced-tea", UnitPrice: 250}
	fries := Item{ID: "id-fries", Name: "french-fries", UnitPrice: 300}

	var s State
	s = mustAdd(t, s, tea, "table-1")
	s = mustAdd(t, s, tea, "table-2")
	s = mustAdd(t, s, fries, "table-1")

	next, removed := s.Remove("id-tea", "table-1")
	if !removed {
		t.Fatal("expected a line to be removed")
	}
	if next.Len() != 2 {
		t.Fatalf("expected 2 lines after removal, got %d", next.Len())
	}
	for _, line := range next.Lines() {
		if line.ItemID == "id-tea" && line.TableName == "table-1" {
			t.Fatal("removed line still present")
		}
	}
	// table-2 keeps its own tea line
	if Total(next.TableLines("table-2")) != 250 {
		t.Fatal("expected the other table's line to survive")
	}

	if _, removed := next.Remove("id-tea", "table-1"); removed {
		t.Fatal("second removal should be a no-op")
	}
}

func TestState_TableLinesAndTotal(t *testing.T) {
	var s State
	s = mustAdd(t, s, Item{ID: "a", Name: "a", UnitPrice: 250}, "table-1")
	s = mustAdd(t, s, Item{ID: "a", Name: "a", UnitPrice: 250}, "table-1")
	s = mustAdd(t, s, Item{ID: "b", Name: "b", UnitPrice: 90}, "table-1")
	s = mustAdd(t, s, Item{ID: "c", Name: "c", UnitPrice: 9999}, "table-2")

	if got := Total(s.TableLines("table-1")); got != 590 {
		t.Fatalf("expected total 590, got %d", got)
	}
	if got := Total(s.TableLines("table-9")); got != 0 {
		t.Fatalf("expected empty total 0, got %d", got)
	}

	// the view is restartable
	view := s.TableLines("table-1")
	first, second := 0, 0
	for range view {
		first++
	}
	for range view {
		second++
	}
	if first != 2 || second != 2 {
		t.Fatalf("expected restartable view of 2 lines, got %d then %d", first, second)
	}
}

func TestState_ClearTable(t *testing.T) {
	var s State
	s = mustAdd(t, s, Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1")
	s = mustAdd(t, s, Item{ID: "b", Name: "b", UnitPrice: 100}, "table-3")

	next := s.ClearTable("table-3")
	if next.Len() != 1 {
		t.Fatalf("expected 1 line left, got %d", next.Len())
	}
	for range next.TableLines("table-3") {
		t.Fatal("expected no lines for cleared table")
	}
}

func TestState_ToggleMark(t *testing.T) {
	var s State
	s = mustAdd(t, s, Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1")

	s = s.ToggleMark("a", "table-1")
	if !s.Lines()[0].Marked {
		t.Fatal("expected line to be marked")
	}
	s = s.ToggleMark("a", "table-1")
	if s.Lines()[0].Marked {
		t.Fatal("expected mark to toggle off")
	}
}

func TestState_TransitionsDoNotMutateReceiver(t *testing.T) {
	var s State
	s = mustAdd(t, s, Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1")

	_ = mustAdd(t, s, Item{ID: "a", Name: "a", UnitPrice: 100}, "table-1")
	if s.Lines()[0].Quantity != 1 {
		t.Fatal("add mutated the original state")
	}

	_, _ = s.Remove("a", "table-1")
	if s.Len() != 1 {
		t.Fatal("remove mutated the original state")
	}
}
