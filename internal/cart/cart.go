package cart

import (
	"iter"
	"strings"

	"foodrepublic/internal/domain"
)

// Item is a catalog entry being added to a cart. UnitPrice is in
// integer minor currency units.
type Item struct {
	ID        string
	Name      string
	UnitPrice int64
}

// Line is one item-quantity entry scoped to a table. Marked is a
// transient UI flag and never persisted.
type Line struct {
	ItemID    string `json:"_id"`
	ItemName  string `json:"item_name"`
	UnitPrice int64  `json:"item_price_per_unit"`
	Quantity  int64  `json:"item_quantity"`
	TableName string `json:"table_name"`
	Marked    bool   `json:"-"`
}

// State is the full cart across all tables. Values are immutable:
// every transition returns a new State and leaves the receiver intact.
type State struct {
	lines []Line
}

// NewState builds a State from existing lines, copying the slice.
func NewState(lines []Line) State {
	return State{lines: append([]Line(nil), lines...)}
}

// Lines returns a copy of all lines across all tables.
func (s State) Lines() []Line {
	return append([]Line(nil), s.lines...)
}

// Len reports the total number of lines across all tables.
func (s State) Len() int {
	return len(s.lines)
}

// Add merges an item into the table's cart. A line already holding the
// same (item, table) pair gains quantity instead of duplicating.
func (s State) Add(item Item, tableName string) (State, error) {
	if strings.TrimSpace(item.ID) == "" {
		return s, domain.Validation("item id is required")
	}
	if strings.TrimSpace(item.Name) == "" {
		return s, domain.Validation("item name is required")
	}
	if item.UnitPrice < 0 {
		return s, domain.Validation("item price must be non-negative")
	}
	if strings.TrimSpace(tableName) == "" {
		return s, domain.Validation("table name is required")
	}

	next := s.Lines()
	for i, line := range next {
		if line.ItemID == item.ID && line.TableName == tableName {
			next[i].Quantity++
			return State{lines: next}, nil
		}
	}
	next = append(next, Line{
		ItemID:    item.ID,
		ItemName:  item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  1,
		TableName: tableName,
	})
	return State{lines: next}, nil
}

// Remove deletes the line matching the (item, table) pair. Lines held
// by other tables for the same item are untouched.
func (s State) Remove(itemID, tableName string) (State, bool) {
	for i, line := range s.lines {
		if line.ItemID == itemID && line.TableName == tableName {
			next := make([]Line, 0, len(s.lines)-1)
			next = append(next, s.lines[:i]...)
			next = append(next, s.lines[i+1:]...)
			return State{lines: next}, true
		}
	}
	return s, false
}

// ToggleMark flips the transient removal mark on the matching line.
func (s State) ToggleMark(itemID, tableName string) State {
	next := s.Lines()
	for i, line := range next {
		if line.ItemID == itemID && line.TableName == tableName {
			next[i].Marked = !line.Marked
		}
	}
	return State{lines: next}
}

// ClearTable drops every line belonging to the given table.
func (s State) ClearTable(tableName string) State {
	next := make([]Line, 0, len(s.lines))
	for _, line := range s.lines {
		if line.TableName != tableName {
			next = append(next, line)
		}
	}
	return State{lines: next}
}

// Clear drops every line across all tables.
func (s State) Clear() State {
	return State{}
}

// TableLines is a lazy, restartable view of the lines belonging to one
// table. It does not copy and must be re-obtained after a transition.
func (s State) TableLines(tableName string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, line := range s.lines {
			if line.TableName == tableName {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// Total sums unit price times quantity over a sequence of lines.
func Total(lines iter.Seq[Line]) int64 {
	var total int64
	for line := range lines {
		total += line.UnitPrice * line.Quantity
	}
	return total
}
