package player

import "tidewalker/internal/tiles"

// Stack is a count of one item occupying a single inventory slot.
type Stack struct {
	Item  tiles.Item
	Count int
}

// Inventory is an ordered list of stacks bounded by a slot count.
type Inventory struct {
	Stacks []Stack
	Slots  int
}

// NewInventory returns an empty inventory with the given number of slots.
func NewInventory(slots int) Inventory {
	if slots <= 0 {
		slots = DefaultSlots
	}
	return Inventory{Slots: slots}
}

// Add stores n of it. Stackable items merge into an existing stack; others
// take one slot each. Nothing is added unless all n fit.
func (inv *Inventory) Add(it tiles.Item, n int) bool {
	if n <= 0 || !it.Valid() {
		return false
	}
	if tiles.ItemProps(it).Stackable {
		for i := range inv.Stacks {
			if inv.Stacks[i].Item == it {
				inv.Stacks[i].Count += n
				return true
			}
		}
		if len(inv.Stacks) >= inv.Slots {
			return false
		}
		inv.Stacks = append(inv.Stacks, Stack{Item: it, Count: n})
		return true
	}
	if len(inv.Stacks)+n > inv.Slots {
		return false
	}
	for i := 0; i < n; i++ {
		inv.Stacks = append(inv.Stacks, Stack{Item: it, Count: 1})
	}
	return true
}

// Count returns the total number of it held.
func (inv *Inventory) Count(it tiles.Item) int {
	total := 0
	for _, s := range inv.Stacks {
		if s.Item == it {
			total += s.Count
		}
	}
	return total
}
