// Package cart holds the in-memory shopping cart and its session-scoped
// persistence. A cart is an insertion-ordered list of line items, unique by
// menu ID; adding the same menu again merges quantities instead of creating a
// duplicate entry.
package cart

// Item is one menu entry in the cart with its own quantity.
type Item struct {
	MenuID   string `json:"menuId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Cart is the in-memory engine. It is not safe for concurrent use; each
// session gets its own instance.
type Cart struct {
	items []Item
}

// New builds a cart from previously persisted items, preserving their order.
func New(items ...Item) *Cart {
	c := &Cart{items: make([]Item, len(items))}
	copy(c.items, items)
	return c
}

// AddItem merges the quantity into an existing entry for the same menu, or
// appends a new entry at the end.
func (c *Cart) AddItem(it Item) {
	for i := range c.items {
		if c.items[i].MenuID == it.MenuID {
			c.items[i].Quantity += it.Quantity
			return
		}
	}
	c.items = append(c.items, it)
}

// RemoveItem deletes the entry for menuID. Removing an absent item is a no-op.
func (c *Cart) RemoveItem(menuID string) {
	for i := range c.items {
		if c.items[i].MenuID == menuID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the entry's quantity in place. A quantity of zero or
// less removes the entry. Updating an absent item is a no-op; it never inserts.
func (c *Cart) UpdateQuantity(menuID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(menuID)
		return
	}
	for i := range c.items {
		if c.items[i].MenuID == menuID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Total returns the sum of price times quantity over all entries.
func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all entries.
func (c *Cart) ItemCount() int {
	var count int
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.items)
}
