// Package cart models a browsing session's cart as a plain value. Update
// functions return a new Cart instead of mutating shared state, so callers
// own exactly the value they hold. Carts live in memory only and are
// discarded after checkout or when the session goes away.
package cart

// Item is one line of the cart. Entries are keyed by the variant triple
// (ProductID, Size, Color); Price is the unit price in minor currency units.
type Item struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int64  `json:"price"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"imageUrl"`
}

func (it Item) sameVariant(productID, size, color string) bool {
	return it.ProductID == productID && it.Size == size && it.Color == color
}

// Cart is an ordered collection of line items. The zero value is an empty
// cart.
type Cart struct {
	items []Item
}

// Items returns a copy of the line items in insertion order.
func (c Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Add merges a candidate item into the cart. The candidate's Quantity is
// ignored: an existing entry with the same variant key is incremented by
// one in place, otherwise the item is appended with quantity 1. There is
// no upper bound against stock.
func (c Cart) Add(item Item) Cart {
	next := c.Items()
	for i := range next {
		if next[i].sameVariant(item.ProductID, item.Size, item.Color) {
			next[i].Quantity++
			return Cart{items: next}
		}
	}
	item.Quantity = 1
	return Cart{items: append(next, item)}
}

// SetQuantity sets the matching entry's quantity to exactly quantity.
// A quantity of zero or below removes the entry. An unknown variant key
// leaves the cart unchanged.
func (c Cart) SetQuantity(productID, size, color string, quantity int) Cart {
	if quantity <= 0 {
		next := make([]Item, 0, len(c.items))
		for _, it := range c.items {
			if !it.sameVariant(productID, size, color) {
				next = append(next, it)
			}
		}
		return Cart{items: next}
	}
	next := c.Items()
	for i := range next {
		if next[i].sameVariant(productID, size, color) {
			next[i].Quantity = quantity
			break
		}
	}
	return Cart{items: next}
}

// Clear empties the cart unconditionally.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Empty reports whether the cart has no line items.
func (c Cart) Empty() bool {
	return len(c.items) == 0
}

// ItemCount is the sum of quantities across all entries, recomputed on
// every call.
func (c Cart) ItemCount() int {
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Total is the sum of price times quantity across all entries, recomputed
// on every call. The empty cart totals zero.
func (c Cart) Total() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}
