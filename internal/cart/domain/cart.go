package domain

// LineItem is one purchasable selection in the cart. Name, price and
// image are snapshotted at add time and never refreshed from the
// product record, so a later price change does not touch lines already
// in the cart.
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	ImageURL  string `json:"image_url"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"qty"`
}

// matches reports whether the item belongs to the line identified by
// the (product, size, color) triple. Products without a size or color
// variant carry empty strings, keeping the comparison total.
func (i LineItem) matches(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// LineTotal is the item's contribution to the cart total.
func (i LineItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Cart is the ordered collection of line items belonging to one cart
// token. Lines keep insertion order.
type Cart struct {
	Items []LineItem `json:"items"`
}

// AddItem merges item into an existing line with the same
// (product, size, color) triple by summing quantities, or appends a
// new line. On merge only the quantity changes; the existing line's
// snapshot fields are kept. Callers must pass item.Quantity >= 1.
func (c *Cart) AddItem(item LineItem) {
	for i := range c.Items {
		if c.Items[i].matches(item.ProductID, item.Size, item.Color) {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the matching line's quantity to max(1, qty).
// Decrementing below one clamps to one and never removes the line;
// removal is its own operation. Missing lines are a no-op.
func (c *Cart) UpdateQuantity(productID, size, color string, qty int) {
	for i := range c.Items {
		if c.Items[i].matches(productID, size, color) {
			if qty < 1 {
				qty = 1
			}
			c.Items[i].Quantity = qty
			return
		}
	}
}

// RemoveItem deletes the matching line. Missing lines are a no-op.
func (c *Cart) RemoveItem(productID, size, color string) {
	for i := range c.Items {
		if c.Items[i].matches(productID, size, color) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// TotalPrice is the sum of unit price times quantity across all lines.
// Shipping is settled later over the hand-off channel and is never
// part of this total.
func (c *Cart) TotalPrice() int64 {
	var t int64
	for _, item := range c.Items {
		t += item.LineTotal()
	}
	return t
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
