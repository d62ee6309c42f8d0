package store

const cartKeyPrefix = "cart_"

// Cart is the per-user shopping cart.
type Cart struct {
	*userStore
}

func NewCart(storage Storage, session *Session) *Cart {
	return &Cart{userStore: newUserStore(cartKeyPrefix, storage, session)}
}

// Add puts an item in the cart. Adding a product already present merges by
// summing quantities. A non-positive quantity counts as 1.
func (c *Cart) Add(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.snapshot()
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			c.save(items)
			return
		}
	}
	c.save(append(items, item))
}

// SetQuantity sets a line's quantity directly, clamped to a minimum of 1.
// Absent products are a no-op; use Add to create lines.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.snapshot()
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			c.save(items)
			return
		}
	}
}

// Decrement lowers a line's quantity by one, removing the line once it
// would drop below 1. This is the behavior behind the UI's minus button.
func (c *Cart) Decrement(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.snapshot()
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if items[i].Quantity <= 1 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity--
		}
		c.save(items)
		return
	}
}

// TotalCount is the sum of all line quantities, shown on the navbar badge.
func (c *Cart) TotalCount() int {
	var count int
	for _, it := range c.Items() {
		count += it.Quantity
	}
	return count
}

// TotalPrice is the cart's price times quantity sum.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, it := range c.Items() {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
