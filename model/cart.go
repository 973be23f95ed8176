package model

import "github.com/shopspring/decimal"

type CartItem struct {
	CartItemID    uint64          `json:"cartItemId"`
	ProductID     uint64          `json:"productId"`
	ProductName   string          `json:"productName"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	OrderQuantity int             `json:"orderQuantity"`
	ProductImage  string          `json:"productImage"`
}

// CartState is the storefront's copy of one user's cart. Totals are never
// stored; they are computed from Items on every read.
type CartState struct {
	UserID uint64     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// Replace swaps the whole item list for a server snapshot.
func (c *CartState) Replace(items []CartItem) {
	c.Items = make([]CartItem, 0, len(items))
	for _, it := range items {
		c.Apply(it)
	}
}

// Apply writes a server-confirmed item into the cart. An existing line for
// the same cart item or the same product is overwritten so a product never
// appears twice.
func (c *CartState) Apply(item CartItem) {
	for i := range c.Items {
		if c.Items[i].CartItemID == item.CartItemID || c.Items[i].ProductID == item.ProductID {
			c.Items[i] = item
			c.dedupe(i)
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Update overwrites the line of item's cart item in place. A line that was
// removed or cleared meanwhile stays gone; it reports whether a line was found.
func (c *CartState) Update(item CartItem) bool {
	for i := range c.Items {
		if c.Items[i].CartItemID == item.CartItemID {
			c.Items[i] = item
			c.dedupe(i)
			return true
		}
	}
	return false
}

// dedupe drops any later line that shares the product of line keep.
func (c *CartState) dedupe(keep int) {
	productID := c.Items[keep].ProductID
	out := make([]CartItem, 0, len(c.Items))
	for i, it := range c.Items {
		if i != keep && it.ProductID == productID {
			continue
		}
		out = append(out, it)
	}
	c.Items = out
}

// Remove deletes the line with cartItemID. It reports whether a line was found.
func (c *CartState) Remove(cartItemID uint64) bool {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *CartState) Clear() {
	c.Items = []CartItem{}
}

func (c *CartState) Find(cartItemID uint64) (CartItem, bool) {
	for _, it := range c.Items {
		if it.CartItemID == cartItemID {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c *CartState) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *CartState) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.OrderQuantity
	}
	return total
}

func (c *CartState) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.OrderQuantity))))
	}
	return total
}

// View renders the cart with its derived totals.
func (c *CartState) View() *CartResponse {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return &CartResponse{
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

type CartResponse struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Notices    []Notice        `json:"notices,omitempty"`
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
