package domain

import "time"

// CartLine pairs a product snapshot with a quantity. The quantity is always
// positive; driving it to zero removes the line instead.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart holds the products selected for purchase in one storefront session.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart for the given session.
func NewCart(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Lines:     []CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindLineIndex returns the index of the line holding the given product,
// or -1 when absent.
func (c *Cart) FindLineIndex(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ID == productID {
			return i
		}
	}
	return -1
}

// Add increments the quantity of an existing line by one, or appends a new
// line with quantity 1.
func (c *Cart) Add(p Product) {
	if i := c.FindLineIndex(p.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// SetQuantity sets the quantity of the line for productID. A quantity below 1
// removes the line. Returns false when no line for productID exists; the cart
// is left unchanged in that case.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	i := c.FindLineIndex(productID)
	if i < 0 {
		return false
	}
	if quantity < 1 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return true
	}
	c.Lines[i].Quantity = quantity
	return true
}

// Remove deletes the line for productID. Returns false when absent.
func (c *Cart) Remove(productID string) bool {
	i := c.FindLineIndex(productID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	var count int
	for i := range c.Lines {
		count += c.Lines[i].Quantity
	}
	return count
}

// TotalPrice returns the sum of quantity times effective price across lines.
// Recomputed on every call; nothing is cached.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for i := range c.Lines {
		total += int64(c.Lines[i].Quantity) * c.Lines[i].EffectivePrice()
	}
	return total
}
