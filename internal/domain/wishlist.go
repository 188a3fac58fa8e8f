package domain

// Wishlist is the set of favorited products for one storefront session.
// Entries are full product snapshots so the wishlist stays renderable even
// when the catalog source is unavailable.
type Wishlist struct {
	SessionID string    `json:"session_id"`
	Items     []Product `json:"items"`
}

// NewWishlist creates an empty wishlist for the given session.
func NewWishlist(sessionID string) *Wishlist {
	return &Wishlist{
		SessionID: sessionID,
		Items:     []Product{},
	}
}

// Contains reports whether the product is in the wishlist.
func (w *Wishlist) Contains(productID string) bool {
	for i := range w.Items {
		if w.Items[i].ID == productID {
			return true
		}
	}
	return false
}

// Toggle inserts the product when absent and removes it when present.
// Returns true when the product is in the wishlist after the call.
func (w *Wishlist) Toggle(p Product) bool {
	for i := range w.Items {
		if w.Items[i].ID == p.ID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return false
		}
	}
	w.Items = append(w.Items, p)
	return true
}

// Count returns the set cardinality.
func (w *Wishlist) Count() int {
	return len(w.Items)
}
