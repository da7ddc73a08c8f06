package models

// CartItem is one line of the client-persisted cart. OrchidID is the unique
// key within a cart; adding the same orchid again accumulates quantity.
type CartItem struct {
	OrchidID   int64  `json:"orchidId"`
	OrchidName string `json:"orchidName"`
	Price      int64  `json:"price"` // unit price, integer currency units
	OrchidURL  string `json:"orchidUrl"`
	Quantity   int    `json:"quantity"`
}

// CartTotal is the sum of price x quantity over all items.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// CartCount is the sum of quantities, shown as the cart badge.
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
