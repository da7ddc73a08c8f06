package models

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// NextStatuses returns the transitions the client may request from s. The
// server is authoritative and may still reject any of them.
func NextStatuses(s OrderStatus) []OrderStatus {
	switch s {
	case OrderPending:
		return []OrderStatus{OrderConfirmed, OrderCancelled}
	case OrderConfirmed:
		return []OrderStatus{OrderCompleted, OrderCancelled}
	}
	return nil
}

// CustomerCanCancel reports whether the customer view may offer cancellation.
func CustomerCanCancel(s OrderStatus) bool {
	return s == OrderPending || s == OrderConfirmed
}

type OrderDetail struct {
	OrchidID   int64  `json:"orchidId"`
	OrchidName string `json:"orchidName"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
}

type Order struct {
	ID           int64         `json:"id"`
	AccountID    int64         `json:"accountId"`
	Status       OrderStatus   `json:"status"`
	OrderDetails []OrderDetail `json:"orderDetails"`
}

// Total is the sum of unitPrice x quantity over the order lines.
func (o *Order) Total() int64 {
	var total int64
	for _, d := range o.OrderDetails {
		total += d.UnitPrice * int64(d.Quantity)
	}
	return total
}

// CreateOrderRequest is the checkout submission payload.
type CreateOrderRequest struct {
	AccountID int64              `json:"accountId"`
	Items     []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	OrchidID int64 `json:"orchidId"`
	Quantity int   `json:"quantity"`
}
