package models

type Orchid struct {
	OrchidID    int64  `json:"orchidId"`
	OrchidName  string `json:"orchidName"`
	Description string `json:"orchidDescription"`
	Price       int64  `json:"price"`
	OrchidURL   string `json:"orchidUrl"`
	Natural     bool   `json:"natural"`
	Available   bool   `json:"available"`
}

// CreateOrchidRequest is the admin create/update payload. OrchidID is zero
// on create and set on update.
type CreateOrchidRequest struct {
	OrchidID    int64  `json:"orchidId,omitempty"`
	OrchidName  string `json:"orchidName" binding:"required,min=2"`
	Description string `json:"orchidDescription"`
	Price       int64  `json:"price" binding:"required,min=1"`
	OrchidURL   string `json:"orchidUrl"`
	Natural     bool   `json:"natural"`
}
