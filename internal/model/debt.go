package model

import "time"

// Debt is an informal IOU ("nasiya"): a customer took Qty units of Product
// at Price each and owes Total (qty*price, kept in step on every edit) until
// it is marked paid.
type Debt struct {
	ID        int64     `json:"id"`
	Customer  string    `json:"customer"`
	Product   string    `json:"product"`
	Qty       int64     `json:"qty"`
	Price     int64     `json:"price"`
	Total     int64     `json:"total"`
	DueDate   Date      `json:"dueDate"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"createdAt"`
}
