package domain

import "time"

// CustomerStatus represents the lifecycle state of a customer account.
type CustomerStatus string

const (
	StatusActive   CustomerStatus = "active"
	StatusInactive CustomerStatus = "inactive"
)

// Valid reports whether the status is one of the known states.
func (s CustomerStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Customer is a bank customer managed through the admin portal. Customers log
// in with their email; only active customers may authenticate.
type Customer struct {
	ID            string         `json:"id"`
	FullName      string         `json:"full_name"`
	Email         string         `json:"email"`
	PasswordHash  string         `json:"-"`
	AccountNumber string         `json:"account_number"`
	AccountType   string         `json:"account_type"`
	Balance       float64        `json:"balance"`
	Status        CustomerStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}
