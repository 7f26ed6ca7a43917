package entities

import "time"

// Engineer is a mechanic working for a garage.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (garage_id-index): garage_id
type Engineer struct {
	ID        string    `json:"id"`
	GarageID  string    `json:"garage_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
