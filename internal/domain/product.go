package domain

import "time"

type Product struct {
	ID            string    `json:"id"`
	DistributorID string    `json:"distributorId"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	PriceCents    int64     `json:"priceCents"`
	Unit          string    `json:"unit,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}
