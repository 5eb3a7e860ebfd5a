package domain

import "time"

type Distributor struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	CNPJ              string    `json:"cnpj"`
	State             string    `json:"state,omitempty"`
	MinimumOrderCents int64     `json:"minimumOrderCents"`
	CreatedAt         time.Time `json:"createdAt"`
}
