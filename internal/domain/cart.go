package domain

import "time"

// CartStatus is the lifecycle state of a cart.
type CartStatus string

const (
	CartStatusActive   CartStatus = "active"
	CartStatusArchived CartStatus = "archived"
)

// Cart is one shopping cart owned by a (client, user) pair. For any pair at
// most one cart is active at a time; the rest of its history is archived.
type Cart struct {
	ID             string     `json:"id"`
	ClientID       string     `json:"clientId"`
	UserID         string     `json:"userId"`
	Status         CartStatus `json:"status"`
	TotalItems     int        `json:"totalItemCount"`
	TotalCents     int64      `json:"totalCents"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastModifiedAt time.Time  `json:"lastModifiedAt"`
	// Items keeps the upstream wire name "itens".
	Items []CartItem `json:"itens"`
}

type CartItem struct {
	ID             string `json:"id"`
	CartID         string `json:"cartId"`
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	ProductCode    string `json:"productCode"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	TotalCents     int64  `json:"totalCents"`
	Position       int    `json:"-"`
}
