package domain

import "time"

// Client is a business customer of the distribution operation.
type Client struct {
	ID        string    `json:"id"`
	TradeName string    `json:"tradeName"`
	LegalName string    `json:"legalName"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientUser is an individual authorized to act on behalf of a client.
// IDs come from the upstream system (e.g. "1-1") and are kept verbatim.
type ClientUser struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
