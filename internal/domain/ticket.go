package domain

import "time"

type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusResolved TicketStatus = "resolved"
	TicketStatusClosed   TicketStatus = "closed"
)

func KnownTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusPending, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Ticket is a support request raised for a client. Ticket IDs come from the
// upstream helpdesk and are kept as opaque strings.
type Ticket struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"clientId"`
	Subject   string          `json:"subject"`
	Body      string          `json:"body,omitempty"`
	Status    TicketStatus    `json:"status"`
	Tags      []string        `json:"tags"`
	Owner     string          `json:"owner,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Comments  []TicketComment `json:"comments,omitempty"`
}

type TicketComment struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticketId"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
