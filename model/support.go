package model

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

type SupportTicket struct {
	ID        int          `json:"id"`
	UserID    FlexInt      `json:"user"`
	Username  string       `json:"username,omitempty"`
	Subject   string       `json:"subject"`
	Message   string       `json:"message"`
	Status    TicketStatus `json:"status,omitempty"`
	CreatedAt string       `json:"created_at,omitempty"`
}

type TicketReply struct {
	ID        int     `json:"id"`
	TicketID  FlexInt `json:"ticket"`
	UserID    FlexInt `json:"user"`
	Username  string  `json:"username,omitempty"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"created_at,omitempty"`
}
