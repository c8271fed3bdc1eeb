package domain

import "time"

type NotificationType string

const (
	NotificationDecisionApproved     NotificationType = "decision_approved"
	NotificationDecisionDenied       NotificationType = "decision_denied"
	NotificationMoneyRequestApproved NotificationType = "money_request_approved"
	NotificationMoneyRequestDenied   NotificationType = "money_request_denied"
)

type Notification struct {
	ID          string
	UserID      string
	Type        NotificationType
	Title       string
	Message     string
	Data        *string // JSON document, e.g. {"decisionId":"..."}
	IsRead      bool
	CreatedAt   time.Time
	PublishedAt *time.Time // set once relayed to the broker
}
