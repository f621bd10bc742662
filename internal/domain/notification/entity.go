package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypePayrollConfirmationRequested NotificationType = "payroll_confirmation_requested"
	TypePayrollConfirmed             NotificationType = "payroll_confirmed"
	TypePayrollMarkedPaid            NotificationType = "payroll_marked_paid"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
