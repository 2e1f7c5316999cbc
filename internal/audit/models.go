package audit

import "time"

// Action names the portal operations worth an audit record.
type Action string

const (
	ActionLogin              Action = "resident.login"
	ActionLogout             Action = "resident.logout"
	ActionAdminLogin         Action = "admin.login"
	ActionAdminLogout        Action = "admin.logout"
	ActionInvoicePaid        Action = "invoice.paid"
	ActionReservationBooked  Action = "reservation.booked"
	ActionReservationCancel  Action = "reservation.cancelled"
	ActionVisitorRegistered  Action = "visitor.registered"
	ActionAnnouncementPosted Action = "announcement.posted"
	ActionStatementPosted    Action = "billing_statement.posted"
	ActionProjectPosted      Action = "maintenance_project.posted"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Rut       string    `json:"rut,omitempty"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Device    string    `json:"device,omitempty"`
}
