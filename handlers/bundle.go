package handlers

// HandlerBundle aggregates the HTTP handlers so route registration takes a
// single value.
type HandlerBundle struct {
	Appointment  *AppointmentHandler
	Notification *NotificationHandler
	Case         *CaseHandler
}
