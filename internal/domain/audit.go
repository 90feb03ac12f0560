package domain

import "time"

// AuditStatusNew marks a freshly captured audit request.
const AuditStatusNew = "new"

// AuditRequest is a free site audit lead captured from the public form.
type AuditRequest struct {
	// Timestamp is when the request was received
	Timestamp time.Time `json:"timestamp" mapstructure:"timestamp"`
	// Business is the business name as entered
	Business string `json:"business" mapstructure:"business"`
	// Website is the site the visitor wants audited, may be empty
	Website string `json:"website" mapstructure:"website"`
	// Email is the contact email
	Email string `json:"email" mapstructure:"email"`
	// Phone is the contact phone number
	Phone string `json:"phone" mapstructure:"phone"`
	// Industry is an optional industry hint
	Industry string `json:"industry" mapstructure:"industry"`
	// Status tracks follow-up progress, starts at AuditStatusNew
	Status string `json:"status" mapstructure:"status"`
}
