package models

// SupportRequest is one support_requests.json entry. Entries are append-only
// and never mutated. Date is RFC 3339; User is the submitting username or
// the guest sentinel. ID is stamped at submission; records written by older
// clients may lack it.
type SupportRequest struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Date    string `json:"date"`
	User    string `json:"user"`
}
