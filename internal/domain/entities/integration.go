package entities

// IntegrationStatus is the computed connection state of one external
// integration. It is derived fresh on every request, never cached.
type IntegrationStatus struct {
	IsConnected        bool    `json:"is_connected"`
	LastCheckedAt      string  `json:"last_checked_at"`
	ErrorMessage       *string `json:"error_message"`
	LinkedAccountEmail *string `json:"linked_account_email,omitempty"`
}
