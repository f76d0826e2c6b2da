package models

// AuthResult is the single outcome shape of every authentication entry
// point. Exactly one of Account and Error is meaningful, chosen by Success.
type AuthResult struct {
	Success bool     `json:"success"`
	Account *Account `json:"account,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// AuthSucceeded builds a successful result.
func AuthSucceeded(account Account) AuthResult {
	return AuthResult{Success: true, Account: &account}
}

// AuthFailed builds a failed result carrying a user-facing message.
func AuthFailed(message string) AuthResult {
	return AuthResult{Success: false, Error: message}
}
