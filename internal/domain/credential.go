package domain

// CredentialSet is a chat's named API keys plus at most one active name.
// Invariants: names are unique, the active name (if set) exists in Keys.
type CredentialSet struct {
	Keys   map[string]string `json:"keys"`
	Active string            `json:"active"`
}

// KeyInfo is a listing entry for menu rendering.
type KeyInfo struct {
	Name   string
	Active bool
}
