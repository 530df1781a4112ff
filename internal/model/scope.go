package model

// Scope carries the caller identity resolved by the HTTP layer.
type Scope struct {
	OrgID  string `json:"org_id"`
	UserID string `json:"user_id"`
}
