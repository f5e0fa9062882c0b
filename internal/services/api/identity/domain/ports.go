// Package domain holds the identity contracts
package domain

import "context"

// Identity is an anonymous dreamer id. It is a bearer value: whoever holds
// it shares its quota.
type Identity struct {
	DreamerID string `json:"dreamer_id"`
	Header    string `json:"header"`
}

// ServicePort issues and echoes identities
type ServicePort interface {
	Issue(ctx context.Context) (Identity, error)
	Resolve(ctx context.Context) (Identity, error)
}
