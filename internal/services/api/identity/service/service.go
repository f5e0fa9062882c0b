// Package service issues anonymous dreamer ids
package service

import (
	"context"

	perr "dreammap/internal/platform/errors"
	pnet "dreammap/internal/platform/net"
	"dreammap/internal/platform/net/middleware"
	"dreammap/internal/services/api/identity/domain"

	"github.com/google/uuid"
)

// Service defines the identity service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the identity service
type Svc struct {
	newID func() (uuid.UUID, error)
}

// New constructs an identity service issuing random v4 ids
func New() *Svc { return &Svc{newID: uuid.NewRandom} }

// Issue returns a fresh id; nothing is stored server side
func (s *Svc) Issue(context.Context) (domain.Identity, error) {
	id, err := s.newID()
	if err != nil {
		return domain.Identity{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "generate dreamer id")
	}
	return domain.Identity{DreamerID: id.String(), Header: middleware.HeaderDreamerID}, nil
}

// Resolve echoes the id the request carried
func (s *Svc) Resolve(ctx context.Context) (domain.Identity, error) {
	id := pnet.DreamerID(ctx)
	if id == "" {
		return domain.Identity{}, perr.Unauthorizedf("missing dreamer id")
	}
	return domain.Identity{DreamerID: id, Header: middleware.HeaderDreamerID}, nil
}
