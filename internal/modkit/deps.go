// Package modkit provides module wiring and core deps
package modkit

import (
	"dreammap/internal/modkit/repokit"
	"dreammap/internal/platform/config"
	"dreammap/internal/platform/logger"
	"dreammap/internal/platform/store"

	"github.com/redis/go-redis/v9"
)

// Deps holds the shared dependencies handed to every module. Store seams
// are nil when the backend is disabled.
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	RDS *redis.Client
}

// FromStore fills the store seams from s
func (d Deps) FromStore(s *store.Store) Deps {
	if s == nil {
		return d
	}
	d.PG, d.CH, d.RDS = s.PG, s.CH, s.RDS
	return d
}
