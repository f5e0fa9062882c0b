// Package geoip resolves a caller ip to an approximate origin using a
// MaxMind city database
package geoip

import (
	"context"
	"net"

	"dreammap/internal/core/dream"
	perr "dreammap/internal/platform/errors"

	"github.com/oschwald/geoip2-golang"
)

// Locator resolves an ip; ok is false when nothing useful is known
type Locator interface {
	Locate(ctx context.Context, ip string) (dream.Location, bool)
}

// Nop never resolves
type Nop struct{}

// Locate implements Locator
func (Nop) Locate(context.Context, string) (dream.Location, bool) { return dream.Location{}, false }

type cityDB interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

// Reader is a Locator over an mmdb file
type Reader struct{ db cityDB }

// Open maps the database at path
func Open(path string) (*Reader, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open geoip db %s", path)
	}
	return &Reader{db: db}, nil
}

// Locate looks up ip. Private, malformed and unknown addresses miss.
func (r *Reader) Locate(_ context.Context, ip string) (dream.Location, bool) {
	addr := net.ParseIP(ip)
	if addr == nil || addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() {
		return dream.Location{}, false
	}
	rec, err := r.db.City(addr)
	if err != nil || rec == nil {
		return dream.Location{}, false
	}
	lat, lng := rec.Location.Latitude, rec.Location.Longitude
	if lat == 0 && lng == 0 {
		return dream.Location{}, false
	}
	return dream.Location{Lat: lat, Lng: lng}, true
}

// Close releases the database
func (r *Reader) Close() error { return r.db.Close() }
