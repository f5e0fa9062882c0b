// Package service contains dream submission and listing workflows
package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
	"unicode/utf8"

	"dreammap/internal/adapters/analytics"
	"dreammap/internal/adapters/geoip"
	"dreammap/internal/core/classify"
	"dreammap/internal/core/dream"
	"dreammap/internal/core/fuzz"
	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/logger"
	pnet "dreammap/internal/platform/net"
	"dreammap/internal/services/api/dreams/domain"
	"dreammap/internal/services/api/dreams/repo"
	rldomain "dreammap/internal/services/api/ratelimit/domain"

	"github.com/google/uuid"
)

// Service defines the dreams service contract
type Service interface {
	domain.ServicePort
	domain.Source
}

// Svc implements the dreams service
type Svc struct {
	Repo    repo.Repo
	Limiter rldomain.ServicePort

	classifier classify.Classifier
	fuzzer     *fuzz.Fuzzer
	locator    geoip.Locator
	events     analytics.Publisher
	maxRunes   int
	now        func() time.Time
	newID      func() string

	// owners serializes check-then-insert per identity
	owners [64]sync.Mutex
}

// Option tunes a Svc
type Option func(*Svc)

// WithClassifier sets the primary classifier; keyword rules remain the fallback
func WithClassifier(c classify.Classifier) Option {
	return func(s *Svc) {
		s.classifier = classify.Fallback{
			Primary: c,
			OnError: func(err error) {
				logger.Named("dreams").Warn().Err(err).Msg("primary classifier failed, using keywords")
			},
		}
	}
}

// WithFuzzer replaces the location fuzzer
func WithFuzzer(f *fuzz.Fuzzer) Option { return func(s *Svc) { s.fuzzer = f } }

// WithLocator sets the ip geolocation fallback
func WithLocator(l geoip.Locator) Option { return func(s *Svc) { s.locator = l } }

// WithEvents sets the analytics publisher
func WithEvents(p analytics.Publisher) Option { return func(s *Svc) { s.events = p } }

// WithMaxRunes bounds sanitized text length
func WithMaxRunes(n int) Option { return func(s *Svc) { s.maxRunes = n } }

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option { return func(s *Svc) { s.now = now } }

// WithIDs replaces uuid generation
func WithIDs(fn func() string) Option { return func(s *Svc) { s.newID = fn } }

// New constructs a dreams service
func New(r repo.Repo, limiter rldomain.ServicePort, opts ...Option) *Svc {
	if r == nil {
		panic("dreams.Service requires a non nil Repo")
	}
	if limiter == nil {
		panic("dreams.Service requires a non nil limiter")
	}
	s := &Svc{
		Repo:       r,
		Limiter:    limiter,
		classifier: classify.Keyword{},
		fuzzer:     fuzz.New(nil),
		locator:    geoip.Nop{},
		events:     analytics.Nop{},
		maxRunes:   domain.DefaultMaxRunes,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Svc) lock(owner string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(owner))
	mu := &s.owners[h.Sum32()%uint32(len(s.owners))]
	mu.Lock()
	return mu.Unlock
}

// Submit classifies, fuzzes and stores a dream for owner
func (s *Svc) Submit(ctx context.Context, owner string, in domain.SubmitInput) (domain.Submission, error) {
	if owner == "" {
		return domain.Submission{}, perr.Unauthorizedf("missing dreamer id")
	}
	text := Sanitize(in.Text)
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		return domain.Submission{}, perr.WithField(perr.Validationf("text must not be blank"), "text")
	case n > s.maxRunes:
		return domain.Submission{}, perr.WithField(perr.Validationf("text must be at most %d characters", s.maxRunes), "text")
	}

	unlock := s.lock(owner)
	defer unlock()

	st, err := s.Limiter.Status(ctx, owner)
	if err != nil {
		return domain.Submission{}, err
	}
	if st.IsLimited {
		err := perr.TooManyf("dream limit reached: %d per %s", s.Limiter.Policy().MaxCount, s.Limiter.Policy().Window)
		if st.CooldownUntil != nil {
			err = perr.WithDetail(err, "cooldown_until", st.CooldownUntil.UTC())
		}
		return domain.Submission{}, err
	}

	a, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return domain.Submission{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "classify dream")
	}

	origin := s.origin(ctx, in)
	rec := dream.Record{
		ID:             s.newID(),
		Text:           text,
		Category:       a.Category,
		Summary:        a.Summary,
		Interpretation: a.Interpretation,
		Timestamp:      s.now().UnixMilli(),
		Location:       s.fuzzer.Apply(origin.Lat, origin.Lng),
		OwnerID:        owner,
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return domain.Submission{}, perr.WithOp(err, "dreams.submit")
	}

	log := logger.C(ctx)
	if err := s.Limiter.Record(ctx, owner, rec.Time()); err != nil {
		log.Warn().Err(err).Str("dream_id", rec.ID).Msg("ratelimit record failed")
	}
	if err := s.events.Publish(ctx, rec); err != nil {
		log.Warn().Err(err).Str("dream_id", rec.ID).Msg("analytics publish failed")
	}

	after, err := s.Limiter.Status(ctx, owner)
	if err != nil {
		log.Warn().Err(err).Msg("ratelimit refresh failed")
		after = st
		after.Remaining = max(st.Remaining-1, 0)
	}
	log.Info().Str("dream_id", rec.ID).Str("category", string(rec.Category)).Msg("dream accepted")

	return domain.Submission{Dream: rec, RateLimit: rldomain.FromCore(after, s.Limiter.Policy())}, nil
}

// origin prefers the caller's coordinates, then geoip, then anywhere
func (s *Svc) origin(ctx context.Context, in domain.SubmitInput) dream.Location {
	if in.Lat != nil && in.Lng != nil {
		return dream.Location{Lat: *in.Lat, Lng: *in.Lng}
	}
	if ip := pnet.ClientIP(ctx); ip != "" {
		if loc, ok := s.locator.Locate(ctx, ip); ok {
			return loc
		}
	}
	return s.fuzzer.Random()
}

// List returns the newest dreams, optionally for one category
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]dream.Record, error) {
	if in.Category != "" && !in.Category.Valid() {
		return nil, perr.WithField(perr.InvalidArgf("unknown category %q", in.Category), "category")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	limit = min(limit, domain.MaxListLimit)
	return s.Repo.List(ctx, repo.Filter{Category: in.Category, Limit: limit})
}

// Recent implements domain.Source
func (s *Svc) Recent(ctx context.Context, limit int) ([]dream.Record, error) {
	return s.List(ctx, domain.ListInput{Limit: limit})
}

// Categories lists category metadata in declaration order
func (s *Svc) Categories() []dream.Info { return dream.Catalog() }
