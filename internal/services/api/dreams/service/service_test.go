package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dreammap/internal/adapters/analytics"
	"dreammap/internal/core/classify"
	"dreammap/internal/core/dream"
	"dreammap/internal/core/fuzz"
	"dreammap/internal/core/ratelimit"
	perr "dreammap/internal/platform/errors"
	pnet "dreammap/internal/platform/net"
	kit "dreammap/internal/platform/testkit"
	"dreammap/internal/services/api/dreams/domain"
	"dreammap/internal/services/api/dreams/repo"
	rlrepo "dreammap/internal/services/api/ratelimit/repo"
	rlsvc "dreammap/internal/services/api/ratelimit/service"
)

const owner = "3f0c7a52-8d8e-4a73-9c2b-5d1b6a8e2f10"

type fixture struct {
	svc    *Svc
	store  *repo.Memory
	clock  *kit.Clock
	events *recorder
}

type recorder struct{ got []dream.Record }

func (r *recorder) Publish(_ context.Context, recs ...dream.Record) error {
	r.got = append(r.got, recs...)
	return nil
}

type fixedLocator struct {
	loc dream.Location
	ip  string
}

func (f *fixedLocator) Locate(_ context.Context, ip string) (dream.Location, bool) {
	f.ip = ip
	return f.loc, true
}

type failing struct{}

func (failing) Classify(context.Context, string) (classify.Analysis, error) {
	return classify.Analysis{}, errors.New("model offline")
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()
	clock := kit.NewClock(time.UnixMilli(1_700_000_000_000))
	p := ratelimit.DefaultPolicy()
	limiter := rlsvc.New(rlrepo.NewMemory(p.Window), p, clock.Now)
	store := repo.NewMemory()
	events := &recorder{}
	n := 0
	base := []Option{
		WithClock(clock.Now),
		WithFuzzer(fuzz.Seeded(7, 7)),
		WithEvents(events),
		WithIDs(func() string { n++; return "dream-" + string(rune('0'+n)) }),
	}
	return fixture{
		svc:    New(store, limiter, append(base, opts...)...),
		store:  store,
		clock:  clock,
		events: events,
	}
}

func ptr(v float64) *float64 { return &v }

func TestNewPanics(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, nil) })
	kit.MustPanic(t, func() { New(repo.NewMemory(), nil) })
}

func TestSubmitStoresFuzzedRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.svc.Submit(ctx, owner, domain.SubmitInput{
		Text: "  I was being chased by a monster\x00 ",
		Lat:  ptr(48.8566),
		Lng:  ptr(2.3522),
	})
	if err != nil {
		t.Fatal(err)
	}
	rec := out.Dream
	if rec.ID != "dream-1" || rec.OwnerID != owner {
		t.Fatalf("record %+v", rec)
	}
	if rec.Text != "I was being chased by a monster" {
		t.Fatalf("text %q", rec.Text)
	}
	if rec.Category != dream.Nightmare {
		t.Fatalf("category %s", rec.Category)
	}
	if rec.Timestamp != f.clock.Now().UnixMilli() {
		t.Fatalf("timestamp %d", rec.Timestamp)
	}
	dl := rec.Location.Lat - 48.8566
	dg := rec.Location.Lng - 2.3522
	for _, d := range []float64{dl, dg} {
		if d < 0 {
			d = -d
		}
		if d < fuzz.MinOffset || d >= fuzz.MaxOffset {
			t.Fatalf("offset %v outside fuzz bounds", d)
		}
	}
	if out.RateLimit.Remaining != 1 || out.RateLimit.IsLimited {
		t.Fatalf("rate limit %+v", out.RateLimit)
	}
	if f.store.Len() != 1 || len(f.events.got) != 1 {
		t.Fatalf("stored %d published %d", f.store.Len(), len(f.events.got))
	}
}

func TestSubmitQuota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := domain.SubmitInput{Text: "laundry again"}

	first := f.clock.Now()
	for i := 0; i < 2; i++ {
		if _, err := f.svc.Submit(ctx, owner, in); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		f.clock.Advance(time.Minute)
	}

	_, err := f.svc.Submit(ctx, owner, in)
	if !perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
		t.Fatalf("want too many requests, got %v", err)
	}
	e, _ := perr.As(err)
	until, ok := e.Details()["cooldown_until"].(time.Time)
	if !ok || !until.Equal(first.Add(24*time.Hour)) {
		t.Fatalf("cooldown %v", e.Details())
	}
	if f.store.Len() != 2 {
		t.Fatalf("limited submission was stored")
	}

	// another dreamer is unaffected
	if _, err := f.svc.Submit(ctx, "other", in); err != nil {
		t.Fatal(err)
	}

	f.clock.Set(first.Add(24 * time.Hour))
	if _, err := f.svc.Submit(ctx, owner, in); err != nil {
		t.Fatalf("after cooldown: %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	f := newFixture(t, WithMaxRunes(10))
	ctx := context.Background()
	cases := []struct {
		name  string
		owner string
		text  string
		code  perr.ErrorCode
	}{
		{"no owner", "", "dream", perr.ErrorCodeUnauthorized},
		{"blank after sanitize", owner, "\u200b\x00", perr.ErrorCodeValidation},
		{"too long", owner, strings.Repeat("é", 11), perr.ErrorCodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Submit(ctx, tc.owner, domain.SubmitInput{Text: tc.text})
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("want %s, got %v", tc.code, err)
			}
		})
	}
	if _, err := f.svc.Submit(ctx, owner, domain.SubmitInput{Text: strings.Repeat("é", 10)}); err != nil {
		t.Fatalf("rune bound is inclusive: %v", err)
	}
}

func TestSubmitOriginFallbacks(t *testing.T) {
	loc := &fixedLocator{loc: dream.Location{Lat: -33.8688, Lng: 151.2093}}
	f := newFixture(t, WithLocator(loc))
	ctx := pnet.WithClientIP(context.Background(), "203.0.113.9")

	out, err := f.svc.Submit(ctx, owner, domain.SubmitInput{Text: "quiet beach"})
	if err != nil {
		t.Fatal(err)
	}
	if loc.ip != "203.0.113.9" {
		t.Fatalf("locator saw %q", loc.ip)
	}
	if d := out.Dream.Location.Lat + 33.8688; d > fuzz.MaxOffset || d < -fuzz.MaxOffset {
		t.Fatalf("not near geoip origin: %+v", out.Dream.Location)
	}

	// explicit coordinates win over geoip
	loc.ip = ""
	if _, err := f.svc.Submit(ctx, owner, domain.SubmitInput{Text: "beach", Lat: ptr(0), Lng: ptr(0)}); err != nil {
		t.Fatal(err)
	}
	if loc.ip != "" {
		t.Fatal("locator consulted despite coordinates")
	}
}

func TestSubmitPrimaryClassifierFallsBack(t *testing.T) {
	f := newFixture(t, WithClassifier(failing{}))
	out, err := f.svc.Submit(context.Background(), owner, domain.SubmitInput{Text: "I could fly through space"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Dream.Category != dream.Adventure || out.Dream.Interpretation != classify.DefaultInterpretation {
		t.Fatalf("fallback analysis %+v", out.Dream)
	}
}

func TestListLimits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, r := range repo.Seed(f.clock.Now(), nil) {
		_ = f.store.Insert(ctx, r)
	}

	all, err := f.svc.List(ctx, domain.ListInput{})
	if err != nil || len(all) != 5 {
		t.Fatalf("list %d %v", len(all), err)
	}
	one, _ := f.svc.List(ctx, domain.ListInput{Limit: 1})
	if len(one) != 1 || one[0].ID != "seed-5" {
		t.Fatalf("newest %+v", one)
	}
	huge, _ := f.svc.List(ctx, domain.ListInput{Limit: 10_000})
	if len(huge) != 5 {
		t.Fatalf("huge %d", len(huge))
	}
	_, err = f.svc.List(ctx, domain.ListInput{Category: "Bogus"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid arg, got %v", err)
	}

	recent, _ := f.svc.Recent(ctx, 3)
	if len(recent) != 3 {
		t.Fatalf("recent %d", len(recent))
	}
	if len(f.svc.Categories()) != dream.Count {
		t.Fatal("catalog size")
	}
}

var _ analytics.Publisher = (*recorder)(nil)
