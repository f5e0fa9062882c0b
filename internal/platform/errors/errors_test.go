package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if got := ErrorCodeTooManyRequests.String(); got != "too_many_requests" {
		t.Fatalf("String() = %q", got)
	}
	if got := ErrorCode(999).String(); got != "code(999)" {
		t.Fatalf("String() unknown = %q", got)
	}
}

func TestErrorRendering(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", e.Error())
	}
	src := stderrs.New("root")
	err := WithOp(Wrapf(src, ErrorCodeDB, "insert %s", "dream"), "dreams.create")
	if want := "dreams.create: insert dream: root"; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if w := WireFrom(err); w.Message != "insert dream" || w.Code != ErrorCodeDB {
		t.Fatalf("wire = %+v", w)
	}
}

func TestCopyOnWrite(t *testing.T) {
	base := New(ErrorCodeValidation, "bad text")
	withField := WithField(base, "text")
	withDetail := WithDetail(withField, "max", 2000)
	withMore := WithDetail(withDetail, "min", 1)

	if b, _ := As(base); b.Field() != "" || b.Details() != nil {
		t.Fatalf("base mutated: %+v", b)
	}
	d, _ := As(withDetail)
	if d.Field() != "text" || len(d.Details()) != 1 {
		t.Fatalf("withDetail = %+v", d)
	}
	m, _ := As(withMore)
	if len(m.Details()) != 2 {
		t.Fatalf("withMore details = %v", m.Details())
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign || WithDetail(foreign, "k", 1) != foreign {
		t.Fatalf("foreign errors must pass through")
	}
}

func TestWire(t *testing.T) {
	if w := WireFrom(nil); w.Code != 0 || w.Message != "" {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
	if w := WireFrom(stderrs.New("boom")); w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("WireFrom(foreign) = %+v", w)
	}
	err := WithDetail(TooManyf("daily limit reached"), "cooldown_until", int64(42))
	st, w := HTTP(fmt.Errorf("handler: %w", err))
	if st != http.StatusTooManyRequests || w.Details["cooldown_until"] != int64(42) {
		t.Fatalf("HTTP = %d %+v", st, w)
	}
	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) = %d", st)
	}
}

func TestSugar(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{Validationf("x"), ErrorCodeValidation},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Unauthorizedf("x"), ErrorCodeUnauthorized},
		{TooManyf("x"), ErrorCodeTooManyRequests},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("%v: code = %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
	if IsCode(nil, ErrorCodeUnknown) {
		t.Fatalf("IsCode(nil) must be false")
	}
	if WrapIf(nil, ErrorCodeDB, "x") != nil || WrapIf(stderrs.New("y"), ErrorCodeDB, "x") == nil {
		t.Fatalf("WrapIf mismatch")
	}
}

func TestRoot(t *testing.T) {
	src := stderrs.New("root")
	deep := fmt.Errorf("l2: %w", Wrap(fmt.Errorf("l1: %w", src), ErrorCodeDB, "db"))
	if Root(deep) != src {
		t.Fatalf("Root = %v", Root(deep))
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
}
