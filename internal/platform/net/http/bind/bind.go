// Package bind decodes and validates JSON request bodies and query strings
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// Validator holds the validator and its english translator
type Validator struct {
	V     *validator.Validate
	Trans ut.Translator
}

var (
	once sync.Once
	svc  *Validator
)

// Get returns the validator singleton
func Get() *Validator {
	once.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		translate(v, trans, "min", "{0} must be at least {1}", true)
		translate(v, trans, "max", "{0} must be at most {1}", true)

		_ = v.RegisterValidation("notblank", func(fl FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		translate(v, trans, "notblank", "{0} must not be blank", false)

		svc = &Validator{V: v, Trans: trans}
	})
	return svc
}

// Register adds a custom tag with a short message; "{0}" is the field name
func Register(tag, message string, fn validator.Func) error {
	s := Get()
	if err := s.V.RegisterValidation(tag, fn); err != nil {
		return err
	}
	translate(s.V, s.Trans, tag, message, false)
	return nil
}

// Struct validates v and returns a validation error naming the first field
func Struct(v any) error {
	err := Get().V.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Trans)
	}
	if err == nil {
		return "", ""
	}
	return "", err.Error()
}

// MaxBodyBytes caps decoded bodies
const MaxBodyBytes int64 = 1 << 20

// ParseJSON decodes exactly one JSON value into T and validates it. Unknown
// fields are rejected.
func ParseJSON[T any](r *http.Request) (T, error) {
	var dst T
	if r.Body == nil || r.Body == http.NoBody {
		return dst, perr.JSONErrf("empty body")
	}
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dst, perr.JSONErrf("empty body")
		}
		return dst, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	if err := Struct(dst); err != nil {
		return dst, err
	}
	return dst, nil
}

// QueryInt reads an optional integer query parameter
func QueryInt(q url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, perr.WithField(perr.InvalidArgf("%s must be an integer", key), key)
	}
	return n, nil
}

func jsonName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "" || tag == "-" {
		return fld.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return fld.Name
	}
	return name
}

func translate(v *validator.Validate, trans ut.Translator, tag, text string, override bool) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
