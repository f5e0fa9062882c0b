// Package time converts between time.Time and the millisecond timestamps
// used on the wire and in storage
package time

import "time"

// Millis returns t as milliseconds since the Unix epoch
func Millis(t time.Time) int64 { return t.UnixMilli() }

// FromMillis returns the instant ms milliseconds after the epoch, in UTC
func FromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// MillisPtr returns nil for nil t, otherwise its milliseconds
func MillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// Ptr returns nil for the zero time, otherwise &t
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
