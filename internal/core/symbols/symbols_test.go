package symbols

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"I saw a blue whale", []string{"blue", "whale"}},
		{"  The GLASS-and-water city!!  ", []string{"glassandwater", "city"}},
		{"(neon) {lights}; forever~", []string{"neon", "lights", "forever"}},
		{"Dreamed of dragons", []string{"dragons"}},
		{"ox ax it", []string{}},
		{"", []string{}},
		{"café über naïve", []string{"café", "über", "naïve"}},
		{"tabs\tand\nnewlines", []string{"tabs", "newlines"}},
		{"don't stop", []string{"don't", "stop"}},
	}
	for _, c := range cases {
		got := Tokenize(c.in)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Tokenize(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestTokenize_RuneLength(t *testing.T) {
	// two runes, four bytes
	if got := Tokenize("éé"); len(got) != 0 {
		t.Fatalf("two-rune token should be dropped, got %#v", got)
	}
}

func TestTrending_BlueWhale(t *testing.T) {
	got := Trending([]string{"I saw a blue whale", "A blue whale swam"}, 5)
	want := []Symbol{{"#blue", 2}, {"#whale", 2}, {"#swam", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Trending = %#v, want %#v", got, want)
	}
}

func TestTrending_StableTies(t *testing.T) {
	got := Trending([]string{"zebra apple mango", "mango"}, 3)
	want := []Symbol{{"#mango", 2}, {"#zebra", 1}, {"#apple", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Trending = %#v, want %#v", got, want)
	}
}

func TestTrending_Limit(t *testing.T) {
	texts := []string{"alpha bravo charlie delta echo foxtrot"}
	if got := Trending(texts, DefaultLimit); len(got) != DefaultLimit {
		t.Fatalf("len = %d, want %d", len(got), DefaultLimit)
	}
	if got := Trending(texts, 0); got == nil || len(got) != 0 {
		t.Fatalf("limit 0 should give a non-nil empty slice, got %#v", got)
	}
	if got := Trending(nil, 4); got == nil || len(got) != 0 {
		t.Fatalf("no texts should give a non-nil empty slice, got %#v", got)
	}
}

func TestCounter_TopDoesNotMutate(t *testing.T) {
	c := NewCounter()
	c.Add("river river stone")
	first := c.Top(2)
	second := c.Top(2)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Top not repeatable: %#v vs %#v", first, second)
	}
	if first[0].Word != "#river" || first[0].Count != 2 {
		t.Fatalf("Top[0] = %#v", first[0])
	}
}
