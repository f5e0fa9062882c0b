package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " dreammap-api ")
	log := New().Prefix("LOG_")
	if got := log.Get("SERVICE", "x"); got != "dreammap-api" {
		t.Fatalf("Get = %q", got)
	}
	if got := log.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("RAWB_")
	t.Setenv("RAWB_A", "YES")
	t.Setenv("RAWB_B", " on ")
	t.Setenv("RAWB_C", "0")
	t.Setenv("RAWB_D", "nah")

	cases := []struct {
		key  string
		def  bool
		want bool
	}{
		{"A", false, true},
		{"B", false, true},
		{"C", true, false},
		{"D", true, false},
		{"MISSING", true, true},
	}
	for _, tc := range cases {
		if got := c.GetBool(tc.key, tc.def); got != tc.want {
			t.Fatalf("GetBool(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RAWI_")
	t.Setenv("RAWI_OK", " 42 ")
	t.Setenv("RAWI_NEG", "-5")
	t.Setenv("RAWI_BAD", "12x")

	cases := []struct {
		key  string
		def  int
		want int
	}{
		{"OK", 0, 42},
		{"NEG", 3, 3},
		{"BAD", 9, 9},
		{"MISSING", 11, 11},
	}
	for _, tc := range cases {
		if got := c.GetInt(tc.key, tc.def); got != tc.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tc.key, got, tc.want)
		}
	}
}
