package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "dreammap/internal/platform/testkit"
)

func TestPrefixAndName(t *testing.T) {
	api := New().Prefix("CORE_").Prefix("API_")
	if got := api.Name("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("Name() = %q, want %q", got, "CORE_API_PORT")
	}
}

func TestMust(t *testing.T) {
	c := FromMap(map[string]string{
		"APP_NAME": "  dreammap ",
		"APP_N":    " 8 ",
		"APP_BAD":  "x",
		"APP_PORT": "4000",
		"APP_OOB":  "70000",
	}).Prefix("APP_")

	if got := c.MustString("NAME"); got != "dreammap" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("N"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
	kit.MustPanic(t, func() { _ = c.MustPort("OOB") })
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
}

func TestMay(t *testing.T) {
	c := FromMap(map[string]string{
		"X_INT":   "7",
		"X_BADI":  "seven",
		"X_F":     "0.5",
		"X_BADF":  "half",
		"X_B":     "true",
		"X_BADB":  "maybe",
		"X_D":     "150ms",
		"X_BADD":  "soon",
		"X_CSV":   " a, b , ,c ",
		"X_BLANK": " , , ",
		"X_WS":    "   ",
	}).Prefix("X_")

	if c.MayString("MISSING", "def") != "def" || c.MayString("WS", "def") != "def" {
		t.Fatalf("MayString default mismatch")
	}
	if c.MayInt("INT", 0) != 7 || c.MayInt("BADI", 3) != 3 || c.MayInt("MISSING", 9) != 9 {
		t.Fatalf("MayInt mismatch")
	}
	if c.MayFloat64("F", 0) != 0.5 || c.MayFloat64("BADF", 1.5) != 1.5 {
		t.Fatalf("MayFloat64 mismatch")
	}
	if !c.MayBool("B", false) || c.MayBool("BADB", false) || !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool mismatch")
	}
	if c.MayDuration("D", time.Second) != 150*time.Millisecond || c.MayDuration("BADD", time.Minute) != time.Minute {
		t.Fatalf("MayDuration mismatch")
	}
	got := c.MayCSV("CSV", nil)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("MayCSV = %#v", got)
	}
	if got := c.MayCSV("BLANK", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV blank = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := FromMap(map[string]string{"E_BACKEND": "Redis", "E_BAD": "etcd"}).Prefix("E_")
	if got := c.MayEnum("BACKEND", "pg", "pg", "redis", "memory"); got != "redis" {
		t.Fatalf("MayEnum = %q, want redis", got)
	}
	if got := c.MayEnum("MISSING", "pg", "pg", "redis"); got != "pg" {
		t.Fatalf("MayEnum default = %q", got)
	}
	if got := c.MayEnum("MISSING", "", "pg"); got != "" {
		t.Fatalf("MayEnum empty default = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "pg", "pg", "redis") })
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("CORE_TEST_VALUE", " 12 ")
	if got := New().Prefix("CORE_TEST_").MayInt("VALUE", 0); got != 12 {
		t.Fatalf("MayInt from env = %d", got)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("DREAMMAP_DOTENV_A=from-file\nDREAMMAP_DOTENV_B=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DREAMMAP_DOTENV_B", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("DREAMMAP_DOTENV_A") })

	loaded, err := LoadDotenv(filepath.Join(dir, "missing.env"), path)
	if err != nil {
		t.Fatalf("LoadDotenv error: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != path {
		t.Fatalf("loaded = %#v", loaded)
	}
	if os.Getenv("DREAMMAP_DOTENV_A") != "from-file" {
		t.Fatalf("file value not loaded")
	}
	if os.Getenv("DREAMMAP_DOTENV_B") != "from-env" {
		t.Fatalf("existing env must not be overridden")
	}
}
