package version

import "testing"

func TestInfo(t *testing.T) {
	bi := Info("dreammap-api")
	if bi.Service != "dreammap-api" {
		t.Fatalf("service %q", bi.Service)
	}
	if bi.Version != "dev" {
		t.Fatalf("version %q", bi.Version)
	}
	if bi.Commit == "" || bi.Date == "" {
		t.Fatalf("empty fields: %+v", bi)
	}
}
