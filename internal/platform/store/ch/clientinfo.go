package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo describes this process to the server (system.query_log)
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	host, _ := os.Hostname()
	type product = struct{ Name, Version string }
	return clickhouse.ClientInfo{Products: []product{
		{Name: "dreammap", Version: strings.TrimSpace(tag)},
		{Name: "role", Version: strings.TrimSpace(role)},
		{Name: "go", Version: runtime.Version()},
		{Name: "commit", Version: shortSHA()},
		{Name: "host", Version: host},
	}}
}

func shortSHA() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}
