package buildinfo

import (
	"runtime"
	"testing"
)

func TestInfo(t *testing.T) {
	old := Version
	Version = "1.2.3"
	defer func() { Version = old }()
	info := Info()
	if info["version"] != "1.2.3" || info["go"] != runtime.Version() {
		t.Fatalf("info: %v", info)
	}
}
