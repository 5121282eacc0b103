package buildinfo

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// Overridden at link time, e.g.
// -ldflags "-X kucukaslan/hello/buildinfo.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var startTime = time.Now()

type Info struct {
	Version   string        `json:"version"`
	Commit    string        `json:"commit"`
	BuildDate string        `json:"buildDate"`
	GoVersion string        `json:"goVersion"`
	Hostname  string        `json:"hostname"`
	Uptime    time.Duration `json:"uptime"`
}

// GetInfo snapshots the link-time fields together with the host name and the
// time elapsed since the recorded start.
func GetInfo() Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Hostname:  hostname,
		Uptime:    time.Since(startTime),
	}
}

// String renders the build fields on one line.
func String() string {
	return fmt.Sprintf("hello %s (commit=%s, date=%s, %s)", Version, Commit, BuildDate, runtime.Version())
}

// SetStartTime resets the uptime origin. The root command calls it as it starts.
func SetStartTime(t time.Time) {
	startTime = t
}
