package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

const userAgentContact = "(by /u/osirian and /u/gchicha)"

type runFunc func(name string, args ...string) ([]byte, error)

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// OSRelease reports the kernel release, falling back to GOOS when uname is
// unavailable.
func OSRelease() string {
	return osRelease(runtime.GOOS, runCommand)
}

func osRelease(goos string, run runFunc) string {
	if goos == "windows" {
		return goos
	}
	out, err := run("uname", "-r")
	if err != nil {
		return goos
	}
	release := strings.TrimSpace(string(out))
	if release == "" {
		return goos
	}
	return release
}

// UserAgent follows the <platform>:<app id>:<version> (by ...) convention the
// API asks clients to send.
func UserAgent(release, deviceID, version string) string {
	return fmt.Sprintf("%s:%s:%s %s", release, deviceID, version, userAgentContact)
}
