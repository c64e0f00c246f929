package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Settings struct {
	LogDir        string        // logs directory
	Addr          string        // status API bind address; empty disables the API
	APIKeys       []string      // static keys for the status API; empty means open
	CheckInterval time.Duration // pause between sweeps
	ProbeTimeout  time.Duration // per-probe HTTP timeout
}

func FromEnv() Settings {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	addr := os.Getenv("API_ADDR")

	interval := 15 * time.Second
	if v := os.Getenv("CHECK_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	timeout := 500 * time.Millisecond
	if v := os.Getenv("PROBE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return Settings{
		LogDir:        logDir,
		Addr:          addr,
		APIKeys:       splitKeys(os.Getenv("API_KEYS")),
		CheckInterval: interval,
		ProbeTimeout:  timeout,
	}
}

func splitKeys(v string) []string {
	var out []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
