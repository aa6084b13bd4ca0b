// Package logger configures the standard logger for the process.
package logger

import (
	"log"
	"os"
	"path/filepath"
)

// LogDir is where prod logs are written, relative to the working directory.
var LogDir = "logs"

// Setup points the standard logger at stdout outside prod and at
// LogDir/contentd.log in prod. The returned func closes the log file.
func Setup(env string) func() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	if env != "prod" {
		log.SetOutput(os.Stdout)
		return func() {}
	}

	if err := os.MkdirAll(LogDir, 0o755); err != nil {
		log.Printf("[logger] failed to create log dir, fallback to stdout: %v", err)
		log.SetOutput(os.Stdout)
		return func() {}
	}

	logPath := filepath.Join(LogDir, "contentd.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[logger] failed to open log file, fallback to stdout: %v", err)
		log.SetOutput(os.Stdout)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stdout)
		_ = f.Close()
	}
}
