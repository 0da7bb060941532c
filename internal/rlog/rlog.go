// Package rlog is a minimal leveled logger on top of the standard log package.
package rlog

import (
	"io"
	"log"
	"os"
)

var (
	// DebugEnabled turns Debug output on. It is off by default.
	DebugEnabled = false

	std = log.New(os.Stderr, "", log.LstdFlags)
)

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Debug(format string, v ...interface{}) {
	if DebugEnabled {
		std.Printf("[DEBUG] "+format, v...)
	}
}

func Error(format string, v ...interface{}) {
	std.Printf("[ERROR] "+format, v...)
}
