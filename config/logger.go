package config

import (
	"github.com/MonkyMars/gecho"
)

var logger gecho.Logger

// InitializeLogger builds the process-wide logger. Call once from main.
func InitializeLogger() *gecho.Logger {
	logger = *gecho.NewDefaultLogger()
	return &logger
}

func GetLogger() *gecho.Logger {
	return &logger
}

// NewRequestLogger is the logger used by HTTP middleware; caller info is
// noise there since every line originates from the same wrapper.
func NewRequestLogger() *gecho.Logger {
	level := gecho.ParseLogLevel(GetLogLevel())
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(level)))
}

// NewServiceLogger carries caller info so service errors point at the call
// site.
func NewServiceLogger() *gecho.Logger {
	level := gecho.ParseLogLevel(GetLogLevel())
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(level)))
}
