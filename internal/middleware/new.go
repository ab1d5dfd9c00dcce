package middleware

import (
	"project-dashboard/pkg/log"
	"project-dashboard/pkg/telemetry"
)

type Middleware struct {
	l        log.Logger
	reporter *telemetry.Reporter
}

func New(l log.Logger, reporter *telemetry.Reporter) Middleware {
	return Middleware{
		l:        l,
		reporter: reporter,
	}
}
