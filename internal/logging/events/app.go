package events

import "github.com/he3als/windows-no-usb/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(code int) {
	logging.Trace("app.exit", map[string]interface{}{"code": code})
}
