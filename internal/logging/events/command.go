package events

import "github.com/he3als/windows-no-usb/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Invoke(label, command string) {
	logging.Trace("command.invoke", map[string]interface{}{"label": label, "command": command})
}

func (CommandTracer) Skip(label, command string) {
	logging.Trace("command.skip", map[string]interface{}{"label": label, "command": command})
}

func (CommandTracer) Result(label string, resultType string) {
	logging.Trace("command.result", map[string]interface{}{"label": label, "result": resultType})
}

func (CommandTracer) Error(label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"label": label, "error": err.Error()})
}
