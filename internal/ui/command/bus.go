package command

import (
	"fmt"

	"github.com/he3als/windows-no-usb/internal/logging/events"
	"github.com/he3als/windows-no-usb/internal/menu"
)

// Request names one command invocation: the entry label it came from and
// the command string to run.
type Request struct {
	Label   string
	Command string
}

// Bus funnels every command a menu session runs through one place so the
// invocations are traced uniformly. Execution is synchronous: the menu
// loop has no background work, and a command's outcome must be known
// before the next key event is interpreted.
type Bus struct {
	invoker menu.Invoker
}

// New initialises a bus around the session's invoker, which may be nil
// for sessions whose entries carry no commands.
func New(invoker menu.Invoker) *Bus {
	return &Bus{invoker: invoker}
}

// Execute runs one command through the invoker while emitting trace
// logs. Invoker failures are returned unmodified; the bus only schedules
// the call.
func (b *Bus) Execute(req Request) (any, error) {
	if b.invoker == nil {
		events.Command.Skip(req.Label, req.Command)
		return nil, fmt.Errorf("no invoker configured for command %q", req.Command)
	}
	events.Command.Invoke(req.Label, req.Command)
	out, err := b.invoker(req.Command)
	if err != nil {
		events.Command.Error(req.Label, err)
		return nil, err
	}
	events.Command.Result(req.Label, fmt.Sprintf("%T", out))
	return out, nil
}
