package app

import (
	"github.com/he3als/windows-no-usb/internal/setup"
)

// ErrCanceled reports that the user left the flow before the image was
// applied.
var ErrCanceled = setup.ErrCanceled

// Config describes user-provided application options.
type Config struct {
	ISOPath      string
	Target       string
	Edition      string
	UnattendPath string
	Width        int
	Height       int
	ShowFooter   bool
	Sort         bool
	Verbose      bool
}

// Run drives the guided setup flow against the host tool set.
func Run(cfg Config) error {
	flow := setup.NewFlow(setup.NewCommandTools(), setup.Options{
		ISOPath:      cfg.ISOPath,
		Target:       cfg.Target,
		Edition:      cfg.Edition,
		UnattendPath: cfg.UnattendPath,
		MenuWidth:    cfg.Width,
		MenuHeight:   cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Sort:         cfg.Sort,
		Verbose:      cfg.Verbose,
	})
	return flow.Run()
}
