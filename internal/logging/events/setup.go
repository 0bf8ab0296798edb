package events

import "github.com/he3als/windows-no-usb/internal/logging"

type SetupTracer struct{}

var Setup = SetupTracer{}

func (SetupTracer) Stage(name string) {
	logging.Trace("setup.stage", map[string]interface{}{"stage": name})
}

func (SetupTracer) Mounted(image, root string) {
	logging.Trace("setup.mounted", map[string]interface{}{"image": image, "root": root})
}

func (SetupTracer) Dismounted(image string) {
	logging.Trace("setup.dismounted", map[string]interface{}{"image": image})
}

func (SetupTracer) Editions(image string, count int) {
	logging.Trace("setup.editions", map[string]interface{}{"image": image, "count": count})
}

func (SetupTracer) EditionChosen(name string, index int, via string) {
	logging.Trace("setup.edition-chosen", map[string]interface{}{
		"name":  name,
		"index": index,
		"via":   via,
	})
}

func (SetupTracer) Applied(image string, index int, target string) {
	logging.Trace("setup.applied", map[string]interface{}{
		"image":  image,
		"index":  index,
		"target": target,
	})
}

func (SetupTracer) StepDone(step string) {
	logging.Trace("setup.step-done", map[string]interface{}{"step": step})
}

func (SetupTracer) Error(stage string, err error) {
	if err == nil {
		return
	}
	logging.Trace("setup.error", map[string]interface{}{"stage": stage, "error": err.Error()})
}
