package events

import "github.com/he3als/windows-no-usb/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) SessionStart(title string, entries int, multiSelect bool) {
	logging.Trace("menu.session-start", map[string]interface{}{
		"title":       title,
		"entries":     entries,
		"multiSelect": multiSelect,
	})
}

func (MenuTracer) Cursor(title string, page, row int) {
	logging.Trace("menu.cursor", map[string]interface{}{"title": title, "page": page, "row": row})
}

func (MenuTracer) Page(title string, page int) {
	logging.Trace("menu.page", map[string]interface{}{"title": title, "page": page})
}

func (MenuTracer) Descend(parent, child string, depth int) {
	logging.Trace("menu.descend", map[string]interface{}{
		"parent": parent,
		"child":  child,
		"depth":  depth,
	})
}

func (MenuTracer) Return(parent string, depth int) {
	logging.Trace("menu.return", map[string]interface{}{"parent": parent, "depth": depth})
}

func (MenuTracer) Toggle(title, label string, selected bool) {
	logging.Trace("menu.toggle", map[string]interface{}{
		"title":    title,
		"label":    label,
		"selected": selected,
	})
}

func (MenuTracer) SelectAll(title string, count int) {
	logging.Trace("menu.select-all", map[string]interface{}{"title": title, "count": count})
}

func (MenuTracer) ClearSelection(title string) {
	logging.Trace("menu.clear-selection", map[string]interface{}{"title": title})
}

func (MenuTracer) Confirm(title string, labels []string) {
	logging.Trace("menu.confirm", map[string]interface{}{"title": title, "labels": labels})
}

func (MenuTracer) Cancel(title string) {
	logging.Trace("menu.cancel", map[string]interface{}{"title": title})
}
