package setup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/he3als/windows-no-usb/internal/format/table"
	"github.com/he3als/windows-no-usb/internal/logging/events"
	"github.com/he3als/windows-no-usb/internal/menu"
	"github.com/he3als/windows-no-usb/internal/ui"
)

// ErrCanceled reports that the user backed out of the guided flow.
var ErrCanceled = errors.New("setup: canceled")

const (
	enterPathLabel    = "Enter path manually"
	otherLabel        = "Other…"
	rescanLabel       = "Rescan drives"
	chooseVolumeLabel = "Choose another volume"
	cancelSetupLabel  = "Cancel setup"
	keepMountedLabel  = "Keep image mounted"
	unattendLabel     = "Apply unattend answer file"
	bootEntryLabel    = "Add boot entry"
)

// Options configures one run of the guided flow.
type Options struct {
	ISOPath      string
	Target       string
	Edition      string
	UnattendPath string
	MenuWidth    int
	MenuHeight   int
	ShowFooter   bool
	Sort         bool
	Verbose      bool
	Out          io.Writer
}

// Flow walks the guided install: image, mount, edition, target, apply,
// post-install. The menus and prompts are injected so tests can drive
// every stage without a terminal.
type Flow struct {
	tools  Tools
	opts   Options
	out    io.Writer
	show   func(entries any, opts menu.Options) (menu.Result, error)
	prompt func(spec ui.FormSpec) (string, bool, error)

	iso     string
	wim     string
	target  string
	edition Edition
}

// NewFlow builds a flow over the given tool set.
func NewFlow(tools Tools, opts Options) *Flow {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Flow{tools: tools, opts: opts, out: out, show: ui.Show, prompt: ui.Prompt}
}

// Run executes the guided flow from image selection to post-install.
// ErrCanceled comes back when the user abandons a stage.
func (f *Flow) Run() error {
	events.Setup.Stage("image")
	if err := f.resolveImage(); err != nil {
		return err
	}

	events.Setup.Stage("mount")
	root, err := f.tools.Mount(f.iso)
	if err != nil {
		events.Setup.Error("mount", err)
		return err
	}
	events.Setup.Mounted(f.iso, root)
	keepMounted := false
	defer func() {
		if keepMounted {
			return
		}
		if err := f.tools.Dismount(f.iso); err != nil {
			events.Setup.Error("dismount", err)
			fmt.Fprintf(f.out, "Warning: could not dismount %s: %v\n", f.iso, err)
			return
		}
		events.Setup.Dismounted(f.iso)
	}()

	wim, err := locateInstallImage(root)
	if err != nil {
		events.Setup.Error("mount", err)
		return err
	}
	f.wim = wim

	events.Setup.Stage("edition")
	if err := f.chooseEdition(); err != nil {
		return err
	}

	events.Setup.Stage("target")
	if err := f.confirmTarget(); err != nil {
		return err
	}

	events.Setup.Stage("apply")
	if err := f.tools.ApplyImage(f.wim, f.edition.Index, f.target); err != nil {
		events.Setup.Error("apply", err)
		return err
	}
	events.Setup.Applied(f.wim, f.edition.Index, f.target)
	f.printf("Applied %s to %s.\n", f.edition.Name, f.target)

	events.Setup.Stage("post-install")
	keepMounted, err = f.postInstall()
	if err != nil {
		return err
	}
	fmt.Fprintf(f.out, "Done. Reboot to continue Windows Setup from %s.\n", f.target)
	return nil
}

// invoke backs the menus' command entries. Commands that should grow a
// sub-menu return label lists; post-install steps run their tool and
// return nothing.
func (f *Flow) invoke(command string) (any, error) {
	switch command {
	case "rescan-images":
		return f.tools.PickImage()
	case "list-volumes":
		return f.volumeLabels()
	case "apply-unattend":
		if err := f.tools.ApplyUnattend(f.target, f.opts.UnattendPath); err != nil {
			return nil, err
		}
		events.Setup.StepDone("unattend")
		f.printf("Unattend file staged on %s.\n", f.target)
		return nil, nil
	case "add-boot-entry":
		if err := f.tools.AddBootEntry(f.target); err != nil {
			return nil, err
		}
		events.Setup.StepDone("boot-entry")
		f.printf("Boot entry added for %s.\n", f.target)
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

func (f *Flow) menuOptions(title string, multi bool) menu.Options {
	return menu.Options{
		Title:       title,
		Sort:        f.opts.Sort,
		MultiSelect: multi,
		Invoker:     f.invoke,
		Width:       f.opts.MenuWidth,
		Height:      f.opts.MenuHeight,
		ShowFooter:  f.opts.ShowFooter,
	}
}

func (f *Flow) resolveImage() error {
	if f.opts.ISOPath != "" {
		return f.setImage(f.opts.ISOPath)
	}
	candidates, err := f.tools.PickImage()
	if err != nil {
		events.Setup.Error("image", err)
		return f.promptImagePath()
	}
	if len(candidates) == 0 {
		return f.promptImagePath()
	}

	other := menu.NewMapping()
	other.Set(enterPathLabel, nil)
	other.Set(rescanLabel, "@rescan-images")
	entries := menu.NewMapping()
	for _, path := range candidates {
		entries.Set(path, nil)
	}
	entries.Set(otherLabel, other)

	result, err := f.show(entries, f.menuOptions("Install image", false))
	if err != nil {
		return err
	}
	if result.Canceled {
		return ErrCanceled
	}
	if result.Empty() || result.Label() == enterPathLabel {
		return f.promptImagePath()
	}
	return f.setImage(result.Label())
}

func (f *Flow) promptImagePath() error {
	value, ok, err := f.prompt(ui.FormSpec{
		Title:       "Path to the Windows ISO",
		Placeholder: `C:\path\to\windows.iso`,
		CharLimit:   260,
		Validate: func(value string) string {
			if strings.TrimSpace(value) == "" {
				return "Path required"
			}
			return ""
		},
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrCanceled
	}
	return f.setImage(value)
}

func (f *Flow) setImage(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return errors.New("no install image selected")
	}
	if _, err := os.Stat(trimmed); err != nil {
		return fmt.Errorf("install image %s: %w", trimmed, err)
	}
	f.iso = trimmed
	return nil
}

// locateInstallImage finds install.wim or install.esd under the mount
// root's sources directory.
func locateInstallImage(root string) (string, error) {
	for _, name := range []string{"install.wim", "install.esd"} {
		candidate := filepath.Join(root, "sources", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no install.wim or install.esd under %s", filepath.Join(root, "sources"))
}

func (f *Flow) chooseEdition() error {
	editions, err := f.tools.ListEditions(f.wim)
	if err != nil {
		events.Setup.Error("edition", err)
		return err
	}
	events.Setup.Editions(f.wim, len(editions))
	if len(editions) == 0 {
		return fmt.Errorf("no editions in %s", f.wim)
	}

	if f.opts.Edition != "" {
		if edition, ok := PreselectEdition(editions, f.opts.Edition); ok {
			f.edition = edition
			events.Setup.EditionChosen(edition.Name, edition.Index, "flag")
			f.printf("Edition %q matched %s.\n", f.opts.Edition, edition.Name)
			return nil
		}
		fmt.Fprintf(f.out, "No edition matches %q, pick one below.\n", f.opts.Edition)
	}
	if len(editions) == 1 {
		f.edition = editions[0]
		events.Setup.EditionChosen(editions[0].Name, editions[0].Index, "single")
		return nil
	}

	byLabel := make(map[string]Edition, len(editions))
	entries := menu.NewMapping()
	for _, edition := range editions {
		byLabel[edition.Name] = edition
		entries.Set(edition.Name, nil)
	}
	result, err := f.show(entries, f.menuOptions("Windows edition", false))
	if err != nil {
		return err
	}
	if result.Canceled || result.Empty() {
		return ErrCanceled
	}
	edition, ok := byLabel[result.Label()]
	if !ok {
		return fmt.Errorf("unknown edition %q", result.Label())
	}
	f.edition = edition
	events.Setup.EditionChosen(edition.Name, edition.Index, "menu")
	return nil
}

func (f *Flow) confirmTarget() error {
	letter := f.opts.Target
	if letter == "" {
		value, ok, err := f.prompt(ui.FormSpec{
			Title:       "Target drive letter",
			Placeholder: "D:",
			CharLimit:   3,
			Validate: func(value string) string {
				if _, err := NormalizeDriveLetter(value); err != nil {
					return "Use a drive letter like D:"
				}
				return ""
			},
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrCanceled
		}
		letter = value
	}

	for {
		normalized, err := NormalizeDriveLetter(letter)
		if err != nil {
			return err
		}
		vol, err := f.tools.VolumeInfo(normalized)
		if err != nil {
			events.Setup.Error("target", err)
			return err
		}
		fmt.Fprintln(f.out, volumeSummary(vol))

		applyLabel := fmt.Sprintf("Apply %s to %s", f.edition.Name, vol.Letter)
		entries := menu.NewMapping()
		entries.Set(applyLabel, nil)
		entries.Set(chooseVolumeLabel, "@list-volumes")
		entries.Set(cancelSetupLabel, nil)

		result, err := f.show(entries, f.menuOptions("Confirm target", false))
		if err != nil {
			return err
		}
		if result.Canceled || result.Empty() {
			return ErrCanceled
		}
		switch label := result.Label(); label {
		case applyLabel:
			f.target = vol.Letter
			return nil
		case cancelSetupLabel:
			return ErrCanceled
		default:
			// A row from the volume list; its first column is the letter.
			fields := strings.Fields(label)
			if len(fields) == 0 {
				return fmt.Errorf("unexpected selection %q", label)
			}
			letter = fields[0]
		}
	}
}

// postInstall offers the optional steps as one multi-select session.
// Checked commands run inside the session; the labels that come back
// only carry the choices that are flags rather than actions.
func (f *Flow) postInstall() (bool, error) {
	entries := menu.NewMapping()
	if f.opts.UnattendPath != "" {
		entries.Set(unattendLabel, "apply-unattend")
	}
	entries.Set(bootEntryLabel, "add-boot-entry")
	entries.Set(keepMountedLabel, nil)

	result, err := f.show(entries, f.menuOptions("Post-install steps", true))
	if err != nil {
		return false, err
	}
	if result.Canceled {
		return false, nil
	}
	for _, label := range result.Labels {
		if label == keepMountedLabel {
			return true, nil
		}
	}
	return false, nil
}

func (f *Flow) volumeLabels() ([]string, error) {
	volumes, err := f.tools.ListVolumes()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(volumes))
	for _, vol := range volumes {
		label := vol.Label
		if label == "" {
			label = "-"
		}
		rows = append(rows, []string{
			vol.Letter,
			label,
			vol.FileSystem,
			humanize.IBytes(vol.SizeBytes),
			humanize.IBytes(vol.FreeBytes) + " free",
		})
	}
	return table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignRight,
	}), nil
}

func volumeSummary(vol Volume) string {
	label := vol.Label
	if label == "" {
		label = "(no label)"
	}
	rows := [][]string{
		{"Volume", vol.Letter},
		{"Label", label},
		{"File system", vol.FileSystem},
		{"Size", humanize.IBytes(vol.SizeBytes)},
		{"Free", humanize.IBytes(vol.FreeBytes)},
	}
	return table.Join(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

func (f *Flow) printf(format string, args ...any) {
	if !f.opts.Verbose {
		return
	}
	fmt.Fprintf(f.out, format, args...)
}
