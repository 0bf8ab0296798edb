package setup

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// runner executes one external command and returns its stdout.
type runner func(name string, args ...string) ([]byte, error)

func runCommand(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// CommandTools implements Tools by shelling out to PowerShell, DISM,
// and bcdboot. Everything runs in the foreground; a step holds the
// session until it finishes.
type CommandTools struct {
	run runner
}

// NewCommandTools returns the production tool set.
func NewCommandTools() *CommandTools {
	return &CommandTools{run: runCommand}
}

func (t *CommandTools) powershell(script string) ([]byte, error) {
	return t.run("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
}

func (t *CommandTools) PickImage() ([]string, error) {
	script := `$roots = (Get-Volume | Where-Object { $_.DriveLetter -and $_.DriveType -eq 'Fixed' }).DriveLetter | ForEach-Object { "$($_):\" }; ` +
		`Get-ChildItem -Path $roots -Include *.iso -Recurse -Depth 2 -File -ErrorAction SilentlyContinue | Select-Object -ExpandProperty FullName`
	out, err := t.powershell(script)
	if err != nil {
		return nil, fmt.Errorf("scan for images: %w", err)
	}
	return outputLines(out), nil
}

const volumeFields = `"{0}|{1}|{2}|{3}|{4}" -f $_.DriveLetter,$_.FileSystemLabel,$_.FileSystem,$_.Size,$_.SizeRemaining`

func (t *CommandTools) ListVolumes() ([]Volume, error) {
	script := `Get-Volume | Where-Object { $_.DriveLetter } | ForEach-Object { ` + volumeFields + ` }`
	out, err := t.powershell(script)
	if err != nil {
		return nil, fmt.Errorf("list volumes: %w", err)
	}
	lines := outputLines(out)
	volumes := make([]Volume, 0, len(lines))
	for _, line := range lines {
		vol, err := parseVolumeLine(line)
		if err != nil {
			return nil, err
		}
		volumes = append(volumes, vol)
	}
	return volumes, nil
}

func (t *CommandTools) VolumeInfo(letter string) (Volume, error) {
	normalized, err := NormalizeDriveLetter(letter)
	if err != nil {
		return Volume{}, err
	}
	script := `Get-Volume -DriveLetter ` + string(normalized[0]) + ` | ForEach-Object { ` + volumeFields + ` }`
	out, err := t.powershell(script)
	if err != nil {
		return Volume{}, fmt.Errorf("volume %s: %w", normalized, err)
	}
	lines := outputLines(out)
	if len(lines) == 0 {
		return Volume{}, fmt.Errorf("volume %s not found", normalized)
	}
	return parseVolumeLine(lines[0])
}

func (t *CommandTools) Mount(isoPath string) (string, error) {
	script := `$img = Mount-DiskImage -ImagePath ` + psQuote(isoPath) + ` -PassThru; ($img | Get-Volume).DriveLetter`
	out, err := t.powershell(script)
	if err != nil {
		return "", fmt.Errorf("mount %s: %w", isoPath, err)
	}
	lines := outputLines(out)
	if len(lines) == 0 {
		return "", fmt.Errorf("mount %s: no drive letter assigned", isoPath)
	}
	letter := lines[len(lines)-1]
	normalized, err := NormalizeDriveLetter(letter)
	if err != nil {
		return "", fmt.Errorf("mount %s: %w", isoPath, err)
	}
	return normalized + `\`, nil
}

func (t *CommandTools) Dismount(isoPath string) error {
	script := `Dismount-DiskImage -ImagePath ` + psQuote(isoPath) + ` | Out-Null`
	if _, err := t.powershell(script); err != nil {
		return fmt.Errorf("dismount %s: %w", isoPath, err)
	}
	return nil
}

func (t *CommandTools) ListEditions(imagePath string) ([]Edition, error) {
	out, err := t.run("dism", "/Get-WimInfo", "/WimFile:"+imagePath)
	if err != nil {
		return nil, fmt.Errorf("enumerate editions in %s: %w", imagePath, err)
	}
	return ParseWimInfo(string(out))
}

func (t *CommandTools) ApplyImage(imagePath string, index int, target string) error {
	normalized, err := NormalizeDriveLetter(target)
	if err != nil {
		return err
	}
	_, err = t.run("dism",
		"/Apply-Image",
		"/ImageFile:"+imagePath,
		"/Index:"+strconv.Itoa(index),
		"/ApplyDir:"+normalized+`\`,
	)
	if err != nil {
		return fmt.Errorf("apply image index %d to %s: %w", index, normalized, err)
	}
	return nil
}

func (t *CommandTools) ApplyUnattend(target, unattendPath string) error {
	normalized, err := NormalizeDriveLetter(target)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(unattendPath)
	if err != nil {
		return fmt.Errorf("read unattend file: %w", err)
	}
	pantherDir := filepath.Join(normalized+`\`, "Windows", "Panther")
	if err := os.MkdirAll(pantherDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", pantherDir, err)
	}
	dest := filepath.Join(pantherDir, "unattend.xml")
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

func (t *CommandTools) AddBootEntry(target string) error {
	normalized, err := NormalizeDriveLetter(target)
	if err != nil {
		return err
	}
	if _, err := t.run("bcdboot", normalized+`\Windows`); err != nil {
		return fmt.Errorf("register boot entry for %s: %w", normalized, err)
	}
	return nil
}

// NormalizeDriveLetter accepts "d", "D:" or "D:\" and returns "D:".
func NormalizeDriveLetter(letter string) (string, error) {
	trimmed := strings.TrimSpace(letter)
	trimmed = strings.TrimSuffix(trimmed, `\`)
	trimmed = strings.TrimSuffix(trimmed, ":")
	if len(trimmed) != 1 {
		return "", fmt.Errorf("invalid drive letter %q", letter)
	}
	b := trimmed[0]
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	if b < 'A' || b > 'Z' {
		return "", fmt.Errorf("invalid drive letter %q", letter)
	}
	return string(b) + ":", nil
}

func parseVolumeLine(line string) (Volume, error) {
	parts := strings.SplitN(line, "|", 5)
	if len(parts) != 5 {
		return Volume{}, fmt.Errorf("malformed volume record %q", line)
	}
	letter, err := NormalizeDriveLetter(parts[0])
	if err != nil {
		return Volume{}, fmt.Errorf("malformed volume record %q: %w", line, err)
	}
	size, _ := strconv.ParseUint(strings.TrimSpace(parts[3]), 10, 64)
	free, _ := strconv.ParseUint(strings.TrimSpace(parts[4]), 10, 64)
	return Volume{
		Letter:     letter,
		Label:      strings.TrimSpace(parts[1]),
		FileSystem: strings.TrimSpace(parts[2]),
		SizeBytes:  size,
		FreeBytes:  free,
	}, nil
}

func psQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func outputLines(out []byte) []string {
	var lines []string
	for _, raw := range strings.Split(string(out), "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
