package setup

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type recordedCall struct {
	name string
	args []string
}

// recordingTools returns a CommandTools whose runner captures every
// invocation and replies with the given output or error.
func recordingTools(out string, err error) (*CommandTools, *[]recordedCall) {
	calls := &[]recordedCall{}
	tools := &CommandTools{run: func(name string, args ...string) ([]byte, error) {
		*calls = append(*calls, recordedCall{name: name, args: args})
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}}
	return tools, calls
}

func singleCall(t *testing.T, calls *[]recordedCall) recordedCall {
	t.Helper()
	if len(*calls) != 1 {
		t.Fatalf("got %d commands, want 1: %v", len(*calls), *calls)
	}
	return (*calls)[0]
}

func powershellScript(t *testing.T, call recordedCall) string {
	t.Helper()
	if call.name != "powershell" {
		t.Fatalf("command = %q, want powershell", call.name)
	}
	want := []string{"-NoProfile", "-NonInteractive", "-Command"}
	if len(call.args) != 4 || !reflect.DeepEqual(call.args[:3], want) {
		t.Fatalf("powershell args = %v, want %v + script", call.args, want)
	}
	return call.args[3]
}

func TestPickImageScansFixedVolumes(t *testing.T) {
	tools, calls := recordingTools("C:\\isos\\win11.iso\r\n\r\nD:\\backup\\win10.iso\r\n", nil)
	images, err := tools.PickImage()
	if err != nil {
		t.Fatalf("PickImage: %v", err)
	}
	want := []string{`C:\isos\win11.iso`, `D:\backup\win10.iso`}
	if !reflect.DeepEqual(images, want) {
		t.Fatalf("images = %v, want %v", images, want)
	}
	script := powershellScript(t, singleCall(t, calls))
	for _, fragment := range []string{"Get-Volume", "*.iso", "-Depth 2"} {
		if !strings.Contains(script, fragment) {
			t.Errorf("script missing %q: %s", fragment, script)
		}
	}
}

func TestPickImageWrapsScanFailure(t *testing.T) {
	boom := errors.New("powershell exploded")
	tools, _ := recordingTools("", boom)
	_, err := tools.PickImage()
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if !strings.Contains(err.Error(), "scan for images") {
		t.Fatalf("err = %v, want scan context", err)
	}
}

func TestListVolumesParsesRecords(t *testing.T) {
	tools, _ := recordingTools("C|System|NTFS|2147483648|1073741824\r\nD||NTFS|1073741824|536870912\r\n", nil)
	volumes, err := tools.ListVolumes()
	if err != nil {
		t.Fatalf("ListVolumes: %v", err)
	}
	want := []Volume{
		{Letter: "C:", Label: "System", FileSystem: "NTFS", SizeBytes: 2147483648, FreeBytes: 1073741824},
		{Letter: "D:", Label: "", FileSystem: "NTFS", SizeBytes: 1073741824, FreeBytes: 536870912},
	}
	if !reflect.DeepEqual(volumes, want) {
		t.Fatalf("volumes = %v, want %v", volumes, want)
	}
}

func TestListVolumesRejectsMalformedRecord(t *testing.T) {
	tools, _ := recordingTools("not a record\r\n", nil)
	_, err := tools.ListVolumes()
	if err == nil || !strings.Contains(err.Error(), "malformed volume record") {
		t.Fatalf("got %v, want malformed record error", err)
	}
}

func TestVolumeInfoTargetsLetter(t *testing.T) {
	tools, calls := recordingTools("E|Data|exFAT|1073741824|536870912\r\n", nil)
	vol, err := tools.VolumeInfo("e")
	if err != nil {
		t.Fatalf("VolumeInfo: %v", err)
	}
	if vol.Letter != "E:" || vol.Label != "Data" {
		t.Fatalf("vol = %+v, want E:/Data", vol)
	}
	script := powershellScript(t, singleCall(t, calls))
	if !strings.Contains(script, "-DriveLetter E") {
		t.Fatalf("script missing drive letter: %s", script)
	}
}

func TestVolumeInfoMissingVolume(t *testing.T) {
	tools, _ := recordingTools("", nil)
	_, err := tools.VolumeInfo("E:")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("got %v, want not-found error", err)
	}
}

func TestVolumeInfoRejectsBadLetter(t *testing.T) {
	tools, calls := recordingTools("", nil)
	if _, err := tools.VolumeInfo("xy"); err == nil {
		t.Fatal("expected invalid drive letter error")
	}
	if len(*calls) != 0 {
		t.Fatalf("no command should run for a bad letter, got %v", *calls)
	}
}

func TestMountReturnsRootPath(t *testing.T) {
	tools, calls := recordingTools("\r\nE\r\n", nil)
	root, err := tools.Mount(`C:\isos\win 11.iso`)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if root != `E:\` {
		t.Fatalf("root = %q, want E:\\", root)
	}
	script := powershellScript(t, singleCall(t, calls))
	if !strings.Contains(script, `'C:\isos\win 11.iso'`) {
		t.Fatalf("script missing quoted path: %s", script)
	}
}

func TestMountFailsWithoutDriveLetter(t *testing.T) {
	tools, _ := recordingTools("\r\n", nil)
	_, err := tools.Mount(`C:\win.iso`)
	if err == nil || !strings.Contains(err.Error(), "no drive letter") {
		t.Fatalf("got %v, want no-drive-letter error", err)
	}
}

func TestDismountQuotesPath(t *testing.T) {
	tools, calls := recordingTools("", nil)
	if err := tools.Dismount(`C:\it's.iso`); err != nil {
		t.Fatalf("Dismount: %v", err)
	}
	script := powershellScript(t, singleCall(t, calls))
	if !strings.Contains(script, `'C:\it''s.iso'`) {
		t.Fatalf("script missing escaped quote: %s", script)
	}
}

func TestListEditionsInvokesDism(t *testing.T) {
	tools, calls := recordingTools(wimInfoOutput, nil)
	editions, err := tools.ListEditions(`E:\sources\install.wim`)
	if err != nil {
		t.Fatalf("ListEditions: %v", err)
	}
	if len(editions) != 2 || editions[1].Name != "Windows 11 Pro" {
		t.Fatalf("editions = %v", editions)
	}
	call := singleCall(t, calls)
	want := []string{"/Get-WimInfo", `/WimFile:E:\sources\install.wim`}
	if call.name != "dism" || !reflect.DeepEqual(call.args, want) {
		t.Fatalf("call = %+v, want dism %v", call, want)
	}
}

func TestApplyImageBuildsDismCommand(t *testing.T) {
	tools, calls := recordingTools("", nil)
	if err := tools.ApplyImage(`E:\sources\install.wim`, 2, "d"); err != nil {
		t.Fatalf("ApplyImage: %v", err)
	}
	call := singleCall(t, calls)
	want := []string{"/Apply-Image", `/ImageFile:E:\sources\install.wim`, "/Index:2", `/ApplyDir:D:\`}
	if call.name != "dism" || !reflect.DeepEqual(call.args, want) {
		t.Fatalf("call = %+v, want dism %v", call, want)
	}
}

func TestApplyImageRejectsBadTarget(t *testing.T) {
	tools, calls := recordingTools("", nil)
	if err := tools.ApplyImage("w.wim", 1, "nope"); err == nil {
		t.Fatal("expected invalid drive letter error")
	}
	if len(*calls) != 0 {
		t.Fatalf("no command should run for a bad target, got %v", *calls)
	}
}

func TestApplyUnattendRequiresAnswerFile(t *testing.T) {
	tools, _ := recordingTools("", nil)
	err := tools.ApplyUnattend("D:", `Z:\missing\unattend.xml`)
	if err == nil || !strings.Contains(err.Error(), "read unattend file") {
		t.Fatalf("got %v, want read error", err)
	}
}

func TestApplyUnattendRejectsBadTarget(t *testing.T) {
	tools, _ := recordingTools("", nil)
	if err := tools.ApplyUnattend("bad", "unattend.xml"); err == nil {
		t.Fatal("expected invalid drive letter error")
	}
}

func TestAddBootEntryInvokesBcdboot(t *testing.T) {
	tools, calls := recordingTools("", nil)
	if err := tools.AddBootEntry(`d:\`); err != nil {
		t.Fatalf("AddBootEntry: %v", err)
	}
	call := singleCall(t, calls)
	if call.name != "bcdboot" || !reflect.DeepEqual(call.args, []string{`D:\Windows`}) {
		t.Fatalf("call = %+v, want bcdboot D:\\Windows", call)
	}
}

func TestNormalizeDriveLetter(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "d", want: "D:", ok: true},
		{in: "D:", want: "D:", ok: true},
		{in: `D:\`, want: "D:", ok: true},
		{in: " e ", want: "E:", ok: true},
		{in: `c:\`, want: "C:", ok: true},
		{in: ""},
		{in: "1"},
		{in: "DD"},
		{in: `\`},
	}
	for _, tt := range tests {
		got, err := NormalizeDriveLetter(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("NormalizeDriveLetter(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("NormalizeDriveLetter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseVolumeLine(t *testing.T) {
	vol, err := parseVolumeLine("c|Main|ReFS|100|40")
	if err != nil {
		t.Fatalf("parseVolumeLine: %v", err)
	}
	want := Volume{Letter: "C:", Label: "Main", FileSystem: "ReFS", SizeBytes: 100, FreeBytes: 40}
	if vol != want {
		t.Fatalf("vol = %+v, want %+v", vol, want)
	}
	if _, err := parseVolumeLine("c|Main|ReFS"); err == nil {
		t.Fatal("expected error for missing fields")
	}
	if _, err := parseVolumeLine("||NTFS|1|1"); err == nil {
		t.Fatal("expected error for empty letter")
	}
}

func TestPsQuote(t *testing.T) {
	if got := psQuote(`C:\plain.iso`); got != `'C:\plain.iso'` {
		t.Fatalf("psQuote = %q", got)
	}
	if got := psQuote(`it's`); got != `'it''s'` {
		t.Fatalf("psQuote = %q", got)
	}
}

func TestOutputLines(t *testing.T) {
	got := outputLines([]byte("  one \r\n\r\n\ntwo\nthree\r"))
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("outputLines = %v, want %v", got, want)
	}
}
