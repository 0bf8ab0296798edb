package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/he3als/windows-no-usb/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envISOPath    = "WINDOWS_NO_USB_ISO"
	envTarget     = "WINDOWS_NO_USB_TARGET"
	envEdition    = "WINDOWS_NO_USB_EDITION"
	envUnattend   = "WINDOWS_NO_USB_UNATTEND"
	envWidth      = "WINDOWS_NO_USB_WIDTH"
	envHeight     = "WINDOWS_NO_USB_HEIGHT"
	envShowFooter = "WINDOWS_NO_USB_FOOTER"
	envSort       = "WINDOWS_NO_USB_SORT"
	envVerbose    = "WINDOWS_NO_USB_VERBOSE"
	envTrace      = "WINDOWS_NO_USB_TRACE"
	envLogFile    = "WINDOWS_NO_USB_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("windows-no-usb", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	iso := fs.String("iso", envOrDefault(env, envISOPath, ""), "path to the Windows ISO or install.wim (prompted when omitted)")
	target := fs.String("target", envOrDefault(env, envTarget, ""), "target volume drive letter, e.g. D: (prompted when omitted)")
	edition := fs.String("edition", envOrDefault(env, envEdition, ""), "edition to preselect in the edition menu, by name or index")
	unattend := fs.String("unattend", envOrDefault(env, envUnattend, ""), "path to an autounattend.xml to stage into the applied image")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired menu width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired menu height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	sorted := fs.Bool("sort", envOrBool(env, envSort, false), "sort menu entries by label instead of input order")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for setup steps")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			ISOPath:      *iso,
			Target:       *target,
			Edition:      *edition,
			UnattendPath: *unattend,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Sort:         *sorted,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"iso":      *iso,
			"target":   *target,
			"edition":  *edition,
			"unattend": *unattend,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"sort":     strconv.FormatBool(*sorted),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if target := strings.TrimSpace(cfg.App.Target); target != "" {
		if len(target) != 2 || target[1] != ':' || !isDriveLetter(target[0]) {
			return fmt.Errorf("target must be a drive letter like D: (got %q)", cfg.App.Target)
		}
	}
	return nil
}

func isDriveLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
