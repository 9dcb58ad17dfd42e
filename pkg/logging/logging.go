package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const LOG_CONFIG_FILE = "log-config.json"
const LOG_LEVEL_ENV_NAME = "MTYPES_LOG_LEVEL"

// how many parent directories are searched for the log config, e.g. when tests run inside pkg/x/y
const maxConfigDepth = 5

var RootLogger zerolog.Logger
var lvls map[string]string
var loggers = map[string]zerolog.Logger{}
var mu sync.Mutex

// reads the level per component. a library must not die because its host has no log config, so
// missing or unreadable files fall back to the env var, and then to "warn".
func readLevels() map[string]string {
	config := make(map[string]string)

	dots := "."
	for i := 0; i <= maxConfigDepth; i++ {
		data, err := os.ReadFile(filepath.Join(dots, LOG_CONFIG_FILE))
		if err == nil {
			if err := json.Unmarshal(data, &config); err != nil {
				fmt.Fprintf(os.Stderr, "ignoring unparsable log config %s: %v\n", filepath.Join(dots, LOG_CONFIG_FILE), err)
				config = make(map[string]string)
			}
			break
		}
		dots = filepath.Join(dots, "..")
	}

	if _, ok := config["root"]; !ok {
		root := os.Getenv(LOG_LEVEL_ENV_NAME)
		if len(root) == 0 {
			root = zerolog.WarnLevel.String()
		}
		config["root"] = root
	}
	return config
}

func setupLog() {
	lvls = readLevels()

	// https://github.com/rs/zerolog
	zerolog.TimeFieldFormat = time.RFC3339Nano
	output := zerolog.ConsoleWriter{
		Out:           os.Stderr,
		TimeFormat:    "2006-01-02T15:04:05.000",
		PartsOrder:    []string{"time", "level", "component", "message"},
		PartsExclude:  []string{},
		FieldsExclude: []string{"component"},
	}
	output.FormatLevel = func(i any) string {
		if i == nil {
			return "|      |"
		}
		s := strings.ToUpper(fmt.Sprintf("%s", i))

		color := COLOR_NONE
		if s == "WARN" {
			color = COLOR_RED
		} else if s == "ERROR" || s == "FATAL" || s == "PANIC" {
			color = COLOR_LIGHT_RED
		}
		s = fmt.Sprintf("%-6s", s)
		return "|" + color + s + COLOR_NONE + "|"
	}
	output.FormatMessage = func(i any) string {
		return fmt.Sprintf("| %s ", i)
	}
	output.FormatFieldName = func(i any) string {
		return fmt.Sprintf("%s:", i)
	}
	output.FormatFieldValue = func(i any) string {
		if i == nil {
			return "-"
		}
		s := fmt.Sprintf("%s", i)
		if strings.HasPrefix(s, "pkg:") {
			return abbreviateIfNecessary(s[4:])
		}
		return s
	}

	RootLogger = zerolog.New(output).With().Timestamp().Str("component", "pkg:root").Logger()
}

const MAX_LENGTH = 12

func abbreviateIfNecessary(s string) string {
	if len(s) == MAX_LENGTH {
		return s
	} else if len(s) < MAX_LENGTH {
		return s + strings.Repeat(" ", MAX_LENGTH-len(s)) // Right pad with spaces
	} else {
		return s[:MAX_LENGTH-2] + ".."
	}
}

// returns the logger for the given component, e.g. "mtypes" or "github.com/x/y/config". the level
// comes from the component's entry in the log config, or from "root".
func GetLog(component string) zerolog.Logger {
	component = shortenString(component)

	mu.Lock()
	defer mu.Unlock()

	if lvls == nil {
		setupLog()
	}
	l, ok := loggers[component]
	if !ok {
		level, ok := lvls[component]
		if !ok {
			level = lvls["root"]
		}
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unknown level '%s' in log config, using warn\n", level)
			lvl = zerolog.WarnLevel
		}
		l = RootLogger.With().Str("component", "pkg:"+component).Logger().Level(lvl)
		loggers[component] = l
	}
	return l
}

// forgets all levels and loggers, so that the next GetLog reads the config again
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	lvls = nil
	loggers = map[string]zerolog.Logger{}
}

func shortenString(fullPackage string) string {
	parts := strings.Split(fullPackage, "/")
	shortenedParts := make([]string, 0, len(parts))
	for i, part := range parts {
		if i < len(parts)-1 && len(part) > 0 {
			shortenedParts = append(shortenedParts, string(part[0]))
		} else {
			shortenedParts = append(shortenedParts, part)
		}
	}
	return strings.Join(shortenedParts, ".")
}

// https://unix.stackexchange.com/a/174/206459
const (
	COLOR_NONE      = "\033[0m"
	COLOR_RED       = "\033[0;31m"
	COLOR_LIGHT_RED = "\033[1;31m"
)
