package config

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kak-tus/fdpowermon/pkg/theme"
)

var eventRegex = regexp.MustCompile(`^event\s+(\S+)\s+(\S+)\s+(\d+)\s+(.+)$`)

// RunTweaks executes the tweak script at path and applies the directives it
// prints. A missing script is not an error.
//
// Directives, one per line:
//
//	default <theme>
//	event <theme> <charging|discharging> <step index> <shell command>
//	warnings <threshold> [<threshold>...]
func RunTweaks(ctx context.Context, path string, l *Loader) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to stat tweak script %s", path)
	}
	if info.Mode()&0111 == 0 {
		return fmt.Errorf("tweak script %s is not executable", path)
	}

	stderr := &bytes.Buffer{}
	cmd := exec.CommandContext(ctx, path)
	cmd.Stderr = stderr
	out, err := cmd.Output()
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to run tweak script %s: %s", path, stderr.String())
	}

	logrus.WithField("script", path).Debug("tweak script finished")

	return ApplyTweaks(bytes.NewReader(out), path, l)
}

// ApplyTweaks applies tweak directives read from r.
func ApplyTweaks(r io.Reader, source string, l *Loader) error {
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := applyTweak(line, l); err != nil {
			return pkgerrors.Wrapf(err, "%s:%d", source, lineNo)
		}
	}
	return scanner.Err()
}

func applyTweak(line string, l *Loader) error {
	fields := strings.Fields(line)

	switch fields[0] {
	case "default":
		if len(fields) != 2 {
			break
		}
		l.registry.MakeDefault(fields[1])
		return nil
	case "warnings":
		if len(fields) < 2 {
			break
		}
		thresholds := make([]float64, 0, len(fields)-1)
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("invalid warning threshold %q", f)
			}
			thresholds = append(thresholds, v)
		}
		l.SetWarnings(thresholds)
		return nil
	case "event":
		matches := eventRegex.FindStringSubmatch(line)
		if matches == nil {
			break
		}
		return attachEvent(l.registry, matches[1], matches[2], matches[3], matches[4])
	}

	logrus.WithField("text", line).Warn("unparseable tweak directive")
	return nil
}

func attachEvent(reg *theme.Registry, name, direction, index, command string) error {
	t, ok := reg.Get(name)
	if !ok {
		return fmt.Errorf("event for unknown theme %q", name)
	}

	dir, err := theme.ParseDirection(direction)
	if err != nil {
		return err
	}

	i, err := strconv.Atoi(index)
	if err != nil {
		return fmt.Errorf("invalid step index %q", index)
	}
	if n := len(t.Steps(dir)); i >= n {
		return fmt.Errorf("step index %d out of range, theme %q has %d %s steps", i, name, n, dir)
	}

	return t.SetEvent(i, ShellCallback{Command: command}, direction)
}

// ShellCallback runs a command through sh -c when its step is reached. The
// level and charging flag are passed as FDPOWERMON_LEVEL and
// FDPOWERMON_CHARGING; the latter is empty when the direction is unknown.
type ShellCallback struct {
	Command string
}

func (c ShellCallback) Fire(level float64, dir theme.Direction) error {
	charging := ""
	if isCharging, known := dir.IsCharging(); known {
		charging = strconv.FormatBool(isCharging)
	}

	output := &bytes.Buffer{}
	cmd := exec.Command("sh", "-c", c.Command)
	cmd.Env = append(os.Environ(),
		"FDPOWERMON_LEVEL="+strconv.FormatFloat(level, 'f', -1, 64),
		"FDPOWERMON_CHARGING="+charging,
	)
	cmd.Stdout = output
	cmd.Stderr = output
	if err := cmd.Run(); err != nil {
		return pkgerrors.Wrapf(err, "event command %q failed: %s", c.Command, output.String())
	}
	return nil
}
