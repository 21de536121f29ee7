package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kak-tus/fdpowermon/pkg/theme"
)

// ParseFile parses the theme file at path and registers every theme in it.
// It returns the name of the last theme in the file, which callers make the
// default.
func ParseFile(path string, reg *theme.Registry) (string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to open theme file %s", path)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", path)
		}
	}(fp)

	return Parse(fp, path, reg)
}

// Parse reads theme definitions from r. source is only used in log
// messages and errors. A theme is registered when the next section starts
// or at the end of input. A step set that does not match the step count
// aborts parsing with theme.ErrShapeMismatch; themes completed before that
// point stay registered.
func Parse(r io.Reader, source string, reg *theme.Registry) (string, error) {
	var (
		current *theme.Theme
		name    string
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()

		logger := logrus.WithFields(logrus.Fields{
			"file": source,
			"line": lineNo,
		})

		switch l := ParseLine(text).(type) {
		case CommentLine:
			continue
		case SectionHeader:
			if current != nil {
				reg.Register(current, name)
			}
			current = theme.New()
			name = l.Name
			logger.WithField("theme", name).Debug("parsing theme")
		case KeyValue:
			if current == nil {
				logger.WithField("text", text).Warn("unparseable line: outside of a theme block")
				continue
			}
			if err := applyKeyValue(current, l, logger); err != nil {
				return "", pkgerrors.Wrapf(err, "%s:%d: theme %s", source, lineNo, name)
			}
		case Unrecognized:
			logger.WithField("text", l.Text).Warn("unparseable line")
		}
	}
	if err := scanner.Err(); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to read theme file %s", source)
	}

	if current != nil {
		reg.Register(current, name)
	}

	return name, nil
}

func applyKeyValue(t *theme.Theme, kv KeyValue, logger *logrus.Entry) error {
	switch kv.Key {
	case "steps":
		n, err := strconv.Atoi(kv.Value)
		if err != nil || n <= 0 {
			logger.WithField("value", kv.Value).Warn("unparseable line: steps must be a positive integer")
			return nil
		}
		t.SetStepCount(n)
	case "dir":
		t.SetDir(kv.Value)
	case "charging":
		return t.SetCharging(theme.ParseSteps(kv.Value, t.StepCount()))
	case "discharging":
		return t.SetDischarging(theme.ParseSteps(kv.Value, t.StepCount()))
	default:
		logger.WithField("text", fmt.Sprintf("%s = %s", kv.Key, kv.Value)).Warn("unparseable line: unknown key")
	}
	return nil
}
