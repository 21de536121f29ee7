package notify

import (
	"fmt"
	"os/exec"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var dialogPrograms = []string{"zenity", "xmessage"}

// Dialog shows a warning window using zenity or xmessage. The window is
// left open without blocking the caller.
type Dialog struct {
	program string
}

// NewDialog uses the first dialog program found in PATH.
func NewDialog() *Dialog {
	for _, p := range dialogPrograms {
		if path, err := exec.LookPath(p); err == nil {
			return &Dialog{program: path}
		}
	}
	return &Dialog{program: dialogPrograms[0]}
}

func (d *Dialog) args(title, body string) []string {
	if filepath.Base(d.program) == "xmessage" {
		return []string{"-center", fmt.Sprintf("%s\n\n%s", title, body)}
	}
	return []string{"--warning", "--title=" + title, "--text=" + body}
}

func (d *Dialog) Notify(title, body string) error {
	cmd := exec.Command(d.program, d.args(title, body)...)
	if err := cmd.Start(); err != nil {
		return pkgerrors.Wrapf(err, "failed to start %s", d.program)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logrus.WithError(err).Debugf("%s exited", d.program)
		}
	}()

	return nil
}
