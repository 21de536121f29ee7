package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	err      error
	messages []string
}

func (r *recorder) Notify(title, body string) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, title+": "+body)
	return nil
}

func TestFallbackIsSticky(t *testing.T) {
	primary := &recorder{}
	secondary := &recorder{}
	f := NewFallback(primary, secondary)

	require.NoError(t, f.Notify("low", "10%"))
	assert.False(t, f.FellBack())

	primary.err = errors.New("daemon went away")
	require.NoError(t, f.Notify("low", "5%"))
	assert.True(t, f.FellBack())

	// The primary recovers but is never tried again.
	primary.err = nil
	require.NoError(t, f.Notify("low", "1%"))

	assert.Equal(t, []string{"low: 10%"}, primary.messages)
	assert.Equal(t, []string{"low: 5%", "low: 1%"}, secondary.messages)
}

func TestFallbackSecondaryError(t *testing.T) {
	f := NewFallback(&recorder{err: errors.New("a")}, &recorder{err: errors.New("b")})
	assert.EqualError(t, f.Notify("low", "1%"), "b")
}

func TestDialogArgs(t *testing.T) {
	d := &Dialog{program: "/usr/bin/zenity"}
	assert.Equal(t, []string{"--warning", "--title=Low battery", "--text=5% left"}, d.args("Low battery", "5% left"))

	d = &Dialog{program: "/usr/bin/xmessage"}
	assert.Equal(t, []string{"-center", "Low battery\n\n5% left"}, d.args("Low battery", "5% left"))
}

func TestDialogMissingProgram(t *testing.T) {
	d := &Dialog{program: "/nonexistent/dialog-program"}
	assert.Error(t, d.Notify("low", "1%"))
}
