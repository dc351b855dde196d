// Package teatest runs bubbletea models synchronously in tests.
//
// Messages go straight to Update and the Cmds that come back are executed
// in order until the queue is empty, so no tea.Program is started. A Cmd
// that waits on a timer longer than CmdTimeout yields nothing.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxSteps bounds the number of Cmds run for a single Send.
const MaxSteps = 100

// CmdTimeout is how long a Cmd may block before it is abandoned.
const CmdTimeout = 10 * time.Millisecond

// Driver owns a model and feeds it messages.
type Driver struct {
	t     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit runs; later input is ignored.
	Quitting bool
}

// Option configures a Driver in New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(width, height int) Option {
	return func(d *Driver) {
		d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	}
}

// New wraps model. It does not run Init; call Start for that.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{t: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start runs the model's Init command.
func (d *Driver) Start() {
	d.t.Helper()
	d.run(d.Model.Init())
}

// Send delivers msg to Update and runs whatever follows from it.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

// Press sends special keys such as tea.KeyTab or tea.KeyEsc, in order.
func (d *Driver) Press(keys ...tea.KeyType) {
	d.t.Helper()
	for _, k := range keys {
		d.Send(tea.KeyMsg{Type: k})
	}
}

// Type sends every rune of s as its own key press.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) run(first tea.Cmd) {
	d.t.Helper()
	queue := []tea.Cmd{first}
	for steps := 0; len(queue) > 0; steps++ {
		if steps == MaxSteps {
			d.t.Logf("teatest: stopped after %d commands", MaxSteps)
			return
		}
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch msg := await(cmd).(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			d.Model, _ = d.Model.Update(msg)
			d.Quitting = true
			return
		default:
			var next tea.Cmd
			d.Model, next = d.Model.Update(msg)
			queue = append(queue, next)
		}
	}
}

func await(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(CmdTimeout):
		return nil
	}
}
