package tui

import (
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteText(text string) error
}

// OSC52Clipboard copies through the terminal with an OSC 52 escape sequence,
// which also works over SSH.
type OSC52Clipboard struct {
	out  io.Writer
	tmux bool
}

// NewOSC52Clipboard writes sequences to out, wrapped for tmux when running inside it
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{
		out:  out,
		tmux: os.Getenv("TMUX") != "",
	}
}

// WriteText implements Clipboard
func (c *OSC52Clipboard) WriteText(text string) error {
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(c.out)
	return err
}
