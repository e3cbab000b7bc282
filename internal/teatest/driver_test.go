package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

type counter struct {
	n     int
	pings int
	typed string
}

func (c counter) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return pingMsg{} }, func() tea.Msg { return pingMsg{} })
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pingMsg:
		c.pings++
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			c.n++
		case "q":
			return c, tea.Quit
		default:
			c.typed += msg.String()
		}
	}
	return c, nil
}

func (c counter) View() string { return fmt.Sprintf("n=%d pings=%d typed=%s", c.n, c.pings, c.typed) }

func TestDriver_DrainsInitBatch(t *testing.T) {
	d := New(t, counter{})
	assert.Equal(t, "n=0 pings=2 typed=", d.View())
}

func TestDriver_PressAndQuit(t *testing.T) {
	d := New(t, counter{})
	d.Press("up", "up", "a", "b")
	assert.Equal(t, "n=2 pings=2 typed=ab", d.View())

	d.Press("q", "up")
	assert.True(t, d.Quitting)
	assert.Equal(t, 2, d.Model.(counter).n, "keys after quit are ignored")
}
