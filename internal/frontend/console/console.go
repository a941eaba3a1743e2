// Package console implements the terminal frontend: a blocking numbered-menu
// chooser and a plain-text combat renderer over stdio.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wildcatcafe/catastrophe/internal/game/engine"
)

// Client reads selections from in and writes screens to out. It implements
// both engine.Chooser and engine.Renderer.
type Client struct {
	in  *bufio.Reader
	out io.Writer
}

// NewClient wraps the given streams.
// Precondition: in and out must be non-nil.
func NewClient(in io.Reader, out io.Writer) *Client {
	return &Client{in: bufio.NewReader(in), out: out}
}

// Choose prints a numbered menu and blocks for a selection. Selections are
// 1-based on screen; the returned index is 0-based. Unparseable or
// out-of-range input returns -1 so the session re-prompts.
func (c *Client) Choose(title string, options []string) int {
	fmt.Fprintf(c.out, "\n%s\n", title)
	for i, opt := range options {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, opt)
	}
	fmt.Fprint(c.out, "> ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1
	}
	return n - 1
}

// RenderCombat draws both active combatants' stat blocks and the battle log.
func (c *Client) RenderCombat(v engine.CombatView) {
	fmt.Fprintf(c.out, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(c.out, "%-30s%s\n", v.PlayerName, v.EnemyName)
	fmt.Fprintf(c.out, "%-30s%s\n",
		fmt.Sprintf("HP: %d  DP: %d", v.PlayerHP, v.PlayerDP),
		fmt.Sprintf("HP: %d  DP: %d", v.EnemyHP, v.EnemyDP))
	fmt.Fprintf(c.out, "%-30s%s\n",
		fmt.Sprintf("SP: %d  MP: %d", v.PlayerSP, v.PlayerMP),
		fmt.Sprintf("SP: %d", v.EnemySP))
	fmt.Fprintln(c.out, strings.Repeat("-", 60))
	for _, line := range v.Log {
		fmt.Fprintln(c.out, line)
	}
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
}

// Notify prints a transient one-line message.
func (c *Client) Notify(message string) {
	fmt.Fprintln(c.out, message)
}
