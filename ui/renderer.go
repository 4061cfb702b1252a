package ui

import (
	"fmt"
	"io"
	"os"
	"robocompany/common"
	"robocompany/screens"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	reverseVideo = "\x1b[7m"
	resetStyle   = "\x1b[0m"
)

// Renderer draws the screens as plain text
type Renderer struct {
	out       io.Writer
	highlight bool
}

// NewRenderer enables reverse video highlighting when out is a terminal
func NewRenderer(out io.Writer) *Renderer {
	highlight := false
	if file, ok := out.(*os.File); ok {
		highlight = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}

	return &Renderer{out: out, highlight: highlight}
}

func (r *Renderer) RenderHome(state *screens.HomeState) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  +-----------------------+\n")
	b.WriteString("  |   [ robot company ]   |\n")
	b.WriteString("  +-----------------------+\n")
	fmt.Fprintf(&b, "  %s                 (open)\n", common.CompanyName)
	fmt.Fprintf(&b, "  [ %d times clicked. ]      (click)\n", state.Counter().Get())
	if state.ShowsMilestone() {
		b.WriteString("  Clicked more than five times!\n")
	}

	io.WriteString(r.out, b.String())
}

func (r *Renderer) RenderRobots(state *screens.RobotsState) {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s                    (members)\n", common.MembersLabel)

	switch state.Status().Get() {
	case screens.LOADING:
		b.WriteString("  loading robots...\n")
	case screens.FAILED:
		fmt.Fprintf(&b, "  could not load robots: %s\n", state.Err())
	}

	for i, robot := range state.Robots().Get() {
		b.WriteString(r.robotItem(i, robot, state.Selection.IsSelected(i)))
	}

	io.WriteString(r.out, b.String())
}

func (r *Renderer) robotItem(index int, robot common.Robot, selected bool) string {
	line := fmt.Sprintf("%3d. %-10s %-16s %s", index+1, robot.Code, robot.Position, robot.Img)

	if !selected {
		return "   " + line + "\n"
	}

	if r.highlight {
		return "   " + reverseVideo + line + resetStyle + "\n"
	}

	return " * " + line + "\n"
}

func (r *Renderer) Prompt(screen common.Screen) {
	switch screen {
	case common.HOME:
		io.WriteString(r.out, "home> ")
	case common.ROBOTS:
		io.WriteString(r.out, "robots> ")
	}
}

func (r *Renderer) Message(format string, args ...interface{}) {
	fmt.Fprintf(r.out, "  "+format+"\n", args...)
}
