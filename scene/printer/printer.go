// Package printer renders a loaded scene tree as indented text for the
// CLI and for diagnostics.
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/reglacier/gmskit/scene"
)

// Options controls tree rendering.
type Options struct {
	// MaxDepth limits how deep the tree is rendered; 0 means unlimited.
	MaxDepth int
	// ShowControllers renders one line per attached controller.
	ShowControllers bool
	// ShowTypes appends type and instance ids to each object line.
	ShowTypes bool
	// ASCII uses 7-bit branch characters instead of box drawing.
	ASCII bool
	// Color enables ANSI colors.
	Color bool
}

// DefaultOptions returns the options used by `gmsctl tree`.
func DefaultOptions() Options {
	return Options{
		ShowControllers: true,
		ShowTypes:       true,
	}
}

type sprintFn func(a ...any) string

// Printer renders scene trees to a writer.
type Printer struct {
	w    io.Writer
	opts Options

	name sprintFn
	meta sprintFn
	ctrl sprintFn
}

// New returns a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	p := &Printer{
		w:    w,
		opts: opts,
		name: fmt.Sprint,
		meta: fmt.Sprint,
		ctrl: fmt.Sprint,
	}
	if opts.Color {
		p.name = color.New(color.FgCyan, color.Bold).SprintFunc()
		p.meta = color.New(color.FgHiBlack).SprintFunc()
		p.ctrl = color.New(color.FgYellow).SprintFunc()
	}
	return p
}

// PrintTree renders the subtree rooted at root.
func (p *Printer) PrintTree(root *scene.Object) error {
	if root == nil {
		return nil
	}
	return p.printObject(root, "", "", 0)
}

func (p *Printer) branches() (tee, last, pipe, blank string) {
	if p.opts.ASCII {
		return "|-- ", "`-- ", "|   ", "    "
	}
	return "├── ", "└── ", "│   ", "    "
}

func (p *Printer) printObject(o *scene.Object, lead, childLead string, depth int) error {
	line := lead + p.name(o.Name())
	if p.opts.ShowTypes {
		line += " " + p.meta(fmt.Sprintf("(type 0x%08X, instance 0x%08X)",
			o.Entity().TypeID(), o.Entity().InstanceID()))
	}
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return err
	}

	if p.opts.ShowControllers {
		for _, name := range o.ControllerNames() {
			if _, err := fmt.Fprintln(p.w, childLead+p.ctrl("· "+name)); err != nil {
				return err
			}
		}
	}

	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return nil
	}

	tee, last, pipe, blank := p.branches()
	children := o.Children()
	for i, c := range children {
		branch, cont := tee, pipe
		if i == len(children)-1 {
			branch, cont = last, blank
		}
		if err := p.printObject(c, childLead+branch, childLead+cont, depth+1); err != nil {
			return err
		}
	}
	return nil
}
