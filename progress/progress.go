// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Reporter shows what the pipeline is doing.
type Reporter interface {
	// Println prints a line that stays on screen.
	Println(msg string)
	// Status replaces the current status line.
	Status(msg string)
	// Done clears the status line and prints a final mark.
	Done(ok bool, msg string)
}

// Spinner renders the status line with a spinner, overwriting it in place.
type Spinner struct {
	w io.Writer
	s *spinner.Spinner
}

func NewSpinner(w io.Writer) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Prefix = " "
	s.Color("white")
	return &Spinner{w: w, s: s}
}

func (p *Spinner) Println(msg string) {
	p.stop()
	fmt.Fprintln(p.w, msg)
}

func (p *Spinner) Status(msg string) {
	p.s.Lock()
	p.s.Suffix = "  " + msg
	p.s.Unlock()

	if !p.s.Active() {
		p.s.Start()
	}
}

func (p *Spinner) Done(ok bool, msg string) {
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	if ok {
		p.s.FinalMSG = fmt.Sprintf("%s %s\n", green("[✓]"), msg)
	} else {
		p.s.FinalMSG = fmt.Sprintf("%s %s\n", red("[x]"), msg)
	}

	// The spinner never starts when w is not a terminal.
	if p.s.Active() {
		p.s.Stop()
	} else {
		fmt.Fprint(p.w, p.s.FinalMSG)
	}
	p.s.FinalMSG = ""
}

func (p *Spinner) stop() {
	if p.s.Active() {
		p.s.Stop()
	}
}

// Plain writes every message on its own line, for output that is not a
// terminal.
type Plain struct {
	W io.Writer
}

func (p Plain) Println(msg string) {
	fmt.Fprintln(p.W, msg)
}

func (p Plain) Status(msg string) {
	fmt.Fprintln(p.W, msg)
}

func (p Plain) Done(ok bool, msg string) {
	mark := "[✓]"
	if !ok {
		mark = "[x]"
	}
	fmt.Fprintf(p.W, "%s %s\n", mark, msg)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Println(string)    {}
func (Nop) Status(string)     {}
func (Nop) Done(bool, string) {}
