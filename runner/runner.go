// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"unicode/utf8"

	"github.com/DataDrake/waterlog"
)

// Runner invokes external tools. Both methods block until the child exits.
type Runner interface {
	// Run executes argv in dir and returns its standard output.
	Run(argv []string, dir string) (string, error)
	// FullRun executes argv in dir and returns its standard output and
	// standard error joined by a single newline.
	FullRun(argv []string, dir string) (string, error)
}

// ExitError is returned when a child exits with a non-zero code or is
// terminated without one.
type ExitError struct {
	Argv     []string
	Code     int
	Signaled bool
}

func (e *ExitError) Error() string {
	if e.Signaled {
		return fmt.Sprintf("command was interrupted: %q", e.Argv)
	}
	return fmt.Sprintf("command exited with %d: %q", e.Code, e.Argv)
}

// DecodeError is returned when the captured output is not valid UTF-8.
type DecodeError struct {
	Argv   []string
	Stream string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s of %q is not valid UTF-8", e.Stream, e.Argv)
}

// ErrEmptyCommand is returned when argv has no program.
var ErrEmptyCommand = errors.New("runner: empty command")

// Exec runs commands on the host.
type Exec struct{}

func (Exec) Run(argv []string, dir string) (stdout string, err error) {
	out, _, err := run(argv, dir)
	if err != nil {
		return
	}

	stdout, err = decode(argv, "stdout", out)
	return
}

func (Exec) FullRun(argv []string, dir string) (combined string, err error) {
	out, errOut, err := run(argv, dir)
	if err != nil {
		return
	}

	stdout, err := decode(argv, "stdout", out)
	if err != nil {
		return
	}
	stderr, err := decode(argv, "stderr", errOut)
	if err != nil {
		return
	}

	combined = stdout + "\n" + stderr
	return
}

func run(argv []string, dir string) (stdout []byte, stderr []byte, err error) {
	if len(argv) == 0 {
		err = ErrEmptyCommand
		return
	}

	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	waterlog.Debugf("runner: %q in %s\n", argv, dir)
	err = cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		err = &ExitError{Argv: argv, Code: code, Signaled: code == -1}
		return
	} else if err != nil {
		err = fmt.Errorf("runner: failed to start %q: %w", argv, err)
		return
	}

	stdout, stderr = outBuf.Bytes(), errBuf.Bytes()
	return
}

func decode(argv []string, stream string, raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", &DecodeError{Argv: argv, Stream: stream}
	}
	return string(raw), nil
}
