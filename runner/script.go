// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"fmt"
	"strings"
)

// Response is a canned result for one scripted invocation.
type Response struct {
	Stdout string
	Stderr string
	Err    error
}

// Call records one invocation made against a Script.
type Call struct {
	Argv []string
	Dir  string
	Full bool
}

// Script is a Runner that answers from canned responses keyed by argv and
// working directory. An empty Dir in a rule matches any directory.
type Script struct {
	rules []rule
	Calls []Call
}

type rule struct {
	argv string
	dir  string
	resp Response
}

func NewScript() *Script {
	return &Script{}
}

// On registers the response for argv run in dir. Later rules win.
func (s *Script) On(argv []string, dir string, resp Response) *Script {
	s.rules = append(s.rules, rule{argv: key(argv), dir: dir, resp: resp})
	return s
}

func (s *Script) Run(argv []string, dir string) (string, error) {
	resp, err := s.lookup(argv, dir, false)
	if err != nil {
		return "", err
	}
	return resp.Stdout, resp.Err
}

func (s *Script) FullRun(argv []string, dir string) (string, error) {
	resp, err := s.lookup(argv, dir, true)
	if err != nil {
		return "", err
	}
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Stdout + "\n" + resp.Stderr, nil
}

// Invoked returns the argv of every call whose program is prog, in order.
func (s *Script) Invoked(prog string) (res [][]string) {
	for _, call := range s.Calls {
		if len(call.Argv) > 0 && call.Argv[0] == prog {
			res = append(res, call.Argv)
		}
	}
	return
}

func (s *Script) lookup(argv []string, dir string, full bool) (Response, error) {
	s.Calls = append(s.Calls, Call{Argv: argv, Dir: dir, Full: full})

	k := key(argv)
	for i := len(s.rules) - 1; i >= 0; i-- {
		r := s.rules[i]
		if r.argv == k && (r.dir == "" || r.dir == dir) {
			return r.resp, nil
		}
	}
	return Response{}, fmt.Errorf("runner: unscripted command %q in %s", argv, dir)
}

func key(argv []string) string {
	return strings.Join(argv, "\x00")
}
