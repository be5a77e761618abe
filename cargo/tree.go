// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// `cargo tree --prefix depth` prints e.g. `2libc v0.2.150 (*)`.
	treeLine = regexp.MustCompile(`(\d+)([\w-]+) v([\d\.]+)( \(.+\))?`)

	ErrEmptyTree = errors.New("cargo: no dependencies found in cargo tree output")
)

// Entry is one line of the depth-prefixed dependency tree.
type Entry struct {
	Depth      int
	Name       string
	Version    string
	Annotation string
	// Parent is the index of the entry that pulled this one in, -1 for roots.
	Parent int
}

// Repeated reports whether cargo elided the subtree of this entry because it
// was already printed.
func (e Entry) Repeated() bool {
	return e.Annotation == "(*)" || strings.HasSuffix(e.Annotation, " (*)")
}

// TreeArgs are the cargo arguments producing the format ParseTree reads.
func TreeArgs(program string) []string {
	return []string{program, "tree", "--prefix", "depth"}
}

// ParseTree extracts every dependency line from `cargo tree --prefix depth`.
func ParseTree(text string) (entries []Entry, err error) {
	// last[d] is the index of the most recent entry at depth d
	var last []int

	for _, m := range treeLine.FindAllStringSubmatch(text, -1) {
		depth, perr := strconv.Atoi(m[1])
		if perr != nil {
			return nil, fmt.Errorf("cargo.ParseTree: bad depth in %q: %w", m[0], perr)
		}

		e := Entry{
			Depth:      depth,
			Name:       m[2],
			Version:    m[3],
			Annotation: strings.TrimSpace(m[4]),
			Parent:     -1,
		}
		if depth > 0 && depth-1 < len(last) {
			e.Parent = last[depth-1]
		}

		idx := len(entries)
		entries = append(entries, e)
		if depth < len(last) {
			last = append(last[:depth], idx)
		} else {
			for len(last) < depth {
				last = append(last, -1)
			}
			last = append(last, idx)
		}
	}

	if len(entries) == 0 {
		err = ErrEmptyTree
	}
	return
}
