// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package graph

import (
	"bufio"
	"fmt"
	"io"

	"github.com/frontierzdd/frontier/dderr"
)

// ParseText reads the graph text format: a first line
// "V E", then E lines "u v" (0-indexed, undirected, duplicates allowed).
// name is used only to annotate any InputError raised while parsing.
func ParseText(r io.Reader, name string) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, dderr.NewInput(name, fmt.Errorf("empty graph file"))
	}
	var numV, numE int
	if _, err := fmt.Sscanf(sc.Text(), "%d %d", &numV, &numE); err != nil {
		return nil, dderr.NewInput(name, fmt.Errorf("malformed header %q: %w", sc.Text(), err))
	}
	if numV < 0 || numE < 0 {
		return nil, dderr.NewInput(name, fmt.Errorf("negative vertex or edge count in header %q", sc.Text()))
	}

	g := New(numV)
	for i := 0; i < numE; i++ {
		if !sc.Scan() {
			return nil, dderr.NewInput(name, fmt.Errorf("expected %d edges, found %d", numE, i))
		}
		var u, v int
		if _, err := fmt.Sscanf(sc.Text(), "%d %d", &u, &v); err != nil {
			return nil, dderr.NewInput(name, fmt.Errorf("malformed edge line %q: %w", sc.Text(), err))
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, dderr.NewInput(name, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dderr.NewInput(name, err)
	}
	return g, nil
}

// WriteText writes g in the same format ParseText reads, using the
// as-arrived order of AddEdge calls (before any SetOrder has run, or
// independent of it -- the text format carries no ordering metadata).
func WriteText(w io.Writer, g *Graph) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", g.numV, len(g.asisOr)); err != nil {
		return err
	}
	for _, p := range g.asisOr {
		if _, err := fmt.Fprintf(w, "%d %d\n", p.u, p.v); err != nil {
			return err
		}
	}
	return nil
}
