// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/frontierzdd/frontier/dderr"
)

// numbering assigns a dense, deterministic id (starting at 2, the way
// stdio.go reserves 0/1 for the BDD terminals) to every node reachable
// from root, walked depth-first.
func numbering(dd *DD) (order []Ref, id map[Ref]int) {
	id = map[Ref]int{}
	next := 2
	var walk func(r Ref)
	walk = func(r Ref) {
		if r.IsTerminal() {
			return
		}
		if _, seen := id[r]; seen {
			return
		}
		n := dd.node(r)
		walk(n.Lo)
		walk(n.Hi)
		id[r] = next
		next++
		order = append(order, r)
	}
	walk(dd.Root)
	sort.Slice(order, func(i, j int) bool { return id[order[i]] < id[order[j]] })
	return order, id
}

func termID(r Ref, id map[Ref]int) string {
	switch {
	case r.IsBot():
		return "B"
	case r.IsTop():
		return "T"
	default:
		return strconv.Itoa(id[r])
	}
}

// DumpSapporo writes dd in the Sapporo BDD/ZDD text interchange format:
// two header lines (".top" and ".n"), one line per node ("id level lo hi"), and a trailing
// line naming the root.
func DumpSapporo(w io.Writer, dd *DD) error {
	order, id := numbering(dd)

	if _, err := fmt.Fprintf(w, ".top %d\n", dd.Top); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, ".n %d\n", len(order)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, r := range order {
		n := dd.node(r)
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", id[r], r.Level, termID(n.Lo, id), termID(n.Hi, id))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, ".root %s\n", termID(dd.Root, id))
	return err
}

// DumpDOT writes dd as a Graphviz DOT digraph: solid edges for 1-edges,
// dashed edges for 0-edges, nodes ranked by level, and boxed terminals.
func DumpDOT(w io.Writer, dd *DD) error {
	order, id := numbering(dd)

	fmt.Fprintln(w, "digraph zdd {")
	fmt.Fprintln(w, `  B [shape=box, label="⊥"];`)
	fmt.Fprintln(w, `  T [shape=box, label="⊤"];`)
	for _, r := range order {
		n := dd.node(r)
		fmt.Fprintf(w, "  %d [label=\"%d\"];\n", id[r], r.Level)
		fmt.Fprintf(w, "  %d -> %s [style=dashed];\n", id[r], termID(n.Lo, id))
		fmt.Fprintf(w, "  %d -> %s [style=solid];\n", id[r], termID(n.Hi, id))
	}
	fmt.Fprintf(w, "  root=%s;\n", termID(dd.Root, id))
	fmt.Fprintln(w, "}")
	return nil
}

// DumpMatrix writes dd as a path-enumeration matrix: a header line
// "cols rows" followed by one line per accepting assignment, each
// listing the count and then the ascending 1-based levels taken.
// Intended for moderate-cardinality diagrams (consumers such as a
// set-cover enumerator); DumpMatrix does not itself bound the output.
func DumpMatrix(w io.Writer, dd *DD) error {
	var rows [][]int
	err := EnumeratePaths(dd, func(selected []int) error {
		row := append([]int(nil), selected...)
		sort.Ints(row)
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%d %d\n", dd.Top, len(rows)); err != nil {
		return err
	}
	for _, row := range rows {
		fields := make([]string, 0, len(row)+1)
		fields = append(fields, strconv.Itoa(len(row)))
		for _, c := range row {
			fields = append(fields, strconv.Itoa(c))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}

// ParseSapporo reads back the format written by DumpSapporo into a
// ready-to-query DD. It is the counterpart used by specs.Import to let
// an externally-produced diagram be intersected with one built here.
func ParseSapporo(r io.Reader, name string) (*DD, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var top, n int
	var rootTok string
	lineToRef := map[string]Ref{"B": Bot(), "T": Top()}
	byID := map[string]int{}

	var levels [][]node
	rawLevel := map[int][]int{} // level -> ids discovered, in file order
	pendingNode := map[int]struct {
		level  int
		lo, hi string
	}{}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, ".top "):
			if _, err := fmt.Sscanf(line, ".top %d", &top); err != nil {
				return nil, dderr.NewInput(name, fmt.Errorf("malformed .top line %q: %w", line, err))
			}
		case strings.HasPrefix(line, ".n "):
			if _, err := fmt.Sscanf(line, ".n %d", &n); err != nil {
				return nil, dderr.NewInput(name, fmt.Errorf("malformed .n line %q: %w", line, err))
			}
		case strings.HasPrefix(line, ".root "):
			rootTok = strings.TrimSpace(strings.TrimPrefix(line, ".root "))
		default:
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, dderr.NewInput(name, fmt.Errorf("malformed node line %q", line))
			}
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, dderr.NewInput(name, fmt.Errorf("malformed node id %q: %w", fields[0], err))
			}
			level, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, dderr.NewInput(name, fmt.Errorf("malformed node level %q: %w", fields[1], err))
			}
			pendingNode[id] = struct {
				level  int
				lo, hi string
			}{level, fields[2], fields[3]}
			rawLevel[level] = append(rawLevel[level], id)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dderr.NewInput(name, err)
	}
	if rootTok == "" {
		return nil, dderr.NewInput(name, fmt.Errorf("missing .root line"))
	}
	if len(pendingNode) != n {
		return nil, dderr.NewInput(name, fmt.Errorf("header declared %d nodes, found %d", n, len(pendingNode)))
	}

	levels = make([][]node, top+1)
	for level := 1; level <= top; level++ {
		ids := rawLevel[level]
		for _, id := range ids {
			byID[strconv.Itoa(id)] = len(levels[level])
			levels[level] = append(levels[level], node{})
		}
	}

	resolve := func(tok string) (Ref, error) {
		if r, ok := lineToRef[tok]; ok {
			return r, nil
		}
		pn, ok := pendingNode[mustAtoi(tok)]
		if !ok {
			return Ref{}, fmt.Errorf("reference to unknown node %q", tok)
		}
		col, ok := byID[tok]
		if !ok {
			return Ref{}, fmt.Errorf("reference to unknown node %q", tok)
		}
		return Ref{Level: pn.level, Col: col}, nil
	}

	for level := 1; level <= top; level++ {
		for col, id := range rawLevel[level] {
			pn := pendingNode[id]
			lo, err := resolve(pn.lo)
			if err != nil {
				return nil, dderr.NewInput(name, err)
			}
			hi, err := resolve(pn.hi)
			if err != nil {
				return nil, dderr.NewInput(name, err)
			}
			levels[level][col] = node{Lo: lo, Hi: hi}
		}
	}

	root, err := resolve(rootTok)
	if err != nil {
		return nil, dderr.NewInput(name, err)
	}

	return &DD{table{Top: top, Levels: levels, Root: root}}, nil
}

func mustAtoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return -3 // never matches a real pendingNode key or a terminal
	}
	return v
}
