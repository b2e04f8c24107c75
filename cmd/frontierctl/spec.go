// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
	"github.com/frontierzdd/frontier/specs"
	"github.com/frontierzdd/frontier/zdd"
)

// specFlags collects every flag that feeds a spec constructor, shared by
// the build, dump, cover and serve subcommands so they stay consistent.
type specFlags struct {
	kind       string
	mode       string
	ordering   string
	s, t       int
	constraint string
	terminals  string
	useCutDC   bool
	vertexVar  bool
	noIsolate  bool
	nonSelect  string
}

// parseRange turns "lo:hi" or "n" into an intsubset.Set. An empty string
// yields the empty (unconstrained) set.
func parseRange(s string) (intsubset.Set, error) {
	if s == "" {
		return intsubset.Set{}, nil
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		lo, err := strconv.Atoi(s[:i])
		if err != nil {
			return intsubset.Set{}, fmt.Errorf("invalid lower bound %q", s[:i])
		}
		hi, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return intsubset.Set{}, fmt.Errorf("invalid upper bound %q", s[i+1:])
		}
		return intsubset.Range(lo, hi), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return intsubset.Set{}, fmt.Errorf("invalid constraint %q", s)
	}
	return intsubset.New(v), nil
}

// parseVertices turns "0,1,2" into an intsubset.Set of vertex ids.
func parseVertices(s string) (intsubset.Set, error) {
	if s == "" {
		return intsubset.Set{}, nil
	}
	var vals []int
	for _, tok := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return intsubset.Set{}, fmt.Errorf("invalid vertex id %q", tok)
		}
		vals = append(vals, v)
	}
	return intsubset.New(vals...), nil
}

// loadGraph opens path and parses it in the §6 text format.
func loadGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return graph.ParseText(f, path)
}

// buildSpec parses flags and a graph file into a ready-to-build zdd.Spec.
// hybrid kinds (ecnt/vcnt/cover/vc, and ccs/vig/vcut/pac under
// --vertex-var) need a HybridGraph and go through buildHybridSpec; the rest use
// the plain Graph, so this also returns whichever graph object was
// actually constructed, since the caller may want to report NumV/NumE.
func buildSpec(path string, f specFlags) (zdd.Spec, *graph.Graph, error) {
	g, err := loadGraph(path)
	if err != nil {
		return nil, nil, err
	}
	ordering := graph.Ordering(f.ordering)
	if ordering == "" {
		ordering = graph.BFS
	}

	constraint, err := parseRange(f.constraint)
	if err != nil {
		return nil, nil, err
	}
	terminals, err := parseVertices(f.terminals)
	if err != nil {
		return nil, nil, err
	}

	switch f.kind {
	case "ccs":
		if err := g.SetOrder(ordering); err != nil {
			return nil, nil, err
		}
		return specs.NewCCS(g, f.mode, constraint, terminals), g, nil
	case "vig":
		if err := g.SetOrder(ordering); err != nil {
			return nil, nil, err
		}
		return specs.NewVIG(g, f.mode, constraint), g, nil
	case "vcut":
		if err := g.SetOrder(ordering); err != nil {
			return nil, nil, err
		}
		return specs.NewVCUT(g, constraint), g, nil
	case "pac":
		if err := g.SetOrder(ordering); err != nil {
			return nil, nil, err
		}
		return specs.NewPAC(g, f.s, f.t), g, nil
	case "power":
		if err := g.SetOrder(ordering); err != nil {
			return nil, nil, err
		}
		return specs.NewPower(g), g, nil
	case "dc":
		if err := g.SetOrder(ordering); err != nil {
			return nil, nil, err
		}
		cs := make([]intsubset.Set, g.NumV())
		for i := range cs {
			cs[i] = constraint
		}
		return specs.NewDegreeConstraint(g, cs, f.useCutDC), g, nil
	default:
		return nil, nil, fmt.Errorf("unknown spec kind %q (want ccs, vig, vcut, pac, power, dc, ecnt, vcnt, cover)", f.kind)
	}
}

// buildHybridSpec is buildSpec's counterpart for the HybridGraph-backed
// families (ecnt, vcnt, cover, vc), plus ccs/vig/vcut/pac when
// --vertex-var routes them to their HV counterparts, all of which need
// both item sequences built.
func buildHybridSpec(path string, f specFlags) (zdd.Spec, *graph.HybridGraph, error) {
	plain, err := loadGraph(path)
	if err != nil {
		return nil, nil, err
	}
	if err := plain.SetOrder(graph.AsIs); err != nil {
		return nil, nil, err
	}
	g := graph.NewHybrid(plain.NumV())
	for i := 0; i < plain.NumE(); i++ {
		e := plain.Edge(i)
		if err := g.AddEdge(e.V1, e.V2); err != nil {
			return nil, nil, err
		}
	}

	ordering := graph.Ordering(f.ordering)
	if ordering == "" {
		ordering = graph.BFS
	}
	if err := g.SetOrder(ordering); err != nil {
		return nil, nil, err
	}
	if err := g.SetItems(); err != nil {
		return nil, nil, err
	}

	constraint, err := parseRange(f.constraint)
	if err != nil {
		return nil, nil, err
	}

	terminals, err := parseVertices(f.terminals)
	if err != nil {
		return nil, nil, err
	}
	nonSelect, err := parseVertices(f.nonSelect)
	if err != nil {
		return nil, nil, err
	}

	switch f.kind {
	case "ecnt":
		return specs.NewEdgeCount(g, constraint), g, nil
	case "vcnt":
		return specs.NewVertexCount(g, constraint), g, nil
	case "cover":
		return specs.NewVertexSetCover(g, constraint), g, nil
	case "vc":
		return specs.NewVertexConstraint(g, terminals, nonSelect), g, nil
	case "ccs":
		return specs.NewCCSHV(g, f.mode, constraint, terminals), g, nil
	case "vig":
		return specs.NewVIGHV(g, f.mode, f.noIsolate, constraint), g, nil
	case "vcut":
		return specs.NewVCUTHV(g, constraint), g, nil
	case "pac":
		return specs.NewPACHV(g, f.s, f.t), g, nil
	default:
		return nil, nil, fmt.Errorf("unknown hybrid spec kind %q (want ecnt, vcnt, cover, vc, ccs, vig, vcut, pac)", f.kind)
	}
}

// isHybridKind reports whether f needs a HybridGraph: either f.kind
// names one of the always-hybrid families, or f.kind names a plain
// family with --vertex-var set, routing it to its HV counterpart.
func isHybridKind(f specFlags) bool {
	switch f.kind {
	case "ecnt", "vcnt", "cover", "vc":
		return true
	case "ccs", "vig", "vcut", "pac":
		return f.vertexVar
	default:
		return false
	}
}

// graphStats is the subset of Graph/HybridGraph information the build
// and batch subcommands print; it erases which concrete graph type
// buildAny constructed.
type graphStats struct {
	NumV, NumE int
}

// buildAny resolves f.kind to either buildSpec or buildHybridSpec, the
// one dispatch point every subcommand that needs a spec goes through.
func buildAny(path string, f specFlags) (zdd.Spec, graphStats, error) {
	if isHybridKind(f) {
		spec, g, err := buildHybridSpec(path, f)
		if err != nil {
			return nil, graphStats{}, err
		}
		return spec, graphStats{NumV: g.NumV(), NumE: g.NumE()}, nil
	}
	spec, g, err := buildSpec(path, f)
	if err != nil {
		return nil, graphStats{}, err
	}
	return spec, graphStats{NumV: g.NumV(), NumE: g.NumE()}, nil
}
