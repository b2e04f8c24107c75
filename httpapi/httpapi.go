// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package httpapi exposes a read-only HTTP inspection surface over an
// already-built, already-reduced diagram: stats, cardinality, and the
// sapporo/dot dump formats, for the frontierctl "serve" subcommand.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/frontierzdd/frontier/zdd"
)

// Server wraps a single in-memory diagram and the graph it was built
// from, answering GET requests against it. There is no write path: the
// diagram is immutable for the lifetime of the process.
type Server struct {
	dd     *zdd.DD
	name   string
	numV   int
	numE   int
	router *mux.Router
}

// New returns a Server ready to be handed to http.ListenAndServe. name,
// numV and numE are cosmetic, reported as-is by /stats.
func New(dd *zdd.DD, name string, numV, numE int) *Server {
	s := &Server{dd: dd, name: name, numV: numV, numE: numE}
	r := mux.NewRouter()
	r.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/cardinality", s.handleCardinality).Methods(http.MethodGet)
	r.HandleFunc("/dump.sapporo", s.handleDumpSapporo).Methods(http.MethodGet)
	r.HandleFunc("/dump.dot", s.handleDumpDOT).Methods(http.MethodGet)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "graph:       %s\n", s.name)
	fmt.Fprintf(w, "vertices:    %d\n", s.numV)
	fmt.Fprintf(w, "edges:       %d\n", s.numE)
	fmt.Fprintf(w, "top level:   %d\n", s.dd.Top)
	fmt.Fprintf(w, "nodes:       %d\n", s.dd.NodeCount())
}

func (s *Server) handleCardinality(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, zdd.Cardinality(s.dd).String())
}

func (s *Server) handleDumpSapporo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := zdd.DumpSapporo(w, s.dd); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDumpDOT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	if err := zdd.DumpDOT(w, s.dd); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
