// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/specs"
	"github.com/frontierzdd/frontier/zdd"
)

func buildTestDD(t *testing.T) *zdd.DD {
	t.Helper()
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.SetOrder(graph.AsIs))

	u, err := zdd.NewBuilder(specs.NewPower(g)).Build()
	require.NoError(t, err)
	return zdd.Reduce(u)
}

func TestServerStatsAndCardinality(t *testing.T) {
	dd := buildTestDD(t)
	s := New(dd, "triangle-path", 3, 2)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "triangle-path")

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cardinality", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "4\n", rec.Body.String())
}

func TestServerDumpFormats(t *testing.T) {
	dd := buildTestDD(t)
	s := New(dd, "g", 3, 2)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dump.sapporo", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), ".root")

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dump.dot", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "digraph zdd")
}

func TestServerUnknownRouteIs404(t *testing.T) {
	s := New(buildTestDD(t), "g", 3, 2)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
