package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path pprof.Index expects the profiles under.
const PprofPrefix = "/debug/pprof/"

// PprofMux serves the runtime profiles. Mount it on PprofPrefix; named
// profiles (heap, goroutine, ...) are served by the index handler.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
