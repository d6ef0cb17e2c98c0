// Package controller holds the net/http middlewares wrapped around the API
// router: access logging with request ids, CORS for the browser bundles, and
// the pprof debug mux.
package controller
