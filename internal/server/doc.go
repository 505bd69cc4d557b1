// Package server is the HTTP front-end: it generates records for the
// embedded fixture configurations on request.
//
//	GET /standards/{standard}/{config}  generated XML document
//	GET /metrics                        Prometheus metrics
//	GET /healthz                        liveness
package server
