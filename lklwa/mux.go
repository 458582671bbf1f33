package lklwa

import (
	"context"
	"net/http"

	"github.com/advdv/bhttp"
)

// Mux is an alias for bhttp.ServeMux with standard context.
type Mux = bhttp.ServeMux[context.Context]

// newMux creates a Mux with sensible defaults and an unlimited response
// buffer, so handlers can fail after partial writes without leaking bytes
// to the client.
func newMux() *Mux {
	logger := bhttp.NewStdLogger(nil)
	return bhttp.NewCustomServeMux(
		bhttp.StdContextInit,
		-1, // unlimited buffer
		logger,
		http.NewServeMux(),
		bhttp.NewReverser(),
	)
}
