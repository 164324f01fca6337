// Package http implements the HTTP transport layer of the course catalog.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as Basic authentication, request tracing,
// access logging, panic recovery and response compression are handled in
// this package before requests are delegated to the service layer.
//
// Handlers return errors instead of writing failures themselves; a single
// wrapper ([Handler.handle]) turns every returned error into a JSON response.
package http
