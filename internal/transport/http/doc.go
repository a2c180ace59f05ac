// Package http contains the HTTP transport layer: chi handlers that map
// service results and domain errors onto the JSON API surface. Handlers
// hold no state beyond their service dependencies; every response is
// computed from the materialized store at request time.
package http
