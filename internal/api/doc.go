// Package api holds the HTTP handlers for users, products and orders. Handlers
// decode the request, call a service, and translate the result or error into
// a JSON response. Routing lives in cmd/server.
package api
