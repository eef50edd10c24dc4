// Package http provides the inventory web application's HTTP surface.
//
// The server exposes a single route:
//   - GET / serves the home page
//
// Every other request falls through to the router's default not-found
// response. Domain routes arrive together with the features that need
// them.
package http
