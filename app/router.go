package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]nftoken.Handler
}

var _ nftoken.Registry = Router{}
var _ nftoken.Handler = Router{}

// NewRouter initializes a router with no routes
func NewRouter() Router {
	return Router{
		routes: make(map[string]nftoken.Handler, 10),
	}
}

// Handle adds a new Handler for the given path.
// Panics on duplicate or invalid paths.
func (r Router) Handle(path string, h nftoken.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("Invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path.
// If no path is found, returns a noSuchPath Handler.
// Always returns a non-nil Handler.
func (r Router) Handler(path string) nftoken.Handler {
	h, ok := r.routes[path]
	if !ok {
		return noSuchPathHandler{path}
	}
	return h
}

// Check dispatches to the proper handler based on path
func (r Router) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.CheckResult, error) {

	msg, err := tx.GetMsg()
	if err != nil {
		return nftoken.CheckResult{}, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg.Path())
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r Router) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.DeliverResult, error) {

	msg, err := tx.GetMsg()
	if err != nil {
		return nftoken.DeliverResult{}, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg.Path())
	return h.Deliver(ctx, store, tx)
}

//---------- unknown path handler ------

type noSuchPathHandler struct {
	path string
}

var _ nftoken.Handler = noSuchPathHandler{}

// Check always returns ErrNotFound
func (h noSuchPathHandler) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.CheckResult, error) {

	return nftoken.CheckResult{}, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", h.path)
}

// Deliver always returns ErrNotFound
func (h noSuchPathHandler) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.DeliverResult, error) {

	return nftoken.DeliverResult{}, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", h.path)
}
