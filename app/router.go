package app

import (
	"fmt"
	"regexp"

	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/errors"
)

// Router allows us to register many handlers with different
// paths and then direct each message to the registered handler.
type Router struct {
	handlers map[string]quickex.Handler
}

var _ quickex.Registry = (*Router)(nil)
var _ quickex.Handler = (*Router)(nil)

// isPath constrains registered paths to the `extension/operation` form.
var isPath = regexp.MustCompile(`^[a-z0-9_]+(/[a-z0-9_]+)?$`).MatchString

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]quickex.Handler),
	}
}

// Handle implements Registry interface. Panics on invalid path or
// duplicate registration, this is a configuration error.
func (r *Router) Handle(path string, h quickex.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for this path, or a
// noSuchPathHandler if none was registered for that path.
func (r *Router) handler(m quickex.Msg) quickex.Handler {
	path := m.Path()
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return noSuchPathHandler{path: path}
}

// Check dispatches to the proper handler based on message path
func (r *Router) Check(ctx quickex.Context, store quickex.KVStore, tx quickex.Tx) (*quickex.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on message path
func (r *Router) Deliver(ctx quickex.Context, store quickex.KVStore, tx quickex.Tx) (*quickex.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns ErrNotFound with the path
// that could not be routed.
type noSuchPathHandler struct {
	path string
}

var _ quickex.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(quickex.Context, quickex.KVStore, quickex.Tx) (*quickex.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path: %s", h.path)
}

func (h noSuchPathHandler) Deliver(quickex.Context, quickex.KVStore, quickex.Tx) (*quickex.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path: %s", h.path)
}
