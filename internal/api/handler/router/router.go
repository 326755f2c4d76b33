package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // applied to this route only, first one outermost
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "route not found", map[string]string{"path": r.URL.Path})
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "method not allowed", map[string]string{"method": r.Method})
	})

	router := &Router{
		router: rt,
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registers the routes, wrapping each handler with its own middlewares.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
