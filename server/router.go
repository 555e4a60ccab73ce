package server

import (
	"errors"
	"fmt"
	"sort"

	"simple-http/utils"
)

var ErrRouterSealed = errors.New("el router ya esta en uso, no se pueden agregar rutas")

// HandlerFunc recibe la respuesta ligada a la conexion y es dueno de todo lo que se envia.
type HandlerFunc func(res *utils.Response)

type Route struct {
	Method  utils.Method
	Path    string
	Handler HandlerFunc
}

// Router guarda las rutas por metodo. Se llena antes de escuchar y despues solo se lee.
type Router struct {
	routes map[utils.Method][]Route
	sealed bool
}

func NewRouter() *Router {
	return &Router{
		routes: map[utils.Method][]Route{
			utils.GET:  {},
			utils.POST: {},
		},
	}
}

func (rt *Router) Handle(method utils.Method, path string, handler HandlerFunc) error {
	if rt.sealed {
		return fmt.Errorf("%w: %s %s", ErrRouterSealed, method, path)
	}
	rt.routes[method] = append(rt.routes[method], Route{Method: method, Path: path, Handler: handler})
	return nil
}

// Find busca la primera ruta con la url exacta.
func (rt *Router) Find(method utils.Method, url string) (HandlerFunc, bool) {
	for _, route := range rt.routes[method] {
		if route.Path == url {
			return route.Handler, true
		}
	}
	return nil, false
}

// Routes lista las rutas registradas ordenadas por path y metodo.
func (rt *Router) Routes() []Route {
	var all []Route
	for _, list := range rt.routes {
		all = append(all, list...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Path != all[j].Path {
			return all[i].Path < all[j].Path
		}
		return all[i].Method < all[j].Method
	})
	return all
}

func (rt *Router) seal() {
	rt.sealed = true
}
