package handlers

import (
	"simple-http/server"
	"simple-http/utils"
)

// Register agrega las rutas integradas al router del servidor.
func Register(srv *server.Server) error {
	rt := srv.Router()

	routes := []struct {
		path    string
		handler server.HandlerFunc
	}{
		{"/ping", Ping},
		{"/timestamp", Timestamp},
		{"/help", Help(rt.Routes)},
		{"/status", Status(srv.StatusReport)},
	}

	for _, r := range routes {
		if err := rt.Handle(utils.GET, r.path, r.handler); err != nil {
			return err
		}
	}
	return nil
}
