package handlers

import (
	"strings"

	"simple-http/server"
	"simple-http/utils"
)

// Help lista las rutas registradas; routes se consulta en cada solicitud.
func Help(routes func() []server.Route) server.HandlerFunc {
	return func(res *utils.Response) {
		var b strings.Builder
		b.WriteString("Rutas disponibles:\n")
		for _, r := range routes() {
			b.WriteString("- ")
			b.WriteString(string(r.Method))
			b.WriteString(" ")
			b.WriteString(r.Path)
			b.WriteString("\n")
		}
		res.SendString(b.String())
	}
}
