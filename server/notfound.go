package server

import (
	_ "embed"
	"io"

	"simple-http/utils"
)

//go:embed 404.html
var notFoundPage []byte

// sendNotFound escribe la pagina 404 fija, sin Content-Type.
func sendNotFound(w io.Writer) error {
	return utils.Send(w, utils.StatusNotFound, "", notFoundPage)
}
