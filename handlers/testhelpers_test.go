package handlers

import (
	"strings"
	"testing"

	"simple-http/utils"
)

type parsedResponse struct {
	status  string
	headers map[string]string
	body    string
}

// call ejecuta el handler contra una conexion en memoria y separa lo escrito.
func call(t *testing.T, handler func(*utils.Response)) parsedResponse {
	t.Helper()

	mockConn := utils.NewFakeConn("")
	handler(utils.NewResponse(mockConn))

	raw := mockConn.Buffer.String()
	head, body, ok := strings.Cut(raw, "\n\n")
	if !ok {
		t.Fatalf("Respuesta sin separador de cuerpo: %q", raw)
	}

	lines := strings.Split(head, "\n")
	res := parsedResponse{status: lines[0], headers: map[string]string{}, body: body}
	for _, line := range lines[1:] {
		k, v, _ := strings.Cut(line, ":")
		res.headers[k] = strings.TrimSpace(v)
	}
	return res
}
