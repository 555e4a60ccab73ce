package handlers

import (
	"testing"

	"simple-http/utils"
)

func TestPing(t *testing.T) {
	res := call(t, Ping)

	if res.status != utils.StatusOK {
		t.Errorf("Esperado status '%s', obtenido '%s'", utils.StatusOK, res.status)
	}
	if res.body != "pong" {
		t.Errorf("Esperado body 'pong', obtenido '%s'", res.body)
	}
	if res.headers["Content-Length"] != "4" {
		t.Errorf("Esperado Content-Length 4, obtenido '%s'", res.headers["Content-Length"])
	}
}
