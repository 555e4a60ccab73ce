package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"simple-http/config"
	"simple-http/utils"
)

type parsedResponse struct {
	status  string
	headers map[string]string
	body    string
}

func parseResponse(t *testing.T, raw string) parsedResponse {
	t.Helper()

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

// serveFake corre una conexion en memoria por el despachador y devuelve lo escrito.
func serveFake(t *testing.T, s *Server, raw string) string {
	t.Helper()

	conn := utils.NewFakeConn(raw)
	s.handleConnection(conn)
	if !conn.Closed {
		t.Errorf("La conexion no se cerro al terminar")
	}
	return conn.Buffer.String()
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("No se pudo crear %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("No se pudo escribir %s: %v", path, err)
		}
	}
	return dir
}

func testConfig(root, spa string) *config.Server {
	cfg := &config.Server{Listen: 1, Root: root, Spa: spa}
	cfg.ApplyDefaults()
	return cfg
}
