package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"simple-http/config"
	"simple-http/server"
)

func TestRegister_ServesBuiltinRoutes(t *testing.T) {
	cfg := &config.Server{Listen: 1, Threads: 2}
	cfg.ApplyDefaults()
	srv := server.New(cfg, nil)
	if err := Register(srv); err != nil {
		t.Fatalf("Error inesperado registrando rutas: %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("No se pudo escuchar: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()
	defer func() {
		srv.Shutdown()
		<-done
		srv.Wait()
	}()

	get := func(path string) string {
		conn, err := net.DialTimeout("tcp", ln.Addr().String(), time.Second)
		if err != nil {
			t.Fatalf("No se pudo conectar: %v", err)
		}
		defer conn.Close()
		conn.SetDeadline(time.Now().Add(5 * time.Second))
		io.WriteString(conn, "GET "+path+" HTTP/1.1\r\n\r\n")
		out, _ := io.ReadAll(conn)
		_, body, _ := strings.Cut(string(out), "\n\n")
		return body
	}

	if body := get("/ping"); body != "pong" {
		t.Errorf("Esperado 'pong', obtenido '%s'", body)
	}
	if body := get("/help"); !strings.Contains(body, "- GET /status") {
		t.Errorf("La ayuda no lista /status: %s", body)
	}

	var status map[string]interface{}
	if err := json.Unmarshal([]byte(get("/status")), &status); err != nil {
		t.Fatalf("Cuerpo JSON invalido en /status: %v", err)
	}
	if status["total_workers"] != float64(2) {
		t.Errorf("Esperados 2 workers, obtenido %v", status["total_workers"])
	}
	if status["mode"] != "routes" {
		t.Errorf("Esperado modo 'routes', obtenido %v", status["mode"])
	}
	workers, ok := status["workers"].([]interface{})
	if !ok || len(workers) != 2 {
		t.Fatalf("Lista de workers inesperada: %v", status["workers"])
	}
	// El worker que atiende /status se ve a si mismo ocupado
	ocupados := 0
	for _, w := range workers {
		if w.(map[string]interface{})["state"] == "ocupado" {
			ocupados++
		}
	}
	if ocupados < 1 {
		t.Errorf("Esperado al menos 1 worker ocupado, obtenidos %d", ocupados)
	}

	// Despues de arrancar el router ya no acepta rutas
	if err := Register(srv); !errors.Is(err, server.ErrRouterSealed) {
		t.Errorf("Esperado ErrRouterSealed, obtenido '%v'", err)
	}
}
