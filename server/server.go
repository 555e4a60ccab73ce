package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"simple-http/config"
	"simple-http/pool"
)

var ErrServerStarted = errors.New("el servidor ya esta escuchando")

// Metricas del servidor
type Metricas struct {
	Mu            sync.Mutex
	TiempoInicio  time.Time
	TotalRequests int
	NotFound      int
}

func (m *Metricas) request() {
	m.Mu.Lock()
	m.TotalRequests++
	m.Mu.Unlock()
}

func (m *Metricas) notFound() {
	m.Mu.Lock()
	m.NotFound++
	m.Mu.Unlock()
}

// Server
type Server struct {
	Metrics *Metricas

	cfg      *config.Server
	router   *Router
	fallback *Fallback
	spa      *Spa

	mu       sync.Mutex
	pool     *pool.WorkerPool
	listener net.Listener
	closing  atomic.Bool
}

// New arma el servidor. Con cfg.Spa el router y el fallback no se usan.
func New(cfg *config.Server, router *Router) *Server {
	if router == nil {
		router = NewRouter()
	}

	s := &Server{
		Metrics: &Metricas{TiempoInicio: time.Now()},
		cfg:     cfg,
		router:  router,
	}

	if cfg.SpaMode() {
		s.spa = &Spa{Entry: cfg.Spa}
	} else if cfg.Root != "" {
		s.fallback = &Fallback{
			Root:             cfg.Root,
			ScriptExec:       cfg.ScriptExec,
			Interpreter:      cfg.Interpreter,
			ScriptExtensions: cfg.ScriptExtensions,
		}
	}
	return s
}

func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("no se pudo escuchar en %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ln)
}

// Serve acepta conexiones y las encola en el pool hasta que se llama Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.listener != nil {
		s.mu.Unlock()
		return ErrServerStarted
	}
	if s.closing.Load() {
		s.mu.Unlock()
		return ln.Close()
	}
	s.router.seal()
	s.listener = ln
	s.pool = pool.NewWorkerPool(s.cfg.Threads)
	wp := s.pool
	s.mu.Unlock()

	log.Info().
		Str("addr", ln.Addr().String()).
		Str("mode", s.mode()).
		Int("threads", s.cfg.Threads).
		Msg("Servidor escuchando")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.closing.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Error().Err(err).Msg("Error aceptando conexion")
			time.Sleep(10 * time.Millisecond)
			continue
		}

		if err := wp.Execute(func() { s.handleConnection(conn) }); err != nil {
			conn.Close()
			return nil
		}
	}
}

// Shutdown cierra el listener y manda las marcas de terminacion al pool.
// No espera a que los workers terminen, para eso esta Wait.
func (s *Server) Shutdown() error {
	s.closing.Store(true)

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	if s.pool != nil {
		s.pool.Shutdown()
	}
	log.Info().Msg("Servidor detenido")
	return err
}

// Wait bloquea hasta que todos los workers salieron.
func (s *Server) Wait() {
	s.mu.Lock()
	wp := s.pool
	s.mu.Unlock()

	if wp != nil {
		wp.Wait()
	}
}

func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Router() *Router {
	return s.router
}

func (s *Server) mode() string {
	if s.spa != nil {
		return "spa"
	}
	return "routes"
}

// StatusReport genera el estado del servidor para /status.
func (s *Server) StatusReport() map[string]interface{} {
	s.Metrics.Mu.Lock()
	uptime := time.Since(s.Metrics.TiempoInicio).Truncate(time.Second).String()
	totalRequests := s.Metrics.TotalRequests
	notFound := s.Metrics.NotFound
	s.Metrics.Mu.Unlock()

	s.mu.Lock()
	wp := s.pool
	s.mu.Unlock()

	workers := []pool.WorkerState{}
	pendientes := 0
	if wp != nil {
		workers = wp.Snapshot()
		pendientes = wp.Pending()
	}

	return map[string]interface{}{
		"uptime":            uptime,
		"main_pid":          os.Getpid(),
		"mode":              s.mode(),
		"total_connections": totalRequests,
		"not_found":         notFound,
		"total_workers":     len(workers),
		"pending":           pendientes,
		"workers":           workers,
	}
}
