package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"simple-http/config"
	"simple-http/handlers"
	"simple-http/server"
)

const shutdownGrace = 5 * time.Second

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// parseArgs solo conoce --config/-c; cualquier otra cosa es error.
func parseArgs(args []string, out io.Writer) (string, error) {
	fs := flag.NewFlagSet("simple-http", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.StringP("config", "c", config.DefaultPath, "ruta del archivo de configuracion (TOML o JSON)")

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() > 0 {
		return "", fmt.Errorf("argumento desconocido: %s", fs.Arg(0))
	}
	return *configPath, nil
}

func setupLogger(out io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

func run(args []string, stderr io.Writer) int {
	setupLogger(stderr, zerolog.InfoLevel)

	configPath, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error().Err(err).Msg("Argumentos invalidos")
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error().Err(err).Msg("No se pudo cargar la configuracion")
		return 1
	}
	level, _ := cfg.Level()
	setupLogger(stderr, level)
	log.Info().Str("config", configPath).Msg("Servidor iniciando...")

	srv := server.New(cfg, nil)
	if cfg.SpaMode() {
		log.Warn().Str("entry", cfg.Spa).Msg("Modo SPA")
	} else if err := handlers.Register(srv); err != nil {
		log.Error().Err(err).Msg("No se pudieron registrar las rutas")
		return 1
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Senal de apagado recibida")
		srv.Shutdown()
	}()

	if err := srv.ListenAndServe(); err != nil {
		log.Error().Err(err).Msg("Error al iniciar servidor")
		return 1
	}
	// Un cliente que nunca escribe retiene a su worker; no se espera para siempre.
	done := make(chan struct{})
	go func() {
		srv.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownGrace):
		log.Warn().Dur("grace", shutdownGrace).Msg("Workers ocupados al salir")
	}
	return 0
}
