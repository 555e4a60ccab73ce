package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

const (
	DefaultPath        = "./simple_http_config.toml"
	DefaultHost        = "127.0.0.1"
	DefaultThreads     = 4
	DefaultInterpreter = "php"
)

var ErrInvalidConfig = errors.New("configuracion invalida")

// Config es el archivo completo. Se acepta tambien la tabla [serwer].
type Config struct {
	Server *Server `toml:"server" json:"server"`
	Serwer *Server `toml:"serwer" json:"serwer"`
}

// Server es el valor que recibe el servidor ya validado.
type Server struct {
	Listen           int      `toml:"listen" json:"listen"`
	Host             string   `toml:"host" json:"host"`
	Root             string   `toml:"root" json:"root"`
	Spa              string   `toml:"spa" json:"spa"`
	Threads          int      `toml:"threads" json:"threads"`
	ScriptExec       bool     `toml:"script_exec" json:"script_exec"`
	Interpreter      string   `toml:"interpreter" json:"interpreter"`
	ScriptExtensions []string `toml:"script_extensions" json:"script_extensions"`
	LogLevel         string   `toml:"log_level" json:"log_level"`
}

// Load lee el archivo en path, aplica valores por defecto y valida.
func Load(path string) (*Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leyendo configuracion %s: %w", path, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	srv := cfg.Server
	if srv == nil {
		srv = cfg.Serwer
	}
	if srv == nil {
		return nil, fmt.Errorf("%w: falta la tabla [server]", ErrInvalidConfig)
	}

	srv.ApplyDefaults()
	if err := srv.Validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (s *Server) ApplyDefaults() {
	if s.Host == "" {
		s.Host = DefaultHost
	}
	if s.Threads == 0 {
		s.Threads = DefaultThreads
	}
	if s.Interpreter == "" {
		s.Interpreter = DefaultInterpreter
	}
	if len(s.ScriptExtensions) == 0 {
		s.ScriptExtensions = []string{".php"}
	}
	if s.LogLevel == "" {
		s.LogLevel = zerolog.LevelInfoValue
	}
}

func (s *Server) Validate() error {
	if s.Listen < 1 || s.Listen > 65535 {
		return fmt.Errorf("%w: listen %d fuera de rango", ErrInvalidConfig, s.Listen)
	}
	if s.Threads < 1 {
		return fmt.Errorf("%w: threads debe ser mayor que 0", ErrInvalidConfig)
	}
	if s.ScriptExec && strings.TrimSpace(s.Interpreter) == "" {
		return fmt.Errorf("%w: script_exec requiere interpreter", ErrInvalidConfig)
	}
	for _, ext := range s.ScriptExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q debe empezar con '.'", ErrInvalidConfig, ext)
		}
	}
	if _, err := s.Level(); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s.LogLevel)
	}
	return nil
}

// SpaMode indica si se sirve una SPA en vez de rutas + archivos.
func (s *Server) SpaMode() bool {
	return s.Spa != ""
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Listen))
}

func (s *Server) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(s.LogLevel))
}
