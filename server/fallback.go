package server

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"simple-http/utils"
)

var (
	ErrFallbackDisabled   = errors.New("fallback apagado")
	ErrScriptExecDisabled = errors.New("ejecucion de scripts apagada")
	ErrScriptFailed       = errors.New("fallo la ejecucion del script")
)

// Resolved es una respuesta lista para enviar, sin haber tocado la conexion.
type Resolved struct {
	Status      string
	ContentType string
	Body        []byte
	Source      string
}

// Fallback resuelve lo que no encontro el router: archivo estatico, script o error.
type Fallback struct {
	Root             string
	ScriptExec       bool
	Interpreter      string
	ScriptExtensions []string
}

func (f *Fallback) Resolve(url string) (*Resolved, error) {
	if f == nil || f.Root == "" {
		return nil, ErrFallbackDisabled
	}

	target := resolvePath(f.Root, url)

	if f.isScript(target) {
		// Nunca se cae a servir el fuente del script.
		if !f.ScriptExec {
			return nil, fmt.Errorf("%w: %s", ErrScriptExecDisabled, target)
		}
		out, err := f.runScript(target)
		if err != nil {
			return nil, err
		}
		return &Resolved{Status: utils.StatusOK, ContentType: utils.TextHTML, Body: out, Source: "script"}, nil
	}

	body, err := os.ReadFile(target)
	if err != nil {
		return nil, err
	}
	return &Resolved{
		Status:      utils.StatusOK,
		ContentType: utils.ContentType(target),
		Body:        body,
		Source:      "static",
	}, nil
}

func (f *Fallback) isScript(target string) bool {
	ext := strings.ToLower(filepath.Ext(target))
	if ext == "" {
		return false
	}
	for _, e := range f.ScriptExtensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// runScript corre el interprete con la ruta como unico argumento y devuelve su stdout.
func (f *Fallback) runScript(target string) ([]byte, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s es un directorio", ErrScriptFailed, target)
	}

	var stderr bytes.Buffer
	cmd := exec.Command(f.Interpreter, target)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		log.Debug().Str("script", target).Str("stderr", stderr.String()).Msg("Salida de error del script")
		return nil, fmt.Errorf("%w: %s: %v", ErrScriptFailed, target, err)
	}
	return out, nil
}

// resolvePath une la raiz con la url sin permitir salir de la raiz.
func resolvePath(root, url string) string {
	return filepath.Join(root, filepath.FromSlash(path.Clean("/"+url)))
}
