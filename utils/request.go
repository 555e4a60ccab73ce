package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyRequest         = errors.New("solicitud vacia")
	ErrMalformedRequestLine = errors.New("linea de solicitud mal formada")
	ErrUnsupportedMethod    = errors.New("metodo no soportado")
)

// Method es el verbo de la solicitud. Se deja como string para poder agregar verbos nuevos.
type Method string

const (
	GET  Method = "GET"
	POST Method = "POST"
)

// ParseMethod acepta GET/Get/get y POST/Post/post.
func ParseMethod(token string) (Method, error) {
	switch token {
	case "GET", "Get", "get":
		return GET, nil
	case "POST", "Post", "post":
		return POST, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, token)
}

// Request solo guarda lo que se usa para despachar: el metodo crudo y la url.
type Request struct {
	Method string
	URL    string
}

// ParseRequest lee una sola linea del lector. Los encabezados nunca se leen.
func ParseRequest(reader *bufio.Reader) (*Request, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return nil, ErrEmptyRequest
		}
		return nil, fmt.Errorf("leyendo linea de solicitud: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, " ")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRequestLine, line)
	}

	return &Request{Method: parts[0], URL: parts[1]}, nil
}
