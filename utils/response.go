package utils

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

var ErrAlreadySent = errors.New("la respuesta ya fue enviada")

// Send escribe la linea de estado, Content-Length, Content-Type opcional y el cuerpo.
// Un contentType vacio omite el encabezado.
func Send(w io.Writer, status, contentType string, body []byte) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(status)
	bw.WriteString("\nContent-Length: ")
	bw.WriteString(strconv.Itoa(len(body)))
	if contentType != "" {
		bw.WriteString("\nContent-Type:")
		bw.WriteString(contentType)
	}
	bw.WriteString("\n\n")
	bw.Write(body)

	return bw.Flush()
}

// Response es el destino que recibe un handler: una sola respuesta por conexion.
type Response struct {
	Status      string
	ContentType string

	w    io.Writer
	sent bool
}

func NewResponse(w io.Writer) *Response {
	return &Response{
		Status:      StatusOK,
		ContentType: TextPlain,
		w:           w,
	}
}

func (r *Response) Send(body []byte) error {
	if r.sent {
		return ErrAlreadySent
	}
	r.sent = true
	return Send(r.w, r.Status, r.ContentType, body)
}

func (r *Response) SendString(body string) error {
	return r.Send([]byte(body))
}

// Sent indica si ya se escribio algo en la conexion.
func (r *Response) Sent() bool {
	return r.sent
}
