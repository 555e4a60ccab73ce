package server

import (
	"bufio"
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog/log"

	"simple-http/utils"
)

// handleConnection atiende una conexion completa: parseo, despacho y una sola respuesta.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	inicio := time.Now()
	req, err := utils.ParseRequest(bufio.NewReader(conn))
	if err != nil {
		log.Warn().Err(err).Str("remote", remoteAddr(conn)).Msg("Error leyendo solicitud")
		return
	}

	s.Metrics.request()

	var fuente string
	if s.spa != nil {
		fuente, err = s.dispatchSpa(conn, req)
	} else {
		fuente, err = s.dispatch(conn, req)
	}

	if err != nil {
		if errors.Is(err, utils.ErrUnsupportedMethod) {
			log.Warn().Err(err).Str("url", req.URL).Msg("Solicitud descartada")
			return
		}
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL).Msg("Error escribiendo respuesta")
		return
	}

	if fuente == "404" {
		s.Metrics.notFound()
	}
	log.Info().
		Str("method", req.Method).
		Str("url", req.URL).
		Str("source", fuente).
		Dur("duration", time.Since(inicio)).
		Msg("Solicitud atendida")
}

// dispatch: ruta exacta, luego fallback, luego 404.
func (s *Server) dispatch(conn net.Conn, req *utils.Request) (string, error) {
	method, err := utils.ParseMethod(req.Method)
	if err != nil {
		return "", err
	}

	if handler, ok := s.router.Find(method, req.URL); ok {
		handler(utils.NewResponse(conn))
		return "route", nil
	}

	res, err := s.fallback.Resolve(req.URL)
	if err != nil {
		log.Warn().Str("method", req.Method).Str("url", req.URL).Err(err).Msg("Fallback sin resultado")
		return "404", sendNotFound(conn)
	}
	return res.Source, utils.Send(conn, res.Status, res.ContentType, res.Body)
}

func (s *Server) dispatchSpa(conn net.Conn, req *utils.Request) (string, error) {
	res, err := s.spa.Resolve(req.URL)
	if err != nil {
		log.Warn().Str("url", req.URL).Err(err).Msg("No encontrado")
		return "404", sendNotFound(conn)
	}
	return res.Source, utils.Send(conn, res.Status, res.ContentType, res.Body)
}

func remoteAddr(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return ""
}
