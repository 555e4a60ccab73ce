package utils

const (
	StatusOK        = "HTTP/1.1 200 OK"
	StatusCreated   = "HTTP/1.1 201 Created"
	StatusAccepted  = "HTTP/1.1 202 Accepted"
	StatusNoContent = "HTTP/1.1 204 No Content"

	StatusMovedPermanently = "HTTP/1.1 301 Moved Permanently"
	StatusFound            = "HTTP/1.1 302 Found"
	StatusSeeOther         = "HTTP/1.1 303 See Other"
	StatusNotModified      = "HTTP/1.1 304 Not Modified"

	StatusBadRequest       = "HTTP/1.1 400 Bad Request"
	StatusUnauthorized     = "HTTP/1.1 401 Unauthorized"
	StatusForbidden        = "HTTP/1.1 403 Forbidden"
	StatusNotFound         = "HTTP/1.1 404 Not Found"
	StatusMethodNotAllowed = "HTTP/1.1 405 Method Not Allowed"

	StatusInternalServerError = "HTTP/1.1 500 Internal Server Error"
	StatusNotImplemented      = "HTTP/1.1 501 Not Implemented"
	StatusBadGateway          = "HTTP/1.1 502 Bad Gateway"
	StatusServiceUnavailable  = "HTTP/1.1 503 Service Unavailable"
)
