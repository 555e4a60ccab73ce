package utils

import (
	"path"
	"strings"
)

const (
	TextPlain             = "text/plain"
	TextCSS               = "text/css"
	TextHTML              = "text/html"
	TextXML               = "text/xml"
	ApplicationJSON       = "application/json"
	ApplicationJavascript = "application/javascript"
)

var contentTypes = map[string]string{
	".css":   TextCSS,
	".html":  TextHTML,
	".xml":   TextXML,
	".json":  ApplicationJSON,
	".js":    ApplicationJavascript,
	".txt":   TextPlain,
	".map":   ApplicationJSON,
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".ico":   "image/x-icon",
	".wasm":  "application/wasm",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// ContentTypeOr devuelve el tipo MIME segun la extension de p, o def si no la conoce.
func ContentTypeOr(p, def string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(p))]; ok {
		return ct
	}
	return def
}

func ContentType(p string) string {
	return ContentTypeOr(p, TextPlain)
}
