package server

import (
	"os"

	"simple-http/utils"
)

// Spa reescribe todo lo que no sea un asset hacia Entry/index.html.
type Spa struct {
	Entry string
}

func (s *Spa) Resolve(url string) (*Resolved, error) {
	// El tipo por defecto text/html es el que decide la reescritura, no la url.
	target := resolvePath(s.Entry, url)
	if utils.ContentTypeOr(url, utils.TextHTML) == utils.TextHTML {
		target = resolvePath(s.Entry, "/index.html")
	}

	body, err := os.ReadFile(target)
	if err != nil {
		return nil, err
	}
	return &Resolved{
		Status:      utils.StatusOK,
		ContentType: utils.ContentType(target),
		Body:        body,
		Source:      "spa",
	}, nil
}
