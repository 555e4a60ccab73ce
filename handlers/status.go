package handlers

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"simple-http/server"
	"simple-http/utils"
)

// Status responde en JSON lo que devuelva report.
func Status(report func() map[string]interface{}) server.HandlerFunc {
	return func(res *utils.Response) {
		jsonData, err := json.MarshalIndent(report(), "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("Error generando JSON de estado")
			res.Status = utils.StatusInternalServerError
			res.SendString("Error generando JSON")
			return
		}

		res.ContentType = utils.ApplicationJSON
		res.Send(jsonData)
	}
}
