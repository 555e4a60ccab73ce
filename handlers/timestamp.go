package handlers

import (
	"time"

	"simple-http/utils"
)

func Timestamp(res *utils.Response) {
	now := time.Now().Format(time.RFC3339)

	res.ContentType = utils.ApplicationJSON
	res.SendString(`{"timestamp":"` + now + `"}` + "\n")
}
