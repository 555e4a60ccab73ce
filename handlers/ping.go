package handlers

import (
	"simple-http/utils"
)

func Ping(res *utils.Response) {
	res.SendString("pong")
}
