package main

import (
	"amparo-api/core/logger"
	"amparo-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
