package main

import (
	"log"

	"catering/internal/api"
)

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
