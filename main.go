package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/midlaj-muhammed/expert-journey/cmd"
)

func main() {
	// A .env file is a convenience for local runs, not a requirement.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
