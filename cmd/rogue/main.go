package main

import (
	"github.com/joho/godotenv"

	"github.com/IgorBio/Rogue-sub001/cmd/rogue/root"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	root.Execute()
}
