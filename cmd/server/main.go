package main

import (
	"log"

	"github.com/vitrinehq/vitrine/internal/server"

	// Imported for their init() registrations so `vitrine migrate`-managed
	// schemas and seed data are known to the server binary too.
	_ "github.com/vitrinehq/vitrine/database/migrations"
	_ "github.com/vitrinehq/vitrine/database/seeders"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
