package main

import (
	"fmt"
	"log"
	"os"

	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/pkg/auth"
)

// Prints an ADMIN_PASSWORD_HASH value for the given password.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_password.go <password>")
	}

	password := os.Args[1]

	cfg := &config.Config{}
	if loaded, err := config.Load(); err == nil {
		cfg = loaded
	} else {
		cfg.Security.BcryptCost = 12
	}
	passwords := auth.NewPasswordManager(cfg)

	hash, err := passwords.HashPassword(password)
	if err != nil {
		log.Fatal("Error generating hash: ", err)
	}

	if err := passwords.VerifyPassword(password, hash); err != nil {
		log.Fatal("Hash verification failed: ", err)
	}

	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
}
