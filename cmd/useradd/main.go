// useradd provisions a user against the managed database. There is no
// registration endpoint; accounts are created out-of-band with this tool.
//
//	DATABASE_URL=postgres://... useradd -email ana@example.com -role admin
//
// The password is read from the PASSWORD environment variable so it never
// lands in shell history.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/model"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store/postgres"
)

func main() {
	email := flag.String("email", "", "email address of the new user")
	role := flag.String("role", model.RoleUser, "role: admin or user")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}
	if *role != model.RoleAdmin && *role != model.RoleUser {
		log.Fatalf("invalid role %q", *role)
	}

	password := os.Getenv("PASSWORD")
	if password == "" {
		log.Fatal("PASSWORD environment variable is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, databaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer pool.Close()

	user, err := postgres.NewUserStore(pool).Create(ctx, *email, string(hash), *role)
	if err != nil {
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("created user %d (%s, %s)\n", user.ID, user.Email, user.Role)
}
