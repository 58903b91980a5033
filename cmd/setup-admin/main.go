// Command setup-admin creates the initial admin user.
// It is used to bootstrap a fresh installation.
//
// Usage:
//
//	setup-admin --username=admin --password=secret --full-name="Site Admin"
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "admin", "username for the admin account")
	password := flag.String("password", "", "password for the admin account")
	fullName := flag.String("full-name", "Administrator", "display name for the admin account")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: setup-admin --username=admin --password=secret")
		os.Exit(1)
	}
	if len(*password) < 4 {
		log.Fatal("password must be at least 4 characters")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	var exists bool
	err = pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", *username,
	).Scan(&exists)
	if err != nil {
		log.Fatalf("check existing user: %v", err)
	}
	if exists {
		fmt.Printf("User %q already exists, nothing to do.\n", *username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	_, err = pool.Exec(ctx,
		"INSERT INTO users (username, password_hash, full_name, is_admin) VALUES ($1, $2, $3, true)",
		*username, string(hash), *fullName,
	)
	if err != nil {
		log.Fatalf("create admin user: %v", err)
	}

	fmt.Printf("Admin user %q created.\n", *username)
}
