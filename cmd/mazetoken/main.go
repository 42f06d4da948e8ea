// Command mazetoken issues a bearer token for the protected maze routes.
// It signs with JWT_SECRET and JWT_ISSUER, read from the environment or a
// .env file in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mazetoken: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mazetoken", flag.ContinueOnError)
	fs.SetOutput(stderr)
	subject := fs.String("subject", "", "subject the token is issued to")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	scope := fs.String("scope", identity.ScopeMazesWrite, "scope granted by the token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *subject == "" {
		return errors.New("-subject is required")
	}
	secret := getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is not set")
	}

	issuer := getenv("JWT_ISSUER")
	if issuer == "" {
		return errors.New("JWT_ISSUER is not set")
	}

	tokenizer := token.NewJwtService(secret, issuer)
	signed, err := tokenizer.Generate(map[string]interface{}{
		"sub":   *subject,
		"scope": *scope,
	}, *ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, signed)
	return nil
}
