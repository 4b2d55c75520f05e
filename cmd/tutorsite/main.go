// Command tutorsite runs the portfolio web server and manages blog content.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/npatters/tutorsite"
	"github.com/npatters/tutorsite/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	case "seed":
		if err := runSeed(false); err != nil {
			log.Fatal(err)
		}
	case "reset":
		if err := runSeed(true); err != nil {
			log.Fatal(err)
		}
	case "version":
		fmt.Printf("tutorsite %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tutorsite - personal portfolio site with tutoring bookings and a blog

Usage:
  tutorsite <command>

Commands:
  serve      Start the web server (default)
  seed       Upsert the built-in blog articles (idempotent, safe to re-run)
  reset      Delete ALL blog articles, then reseed (destructive, dev only)
  version    Print the version
  help       Show this help message`)
}

func configFromEnv() tutorsite.Config {
	port, err := strconv.Atoi(tutorsite.EnvOr("SMTP_PORT", "587"))
	if err != nil {
		log.Fatalf("invalid SMTP_PORT: %v", err)
	}
	return tutorsite.Config{
		Site: views.SiteConfig{
			Name:        tutorsite.EnvOr("SITE_NAME", "Portfolio"),
			URL:         tutorsite.EnvOr("SITE_URL", "http://localhost:3000"),
			Description: os.Getenv("SITE_DESCRIPTION"),
			Author:      os.Getenv("SITE_AUTHOR"),
		},
		Addr:          tutorsite.EnvOr("ADDR", ":3000"),
		DatabasePath:  tutorsite.EnvOr("DATABASE_PATH", "data/portfolio.db"),
		SessionSecret: tutorsite.MustEnv("SECRET_KEY"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		SMTP: tutorsite.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     port,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
			To:       os.Getenv("MAIL_TO"),
		},
	}
}

func runServe() error {
	app := tutorsite.New(configFromEnv())
	defer app.Close()
	return app.Start()
}

// runSeed reconciles the built-in article list against the database. With
// reset it first deletes every article, so ids and creation timestamps are
// not preserved.
func runSeed(reset bool) error {
	store, err := tutorsite.NewStore(tutorsite.EnvOr("DATABASE_PATH", "data/portfolio.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	if reset {
		if err := tutorsite.ResetArticles(store); err != nil {
			return err
		}
	} else if err := tutorsite.SeedArticles(store); err != nil {
		return err
	}
	fmt.Println("Blog content updated successfully")
	return nil
}
