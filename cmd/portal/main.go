package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/customizeworkflow/portal/internal/api"
	"github.com/customizeworkflow/portal/internal/cli"
	"github.com/customizeworkflow/portal/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"secret":                                     {},
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		options, err := parseResetPasswordArgs(os.Args[2:])
		if err != nil {
			os.Exit(2)
		}
		if err := cli.RunResetPasswordCommand(options); err != nil {
			fmt.Fprintf(os.Stderr, "reset-password: %v\n", err)
			os.Exit(1)
		}
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	port, err := resolvePort()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cookieSecure, err := parseBoolValue(getEnv("COOKIE_SECURE", "false"))
	if err != nil {
		log.Fatalf("config: COOKIE_SECURE: %v", err)
	}
	dbPath := defaultDBPath()
	templatesDir := getEnv("TEMPLATES_DIR", filepath.Join("internal", "templates"))

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, secretKey, templatesDir, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Customize Workflow Portal",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("portal listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// csrfMiddlewareConfig accepts the token from the csrf_token form field or,
// for script clients, the X-CSRF-Token header.
func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	fromForm := csrf.CsrfFromForm("csrf_token")
	fromHeader := csrf.CsrfFromHeader("X-CSRF-Token")

	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "portal_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Extractor: func(c *fiber.Ctx) (string, error) {
			if token, err := fromHeader(c); err == nil {
				return token, nil
			}
			return fromForm(c)
		},
	}
}

// parseResetPasswordArgs reads the flags of `portal reset-password`.
func parseResetPasswordArgs(args []string) (cli.ResetPasswordOptions, error) {
	flags := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	email := flags.String("email", "", "email of the account to reset")
	prompt := flags.Bool("prompt", false, "ask for the new password instead of generating one")
	dbPath := flags.String("db", defaultDBPath(), "path to the account database")
	if err := flags.Parse(args); err != nil {
		return cli.ResetPasswordOptions{}, err
	}
	if flags.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
		fmt.Fprintln(flags.Output(), err)
		return cli.ResetPasswordOptions{}, err
	}

	return cli.ResetPasswordOptions{
		DBPath: *dbPath,
		Email:  *email,
		Prompt: *prompt,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}, nil
}

func defaultDBPath() string {
	return getEnv("DB_PATH", filepath.Join("data", "portal.db"))
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(getEnv("PORT", "8080"))
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func parseBoolValue(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", raw)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
