package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"bloggable-backend/internal/auth"
	"bloggable-backend/internal/config"
	"bloggable-backend/internal/database"
	"bloggable-backend/internal/models"
	"bloggable-backend/internal/web"
)

var rootCmd = &cobra.Command{
	Use:   "bloggable",
	Short: "Bloggable - a minimal multi-user blogging platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the database schema and seed the default user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInitDB()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initDBCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe() error {
	cfg := config.Load()

	log.Printf("Initializing database at %s", cfg.DBPath)
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	users := database.NewUserRepo(db)
	posts := database.NewPostRepo(db)
	sessions := database.NewSessionRepo(db)

	// Create default user if no users exist
	if err := seedDefaultUser(cfg, users); err != nil {
		log.Printf("Warning: failed to seed default user: %v", err)
	}

	if n, err := sessions.DeleteExpired(); err == nil && n > 0 {
		log.Printf("Removed %d expired sessions", n)
	}

	authSvc := auth.NewService(users, sessions, cfg.SessionTTL)

	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	e.Renderer = renderer

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	handlers := web.NewHandlers(authSvc, posts)
	web.RegisterRoutes(e, handlers, authSvc)

	log.Printf("Starting bloggable on port %s", cfg.Port)
	return e.Start(":" + cfg.Port)
}

func runInitDB() error {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := seedDefaultUser(cfg, database.NewUserRepo(db)); err != nil {
		return err
	}

	log.Printf("Database ready at %s", cfg.DBPath)
	return nil
}

// seedDefaultUser creates the bootstrap account when the user table is
// empty. Operational convenience only; the default credential must be
// changed immediately.
func seedDefaultUser(cfg *config.Config, users *database.UserRepo) error {
	count, err := users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Users already exist
	}

	log.Printf("Creating default user (%s/%s) - CHANGE THIS PASSWORD!", cfg.BootstrapUser, cfg.BootstrapPassword)

	passwordHash, err := auth.HashPassword(cfg.BootstrapPassword)
	if err != nil {
		return err
	}

	return users.Create(&models.User{
		Username:     cfg.BootstrapUser,
		PasswordHash: passwordHash,
	})
}
