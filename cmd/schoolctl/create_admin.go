package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"school-site-backend/config"
	"school-site-backend/internal/auth"
	"school-site-backend/internal/db"
	"school-site-backend/internal/model"
	"school-site-backend/internal/store"
)

// createAdminCmd represents the create-admin command
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create the administrator account",
	Long: `Create the administrator account interactively.

The command prompts for email, display name and password, hashes the
password and inserts a single administrator row. It refuses to proceed if
an administrator with the given email already exists.

Example:
  schoolctl create-admin
  schoolctl create-admin --config /etc/school/config.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := createAdmin(configPath(cmd)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Admin created.")
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)
}

func createAdmin(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", cfgPath, err)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Admin email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	fmt.Print("Admin name: ")
	name, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := string(passwordBytes)

	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		return err
	}

	appStore := store.NewGormStore(gormDB)
	admin := &model.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := appStore.CreateAdmin(context.Background(), admin); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return fmt.Errorf("an admin with email %s already exists", email)
		}
		return err
	}
	return nil
}
