/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/jobboard/apiserver/config"
	"github.com/jobboard/apiserver/internal/auth"
	"github.com/jobboard/apiserver/internal/server"
	"github.com/jobboard/apiserver/internal/services"
	"github.com/spf13/cobra"
)

var (
	createAdminName     string
	createAdminEmail    string
	createAdminPassword string
)

// createAdminCmd provisions an Admin account directly against the
// store. It runs with deployment-level access only and is never part of
// the public API surface.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Provision an Admin account (operator use only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if createAdminEmail == "" || createAdminPassword == "" {
			return errors.New("--email and --password are required")
		}
		if len(createAdminPassword) < 8 {
			return errors.New("password must be at least 8 characters")
		}

		cfg := config.LoadConfig()
		if cfg.JWTSecret == "" {
			// The service signs no tokens on this path, but keep the
			// startup contract identical to the server.
			return errors.New("JWT_SECRET is required")
		}

		repo, closeStore, err := server.OpenAccountRepository(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() {
			_ = closeStore()
		}()

		credentials := services.NewCredentialService(repo, auth.NewTokenIssuer(cfg.JWTSecret))
		if err := credentials.CreateAdmin(cmd.Context(), createAdminName, createAdminEmail, createAdminPassword); err != nil {
			if errors.Is(err, services.ErrDuplicateAccount) {
				return fmt.Errorf("account %s already exists", createAdminEmail)
			}
			return err
		}

		fmt.Printf("admin account %s created\n", createAdminEmail)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVar(&createAdminName, "name", "", "display name")
	createAdminCmd.Flags().StringVar(&createAdminEmail, "email", "", "admin email address")
	createAdminCmd.Flags().StringVar(&createAdminPassword, "password", "", "admin password (min 8 characters)")
}
