package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
)

const (
	emailFlag     = "email"
	firstNameFlag = "first-name"
	lastNameFlag  = "last-name"
	titleFlag     = "title"
	phoneFlag     = "phone"
)

// The password is read from RMS_ADMIN_PASSWORD so it stays out of shell history.
const adminPasswordEnv = "RMS_ADMIN_PASSWORD"

var adminFlags = map[string]cobraflags.Flag{
	emailFlag:     &cobraflags.StringFlag{Name: emailFlag, Usage: "Administrator email (required)"},
	firstNameFlag: &cobraflags.StringFlag{Name: firstNameFlag, Value: "System", Usage: "First name"},
	lastNameFlag:  &cobraflags.StringFlag{Name: lastNameFlag, Value: "Administrator", Usage: "Last name"},
	titleFlag:     &cobraflags.StringFlag{Name: titleFlag, Value: "Mr", Usage: "Title"},
	phoneFlag:     &cobraflags.StringFlag{Name: phoneFlag, Value: "00000000000", Usage: "Phone number"},
}

func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a user holding the administrator role",
		Long: `Create a user and assign it the configured administrator role (auth.admin_role),
creating the role first when it does not exist. Everything runs in one transaction.
If the email already belongs to a user, that user is given the role and is otherwise
left unchanged, so the command can be re-run.

The password is read from the ` + adminPasswordEnv + ` environment variable.`,
		RunE: createAdminCommand,
	}
	cobraflags.RegisterMap(cmd, adminFlags)
	return cmd
}

func createAdminCommand(_ *cobra.Command, _ []string) error {
	email := adminFlags[emailFlag].GetString()
	if email == "" {
		return fmt.Errorf("--%s is required", emailFlag)
	}
	password := os.Getenv(adminPasswordEnv)
	if password == "" {
		return fmt.Errorf("%s must be set", adminPasswordEnv)
	}

	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer func() { _ = database.Close(db) }()

	out, err := service.CreateAdmin(context.Background(), repository.NewRepository(db), &dto.CreateUserRequest{
		Title:       adminFlags[titleFlag].GetString(),
		FirstName:   adminFlags[firstNameFlag].GetString(),
		LastName:    adminFlags[lastNameFlag].GetString(),
		Email:       email,
		PhoneNumber: adminFlags[phoneFlag].GetString(),
		Password:    password,
	}, cfg.Auth.AdminRole, logger)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	msg := "administrator created"
	if !out.Created {
		msg = "existing user granted the administrator role"
	}
	logger.Info(msg,
		zap.Int64("user_id", out.User.ID),
		zap.String("email", out.User.Email),
		zap.String("role", out.Role.Name),
	)
	return nil
}
