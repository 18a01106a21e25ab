package main

import (
	"fmt"
	"strconv"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
)

const stepsFlag = "steps"

var rollbackFlags = map[string]cobraflags.Flag{
	stepsFlag: &cobraflags.StringFlag{
		Name:  stepsFlag,
		Value: "1",
		Usage: "Number of migrations to revert",
	},
}

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE:  migrateUpCommand,
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migrations",
		RunE:  migrateDownCommand,
	}
	cobraflags.RegisterMap(down, rollbackFlags)

	migrateCmd.AddCommand(up, down)
	return migrateCmd
}

func migrateUpCommand(_ *cobra.Command, _ []string) error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer func() { _ = database.Close(db) }()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return database.RunMigrations(sqlDB, logger)
}

func migrateDownCommand(_ *cobra.Command, _ []string) error {
	steps, err := strconv.Atoi(rollbackFlags[stepsFlag].GetString())
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", stepsFlag, err)
	}

	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer func() { _ = database.Close(db) }()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return database.RollbackMigrations(sqlDB, steps, logger)
}
