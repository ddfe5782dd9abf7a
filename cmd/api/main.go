package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskflow/api/cmd/api/commands"
)

// @title TaskFlow API
// @version 1.0
// @description Task tracking service with filtering, pagination and soft delete

// @host localhost:8080
// @BasePath /api/v1

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskflow",
		Short: "TaskFlow API Server",
		Long:  `TaskFlow is a task tracking service exposing CRUD operations with filtering, pagination and soft delete over HTTP.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
