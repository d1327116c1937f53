package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hotel-frontdesk/commands"
)

func main() {
	// .env is optional; the environment wins
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "frontdesk",
		Short:        "Hotel front desk service",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		commands.ServeCmd(),
		commands.InitCmd(),
		commands.ReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
