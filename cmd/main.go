package main

import (
	"os"

	"clinic-voice-tools/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "clinic-voice-tools",
		Short: "Slot lookup and booking tools for a clinic voice assistant",
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with configuration")

	rootCmd.AddCommand(serveCmd(&envFile))
	rootCmd.AddCommand(seedCmd(&envFile))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the tool API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New(cmd.Context(), *envFile)
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			app.Run()
			return nil
		},
	}
}

func seedCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create and seed the doctor directory, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New(cmd.Context(), *envFile)
			if err != nil {
				logrus.Errorf("Failed to seed doctor directory: %v", err)
				return err
			}
			defer app.Close()

			logrus.Info("Doctor directory initialized")
			return nil
		},
	}
}
