// Command renttrack drives the RentTrack data layer from the terminal,
// either against the built-in simulation or a running server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "renttrack",
		Short:             "RentTrack property management client",
		SilenceUsage:      true,
		PersistentPreRunE: a.open,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	a.bindFlags(rootCmd)

	rootCmd.AddCommand(
		LoginCmd(a),
		LogoutCmd(a),
		WhoamiCmd(a),
		ForgotPasswordCmd(a),
		TenantsCmd(a),
		PropertiesCmd(a),
		PaymentsCmd(a),
		UploadCmd(a),
		UploadsCmd(a),
		StatsCmd(a),
		ActivityCmd(a),
		UsersCmd(a),
		ExportCmd(a),
		SettingsCmd(a),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
