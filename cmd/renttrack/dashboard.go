package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/model"
)

func StatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.DashboardStats(a.ctx(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tenants:        %d\n", s.TotalTenants)
			fmt.Fprintf(out, "Overdue:        %d\n", s.Overdue)
			fmt.Fprintf(out, "Next due date:  %s\n", s.NextDueDate)
			fmt.Fprintf(out, "Total revenue:  %.2f\n", s.TotalRevenue)
			return nil
		},
	}
}

func ActivityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.RecentActivity(a.ctx(cmd))
			if err != nil {
				return err
			}
			for _, act := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-18s  %s\n", act.Timestamp.Format("2006-01-02 15:04"), act.Type, act.Message)
			}
			return nil
		},
	}
}

func UsersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List staff accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.ListUsers(a.ctx(cmd))
			if err != nil {
				return err
			}
			for _, u := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s  %-20s  %-28s  %s\n", u.ID, u.Name, u.Email, u.Role)
			}
			return nil
		},
	}
}

func ExportCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:       "export <tenants|payments>",
		Short:     "Download a CSV export",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"tenants", "payments"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				exp api.Export
				err error
			)
			if args[0] == "tenants" {
				exp, err = a.client.ExportTenantsCSV(a.ctx(cmd))
			} else {
				exp, err = a.client.ExportPaymentsCSV(a.ctx(cmd))
			}
			if err != nil {
				return err
			}
			if dir == "-" {
				_, err = cmd.OutOrStdout().Write(exp.Data)
				return err
			}
			path := filepath.Join(dir, exp.Filename)
			if err := os.WriteFile(path, exp.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(exp.Data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write into, or - for stdout")
	return cmd
}

func SettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.GetSettings(a.ctx(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s)
		},
	}

	var accuracy float64
	set := &cobra.Command{
		Use:   "set",
		Short: "Change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.UpdateSettings(a.ctx(cmd), model.Settings{OCRAccuracy: accuracy})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s)
		},
	}
	set.Flags().Float64Var(&accuracy, "ocr-accuracy", 0, "OCR accuracy between 0 and 1")
	_ = set.MarkFlagRequired("ocr-accuracy")
	cmd.AddCommand(set)
	return cmd
}
