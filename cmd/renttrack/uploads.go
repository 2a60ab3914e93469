package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iliyamo/renttrack/internal/api"
)

func UploadCmd(a *app) *cobra.Command {
	var (
		wait     bool
		fileType string
	)
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Submit a tenant document for OCR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			id, err := a.client.UploadFile(ctx, api.FileUpload{
				Name: filepath.Base(args[0]),
				Type: fileType,
				Size: int64(len(data)),
				Data: data,
			})
			if err != nil {
				return err
			}
			if !wait {
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}

			notice(cmd, "Uploaded %s, waiting for OCR...", id)
			u, err := a.client.AwaitUpload(ctx, id)
			if errors.Is(err, api.ErrTimeout) {
				notice(cmd, "Still processing; check later with: renttrack uploads get %s", id)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "poll until OCR finishes")
	cmd.Flags().StringVar(&fileType, "type", "", "MIME type (detected when empty)")
	return cmd
}

func UploadsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uploads",
		Short: "Inspect and manage uploaded documents",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show an upload and its OCR result",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				u, err := a.client.GetUploadParsed(a.ctx(cmd), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), u)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete an upload",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.DeleteUpload(a.ctx(cmd), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "reprocess",
			Short: "Re-queue failed OCR jobs",
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := a.client.ReprocessFailedOCR(a.ctx(cmd))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d upload(s) re-queued\n", n)
				return nil
			},
		},
	)
	return cmd
}
