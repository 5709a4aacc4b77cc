package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ResumeBot/config"
	"ResumeBot/document"
	"ResumeBot/repo"
)

type archiveStore interface {
	ListResumes(ctx context.Context, userID int64) ([]repo.ArchivedResume, error)
	ReadResume(ctx context.Context, userID int64, key string) (*repo.ArchivedResume, error)
	DeleteResumes(ctx context.Context, userID int64) error
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	archiveUser   int64
	archiveKey    string
	archiveOutput string
)

//nolint:gochecknoglobals // Cobra boilerplate
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect the résumé archive kept in Firebase",
}

//nolint:gochecknoglobals // Cobra boilerplate
var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the résumés delivered to a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openArchive(cmd.Context())
		if err != nil {
			return err
		}
		return listResumes(cmd.Context(), cmd.OutOrStdout(), store, archiveUser)
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render an archived résumé to PDF",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openArchive(cmd.Context())
		if err != nil {
			return err
		}
		return exportResume(cmd.Context(), store, archiveUser, archiveKey, archiveOutput)
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var archiveDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete every archived résumé of a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openArchive(cmd.Context())
		if err != nil {
			return err
		}
		if err := store.DeleteResumes(cmd.Context(), archiveUser); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted archive of user %d\n", archiveUser)
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	archiveCmd.PersistentFlags().Int64Var(&archiveUser, "user", 0, "Telegram user id (required)")
	_ = archiveCmd.MarkPersistentFlagRequired("user")

	archiveExportCmd.Flags().StringVar(&archiveKey, "key", "", "archive entry key (required)")
	archiveExportCmd.Flags().StringVarP(&archiveOutput, "output", "o", document.FileName, "PDF output path")
	_ = archiveExportCmd.MarkFlagRequired("key")

	archiveCmd.AddCommand(archiveListCmd, archiveExportCmd, archiveDeleteCmd)
	rootCmd.AddCommand(archiveCmd)
}

func openArchive(ctx context.Context) (archiveStore, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	fb, err := config.LoadFirebase()
	if err != nil {
		return nil, err
	}
	if fb == nil {
		return nil, errors.New("archive not configured: set " + config.EnvFirebaseKey + " and " + config.EnvFirebaseURL)
	}
	fc, err := repo.InitializeFirebase(ctx, fb)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

func listResumes(ctx context.Context, w io.Writer, store archiveStore, userID int64) error {
	entries, err := store.ListResumes(ctx, userID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(w, "no résumés archived for user %d\n", userID)
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tCREATED\tNAME\tFILE ID")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Key, e.CreatedAt.Format(time.RFC3339), e.Record.Name, e.DocumentFileID)
	}
	return tw.Flush()
}

func exportResume(ctx context.Context, store archiveStore, userID int64, key, output string) error {
	entry, err := store.ReadResume(ctx, userID, key)
	if err != nil {
		return err
	}
	return writePDF(entry.Record, output)
}
