package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/internal/service"
	"github.com/limbo/frisfocus/pkg/cleanup"
)

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().Bool("repair", false, "rewrite drifted fp_total values from the activity log")
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare stored FP totals with the activity log",
	Long: `Compare users.fp_total with the sum of each user's activity log.
Without --repair drifted users are only reported.`,
	RunE: runReconcile,
}

func runReconcile(cmd *cobra.Command, args []string) error {
	repair, _ := cmd.Flags().GetBool("repair")
	cfg := loadConfig()
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer cleanup.CleanUp(logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()
	pool, err := repository.Connect(ctx, pgConfig(cfg))
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	rs := service.NewReconcileService(repository.NewUsersRepoWithConn(pool), logger)

	out := cmd.OutOrStdout()
	if repair {
		repaired, err := rs.Repair(ctx)
		fmt.Fprintf(out, "repaired %d users\n", repaired)
		return err
	}
	drifts, err := rs.FindDrift(ctx)
	if err != nil {
		return err
	}
	if len(drifts) == 0 {
		fmt.Fprintln(out, "no drift")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "UID\tSTORED\tLOGGED")
	for _, d := range drifts {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", d.UserID, d.StoredTotal, d.LoggedTotal)
	}
	return tw.Flush()
}
