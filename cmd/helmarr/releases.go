package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/helmarr/internal/arr"
	"github.com/vmunix/helmarr/internal/media"
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Search indexers and dispatch downloads",
}

var releasesSearchCmd = &cobra.Command{
	Use:   "search <movie-id>",
	Short: "Search indexers for releases of a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runReleasesSearch,
}

var releasesGrabCmd = &cobra.Command{
	Use:   "grab <movie-id> <number>",
	Short: "Download a release from a previous search by its row number",
	Args:  cobra.ExactArgs(2),
	RunE:  runReleasesGrab,
}

func init() {
	rootCmd.AddCommand(releasesCmd)
	releasesCmd.AddCommand(releasesSearchCmd, releasesGrabCmd)

	for _, cmd := range []*cobra.Command{releasesSearchCmd, releasesGrabCmd} {
		cmd.Flags().Bool("rejected", false, "Include releases the manager rejected")
	}
}

// visibleReleases filters search results the way the search table does.
// Grab resolves row numbers through the same filter, so pass the same
// --rejected value used for the search or the rows will not line up.
func visibleReleases(releases []arr.Release, includeRejected bool) []arr.Release {
	if includeRejected {
		return releases
	}

	var visible []arr.Release
	for _, r := range releases {
		if !r.Rejected {
			visible = append(visible, r)
		}
	}
	return visible
}

func runReleasesSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	_, client, err := a.selected(ctx)
	if err != nil {
		return err
	}

	movieID, err := parseID(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	releases, err := client.SearchReleases(ctx, movieID)
	if err != nil {
		printConnectionError(err)
		return err
	}

	includeRejected, _ := cmd.Flags().GetBool("rejected")
	now := time.Now()

	var views []media.ReleaseView
	for _, r := range visibleReleases(releases, includeRejected) {
		views = append(views, media.EvaluateRelease(r, now))
	}

	if jsonOutput {
		printJSON(views)
		return nil
	}

	if len(views) == 0 {
		fmt.Println("No releases found")
		return nil
	}

	fmt.Printf("%-4s %-50s %-12s %-10s %-14s %-16s %s\n",
		"#", "TITLE", "QUALITY", "SIZE", "AGE", "INDEXER", "PEERS")
	for i, v := range views {
		fmt.Printf("%-4d %-50s %-12s %-10s %-14s %-16s %s\n",
			i+1, truncate(v.Title, 50), v.QualityLabel, v.SizeLabel,
			v.AgeLabel, truncate(v.IndexerLabel, 16), v.PeersLabel)
		if v.RejectionLabel != "" {
			fmt.Printf("     rejected: %s\n", v.RejectionLabel)
		}
	}
	return nil
}

func runReleasesGrab(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	_, client, err := a.selected(ctx)
	if err != nil {
		return err
	}

	movieID, err := parseID(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie id %q", args[0])
	}
	row, err := parseID(args[1])
	if err != nil {
		return fmt.Errorf("invalid row number %q", args[1])
	}

	// Grabs need the (guid, indexerId) pair, so re-run the search and
	// pick the row out of the same ordering the table showed.
	releases, err := client.SearchReleases(ctx, movieID)
	if err != nil {
		printConnectionError(err)
		return err
	}

	includeRejected, _ := cmd.Flags().GetBool("rejected")
	candidates := visibleReleases(releases, includeRejected)
	if row < 1 || row > int64(len(candidates)) {
		return fmt.Errorf("row %d out of range (%d releases)", row, len(candidates))
	}
	r := candidates[row-1]

	eval := media.NewEvaluator(client, a.log.With("component", "evaluator"))
	if err := eval.Acquire(ctx, r); err != nil {
		printConnectionError(err)
		return err
	}

	fmt.Printf("Grab dispatched: %s\n", r.Title)
	return nil
}
