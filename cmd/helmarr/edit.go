package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/helmarr/internal/arr"
	"github.com/vmunix/helmarr/internal/media"
)

var libraryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one library item in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryShow,
}

var libraryAddCmd = &cobra.Command{
	Use:   "add <tmdb-id>",
	Short: "Start tracking a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryAdd,
}

var libraryMonitorCmd = &cobra.Command{
	Use:   "monitor <id>",
	Short: "Monitor a library item (or stop with --off)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryMonitor,
}

var libraryEditCmd = &cobra.Command{
	Use:   "edit <id>...",
	Short: "Apply a bulk edit to library items",
	Long: `Apply a bulk edit to library items.

Only the flags you pass are changed; everything else is left alone.

Examples:
  helmarr library edit 12 34 --monitored=false
  helmarr library edit 12 --quality-profile 4 --min-availability released
  helmarr library edit 12 34 56 --root-folder /movies4k --move-files`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLibraryEdit,
}

func init() {
	libraryCmd.AddCommand(libraryShowCmd, libraryAddCmd, libraryMonitorCmd, libraryEditCmd)

	libraryAddCmd.Flags().String("title", "", "Movie title")
	libraryAddCmd.Flags().Int("year", 0, "Release year")
	libraryAddCmd.Flags().Int64("quality-profile", 0, "Quality profile id")
	libraryAddCmd.Flags().String("root-folder", "", "Root folder path")
	libraryAddCmd.Flags().String("min-availability", "released", "Minimum availability (announced, in-cinemas or released)")
	libraryAddCmd.Flags().Bool("monitor", true, "Monitor the movie")

	libraryMonitorCmd.Flags().Bool("off", false, "Stop monitoring instead")

	libraryEditCmd.Flags().Bool("monitored", false, "Set the monitored flag")
	libraryEditCmd.Flags().Int64("quality-profile", 0, "Set the quality profile id")
	libraryEditCmd.Flags().String("min-availability", "", "Set the minimum availability")
	libraryEditCmd.Flags().String("root-folder", "", "Move items to a root folder")
	libraryEditCmd.Flags().Bool("move-files", false, "Move files when changing the root folder")
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
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

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	m, err := client.GetMovie(ctx, id)
	if err != nil {
		printConnectionError(err)
		return err
	}

	if jsonOutput {
		printJSON(m)
		return nil
	}

	state := media.DeriveState(*m, time.Now())
	fmt.Printf("%s (%d)\n", m.Title, m.Year)
	fmt.Printf("  State:        %s\n", state)
	fmt.Printf("  Monitored:    %t\n", m.Monitored)
	fmt.Printf("  Availability: %s\n", m.MinimumAvailability)
	if m.SizeOnDisk > 0 {
		fmt.Printf("  On disk:      %s\n", humanize.IBytes(uint64(m.SizeOnDisk)))
	}
	for _, d := range []struct {
		label string
		when  *time.Time
	}{
		{"In cinemas", m.InCinemas},
		{"Digital", m.DigitalRelease},
		{"Physical", m.PhysicalRelease},
	} {
		if d.when != nil {
			fmt.Printf("  %-13s %s\n", d.label+":", d.when.Format("2006-01-02"))
		}
	}
	return nil
}

func runLibraryAdd(cmd *cobra.Command, args []string) error {
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

	tmdbID, err := parseID(args[0])
	if err != nil {
		return fmt.Errorf("invalid tmdb id %q", args[0])
	}

	availability, _ := cmd.Flags().GetString("min-availability")
	minAvail, err := parseAvailability(availability)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	year, _ := cmd.Flags().GetInt("year")
	profile, _ := cmd.Flags().GetInt64("quality-profile")
	rootFolder, _ := cmd.Flags().GetString("root-folder")
	monitor, _ := cmd.Flags().GetBool("monitor")

	created, err := client.AddMovie(ctx, arr.Movie{
		TmdbID:              tmdbID,
		Title:               title,
		Year:                year,
		QualityProfileID:    profile,
		RootFolderPath:      rootFolder,
		Monitored:           monitor,
		MinimumAvailability: minAvail,
	})
	if err != nil {
		printConnectionError(err)
		return err
	}

	fmt.Printf("Tracking %s (%d) as id %d\n", created.Title, created.Year, created.ID)
	return nil
}

func runLibraryMonitor(cmd *cobra.Command, args []string) error {
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

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	m, err := client.GetMovie(ctx, id)
	if err != nil {
		printConnectionError(err)
		return err
	}

	off, _ := cmd.Flags().GetBool("off")
	m.Monitored = !off

	updated, err := client.UpdateMovie(ctx, *m)
	if err != nil {
		printConnectionError(err)
		return err
	}

	if updated.Monitored {
		fmt.Printf("Monitoring %s\n", updated.Title)
	} else {
		fmt.Printf("No longer monitoring %s\n", updated.Title)
	}
	return nil
}

func runLibraryEdit(cmd *cobra.Command, args []string) error {
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

	ids, err := parseIDList(args)
	if err != nil {
		return err
	}

	edit := arr.BatchEdit{MovieIDs: ids}

	if cmd.Flags().Changed("monitored") {
		v, _ := cmd.Flags().GetBool("monitored")
		edit.Monitored = &v
	}
	if cmd.Flags().Changed("quality-profile") {
		v, _ := cmd.Flags().GetInt64("quality-profile")
		edit.QualityProfileID = &v
	}
	if cmd.Flags().Changed("min-availability") {
		s, _ := cmd.Flags().GetString("min-availability")
		v, err := parseAvailability(s)
		if err != nil {
			return err
		}
		edit.MinimumAvailability = &v
	}
	if cmd.Flags().Changed("root-folder") {
		v, _ := cmd.Flags().GetString("root-folder")
		edit.RootFolderPath = &v
	}
	if cmd.Flags().Changed("move-files") {
		v, _ := cmd.Flags().GetBool("move-files")
		edit.MoveFiles = &v
	}

	if edit.Monitored == nil && edit.QualityProfileID == nil && edit.MinimumAvailability == nil &&
		edit.RootFolderPath == nil && edit.MoveFiles == nil {
		return fmt.Errorf("nothing to edit; pass at least one field flag")
	}

	edited, err := client.EditMovies(ctx, edit)
	if err != nil {
		printConnectionError(err)
		return err
	}

	fmt.Printf("Edited %d items\n", len(edited))
	return nil
}

func parseIDList(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseAvailability maps the CLI spelling of an availability stage to the
// wire value.
func parseAvailability(s string) (arr.MediaStatus, error) {
	switch strings.ToLower(s) {
	case "announced":
		return arr.StatusAnnounced, nil
	case "in-cinemas", "incinemas":
		return arr.StatusInCinemas, nil
	case "released":
		return arr.StatusReleased, nil
	}
	return "", fmt.Errorf("unknown availability %q (want announced, in-cinemas or released)", s)
}
