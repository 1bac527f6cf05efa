package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/helmarr/internal/arr"
	"github.com/vmunix/helmarr/internal/instance"
	"github.com/vmunix/helmarr/internal/media"
	"github.com/vmunix/helmarr/pkg/match"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect the selected instance's library",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library items with their semantic state",
	RunE:  runLibraryList,
}

var librarySearchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Find the library item best matching a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibrarySearch,
}

var libraryCalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show release dates falling on a day",
	RunE:  runLibraryCalendar,
}

var libraryQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the instance's download queue",
	RunE:  runLibraryQueue,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd, librarySearchCmd, libraryCalendarCmd, libraryQueueCmd)

	libraryListCmd.Flags().String("state", "", "Filter by state (downloaded, waiting, missing, unwanted)")
	libraryCalendarCmd.Flags().String("day", "", "Day to inspect as YYYY-MM-DD (default today)")
}

// itemView is the row shape shared by table and JSON output.
type itemView struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Year      int         `json:"year"`
	State     media.State `json:"state"`
	Monitored bool        `json:"monitored"`
	Size      int64       `json:"sizeOnDisk"`
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	inst, client, err := a.selected(ctx)
	if err != nil {
		return err
	}

	if inst.Variant == instance.VariantSeriesManager {
		return seriesList(cmd, client)
	}

	movies, err := client.ListMovies(ctx)
	if err != nil {
		printConnectionError(err)
		return err
	}

	filter, _ := cmd.Flags().GetString("state")
	today := time.Now()

	var items []itemView
	for _, m := range movies {
		state := media.DeriveState(m, today)
		if filter != "" && string(state) != titleCase(filter) {
			continue
		}
		items = append(items, itemView{
			ID:        media.ItemID(m),
			Title:     m.Title,
			Year:      m.Year,
			State:     state,
			Monitored: m.Monitored,
			Size:      m.SizeOnDisk,
		})
	}

	if jsonOutput {
		printJSON(items)
		return nil
	}

	if len(items) == 0 {
		fmt.Println("No items")
		return nil
	}

	fmt.Printf("%-10s %-40s %-6s %-12s %s\n", "ID", "TITLE", "YEAR", "STATE", "SIZE")
	for _, it := range items {
		size := ""
		if it.Size > 0 {
			size = humanize.IBytes(uint64(it.Size))
		}
		fmt.Printf("%-10d %-40s %-6d %-12s %s\n", it.ID, truncate(it.Title, 40), it.Year, it.State, size)
	}
	return nil
}

// seriesView summarizes a series with its aggregate file state.
type seriesView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Monitored bool   `json:"monitored"`
	Episodes  string `json:"episodes"`
	Size      int64  `json:"sizeOnDisk"`
}

func seriesList(cmd *cobra.Command, client arr.API) error {
	ctx := cmd.Context()

	series, err := client.ListSeries(ctx)
	if err != nil {
		printConnectionError(err)
		return err
	}

	var items []seriesView
	for _, s := range series {
		v := seriesView{ID: s.ID, Title: s.Title, Year: s.Year, Monitored: s.Monitored}
		if s.Statistics != nil {
			v.Episodes = fmt.Sprintf("%d/%d", s.Statistics.EpisodeFileCount, s.Statistics.EpisodeCount)
			v.Size = s.Statistics.SizeOnDisk
		}
		items = append(items, v)
	}

	if jsonOutput {
		printJSON(items)
		return nil
	}

	if len(items) == 0 {
		fmt.Println("No items")
		return nil
	}

	fmt.Printf("%-10s %-40s %-6s %-10s %s\n", "ID", "TITLE", "YEAR", "EPISODES", "SIZE")
	for _, it := range items {
		size := ""
		if it.Size > 0 {
			size = humanize.IBytes(uint64(it.Size))
		}
		fmt.Printf("%-10d %-40s %-6d %-10s %s\n", it.ID, truncate(it.Title, 40), it.Year, it.Episodes, size)
	}
	return nil
}

func runLibrarySearch(cmd *cobra.Command, args []string) error {
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

	movies, err := client.ListMovies(ctx)
	if err != nil {
		printConnectionError(err)
		return err
	}

	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}

	result := match.Best(args[0], titles)
	if result.Index < 0 || result.Confidence == match.ConfidenceNone {
		fmt.Println("No match")
		return nil
	}

	m := movies[result.Index]
	state := media.DeriveState(m, time.Now())

	if jsonOutput {
		printJSON(map[string]any{
			"id":         media.ItemID(m),
			"title":      m.Title,
			"year":       m.Year,
			"state":      state,
			"score":      result.Score,
			"confidence": result.Confidence.String(),
		})
		return nil
	}

	fmt.Printf("%s (%d)  id=%d  state=%s  match=%s (%.2f)\n",
		m.Title, m.Year, media.ItemID(m), state, result.Confidence, result.Score)
	return nil
}

func runLibraryCalendar(cmd *cobra.Command, args []string) error {
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

	day := time.Now()
	if s, _ := cmd.Flags().GetString("day"); s != "" {
		day, err = time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return fmt.Errorf("invalid day %q: %w", s, err)
		}
	}

	movies, err := client.ListMovies(ctx)
	if err != nil {
		printConnectionError(err)
		return err
	}

	found := false
	for _, m := range movies {
		if w := media.ReleaseWindowOn(m, day); w != media.WindowNone {
			found = true
			fmt.Printf("%-40s %s\n", truncate(m.Title, 40), w)
		}
	}
	if !found {
		fmt.Printf("Nothing on %s\n", day.Format("2006-01-02"))
	}
	return nil
}

func runLibraryQueue(cmd *cobra.Command, args []string) error {
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

	q, err := client.Queue(ctx, 1, 50)
	if err != nil {
		printConnectionError(err)
		return err
	}

	if jsonOutput {
		printJSON(q)
		return nil
	}

	if len(q.Records) == 0 {
		fmt.Println("Queue is empty")
		return nil
	}

	fmt.Printf("%-40s %-14s %-10s %-10s %s\n", "TITLE", "STATUS", "SIZE", "LEFT", "TIME LEFT")
	for _, rec := range q.Records {
		fmt.Printf("%-40s %-14s %-10s %-10s %s\n",
			truncate(rec.Title, 40), rec.Status,
			humanize.IBytes(uint64(rec.Size)), humanize.IBytes(uint64(rec.SizeLeft)), rec.TimeLeft)
	}
	if q.TotalRecords > len(q.Records) {
		fmt.Printf("... and %d more\n", q.TotalRecords-len(q.Records))
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
