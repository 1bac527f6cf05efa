package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/helmarr/internal/instance"
)

var instanceCmd = &cobra.Command{
	Use:   "instance",
	Short: "Manage configured manager instances",
}

var instanceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new instance",
	Long: `Register a new instance.

Examples:
  helmarr instance add --label Movies --type radarr --url https://radarr.example.com --api-key KEY
  helmarr instance add --label Shows --type sonarr --url https://sonarr.example.com --api-key KEY \
      --header "X-Proxy-Token: abc" --basic-auth admin:hunter2`,
	RunE: runInstanceAdd,
}

var instanceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a stored instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstanceUpdate,
}

var instanceRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a stored instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstanceRemove,
}

var instanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured instances",
	RunE:  runInstanceList,
}

var instanceSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Select the active instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstanceSelect,
}

var instanceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every configured instance",
	RunE:  runInstanceCheck,
}

func init() {
	rootCmd.AddCommand(instanceCmd)
	instanceCmd.AddCommand(instanceAddCmd, instanceUpdateCmd, instanceRemoveCmd,
		instanceListCmd, instanceSelectCmd, instanceCheckCmd)

	for _, cmd := range []*cobra.Command{instanceAddCmd, instanceUpdateCmd} {
		cmd.Flags().String("label", "", "Instance label")
		cmd.Flags().String("type", "", "Instance type (radarr or sonarr)")
		cmd.Flags().String("url", "", "Base URL")
		cmd.Flags().String("api-key", "", "API key")
		cmd.Flags().Int("timeout", 0, "Request timeout in seconds (10, 30 or 60)")
		cmd.Flags().StringArray("header", nil, `Custom header as "Name: value" (repeatable)`)
		cmd.Flags().String("basic-auth", "", "Add a Basic Authorization header from user:pass")
	}

	instanceRemoveCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runInstanceAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	inst := instance.Instance{
		TimeoutSeconds: a.cfg.Instances.DefaultTimeoutSeconds,
	}
	if err := applyInstanceFlags(cmd, &inst); err != nil {
		return err
	}

	created, err := a.lifecycle.Create(ctx, inst)
	if err != nil {
		printConnectionError(err)
		return err
	}

	fmt.Printf("Added instance %d (%s, %s)\n", created.ID, created.Label, created.Variant.AppName())

	// First instance becomes the selection automatically.
	if selected, err := a.store.Selected(ctx); err == nil && selected == 0 {
		if err := a.store.Select(ctx, created.ID); err == nil {
			fmt.Printf("Selected instance %d\n", created.ID)
		}
	}
	return nil
}

func runInstanceUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	current, err := a.store.Get(ctx, id)
	if err != nil {
		return err
	}

	inst := *current
	if err := applyInstanceFlags(cmd, &inst); err != nil {
		return err
	}

	updated, err := a.lifecycle.Update(ctx, inst)
	if err != nil {
		printConnectionError(err)
		return err
	}

	fmt.Printf("Updated instance %d (%s)\n", updated.ID, updated.Label)
	return nil
}

func runInstanceRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	inst, err := a.store.Get(ctx, id)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		input := prompt(fmt.Sprintf("Remove instance %d (%s)? This cannot be undone. [y/N]: ", id, inst.Label))
		if input != "y" && input != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	conf := a.lifecycle.RequestDelete(id)
	if err := a.lifecycle.Delete(ctx, conf); err != nil {
		printConnectionError(err)
		return err
	}

	fmt.Printf("Removed instance %d (%s)\n", id, inst.Label)
	return nil
}

func runInstanceList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	instances, err := a.store.List(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(instances)
		return nil
	}

	if len(instances) == 0 {
		fmt.Println("No instances configured")
		return nil
	}

	selected, err := a.store.Selected(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%-4s %-20s %-8s %-40s %s\n", "ID", "LABEL", "TYPE", "URL", "TIMEOUT")
	for _, inst := range instances {
		marker := " "
		if inst.ID == selected {
			marker = "*"
		}
		fmt.Printf("%s%-3d %-20s %-8s %-40s %ds\n",
			marker, inst.ID, inst.Label, inst.Variant.AppName(), inst.BaseURL, inst.TimeoutSeconds)
	}
	return nil
}

func runInstanceSelect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := a.store.Select(ctx, id); err != nil {
		return err
	}

	fmt.Printf("Selected instance %d\n", id)
	return nil
}

type checkResult struct {
	Instance string `json:"instance"`
	App      string `json:"app,omitempty"`
	Version  string `json:"version,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runInstanceCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	instances, err := a.store.List(ctx)
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		fmt.Println("No instances configured")
		return nil
	}

	results := make([]checkResult, len(instances))
	g, ctx := errgroup.WithContext(ctx)

	for i, inst := range instances {
		g.Go(func() error {
			results[i] = checkInstance(ctx, a, inst)
			return nil
		})
	}
	_ = g.Wait()

	if jsonOutput {
		printJSON(results)
		return nil
	}

	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("%-20s unreachable: %s\n", r.Instance, r.Error)
			continue
		}
		fmt.Printf("%-20s %s %s\n", r.Instance, r.App, r.Version)
	}
	return nil
}

func checkInstance(ctx context.Context, a *app, inst instance.Instance) checkResult {
	r := checkResult{Instance: inst.Label}

	status, err := a.client(inst).SystemStatus(ctx)
	if err != nil {
		r.Error = err.Error()
		return r
	}

	r.App = status.AppName
	r.Version = status.Version
	return r
}

// applyInstanceFlags overlays the provided flags onto a descriptor.
func applyInstanceFlags(cmd *cobra.Command, inst *instance.Instance) error {
	if cmd.Flags().Changed("label") {
		inst.Label, _ = cmd.Flags().GetString("label")
	}
	if cmd.Flags().Changed("url") {
		inst.BaseURL, _ = cmd.Flags().GetString("url")
	}
	if cmd.Flags().Changed("api-key") {
		inst.APIKey, _ = cmd.Flags().GetString("api-key")
	}
	if cmd.Flags().Changed("timeout") {
		inst.TimeoutSeconds, _ = cmd.Flags().GetInt("timeout")
	}

	if cmd.Flags().Changed("type") {
		kind, _ := cmd.Flags().GetString("type")
		switch strings.ToLower(kind) {
		case "radarr", "movie", "movies":
			inst.Variant = instance.VariantMovieManager
		case "sonarr", "series", "tv":
			inst.Variant = instance.VariantSeriesManager
		default:
			return fmt.Errorf("unknown instance type %q (want radarr or sonarr)", kind)
		}
	}

	if cmd.Flags().Changed("header") {
		lines, _ := cmd.Flags().GetStringArray("header")
		inst.Headers = append(inst.Headers, instance.ParsePastedHeaders(strings.Join(lines, "\n"))...)
	}
	if cmd.Flags().Changed("basic-auth") {
		creds, _ := cmd.Flags().GetString("basic-auth")
		user, pass, _ := strings.Cut(creds, ":")
		inst.Headers = append(inst.Headers, instance.EncodeBasicAuth(user, pass))
	}

	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid instance id %q", s)
	}
	return id, nil
}
