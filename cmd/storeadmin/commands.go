package main

import (
	"errors"
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/storeadmin/internal/billboard"
	"github.com/muurk/storeadmin/internal/config"
	"github.com/muurk/storeadmin/internal/logging"
	"github.com/muurk/storeadmin/internal/session"
	"github.com/muurk/storeadmin/internal/storeapi"
	"github.com/muurk/storeadmin/internal/tui"
	"github.com/muurk/storeadmin/internal/ui"
	"github.com/muurk/storeadmin/internal/urls"
)

// Global flags
var (
	apiURLFlag   string
	originFlag   string
	storeID      string
	configPath   string
	outputFormat string
)

// Command flags
var (
	labelFlag string
	assumeYes bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Admin API base URL (env "+config.APIURLEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&originFlag, "origin", "", "Dashboard origin shown in the API alert (env "+config.OriginEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&storeID, "store", "", "Store ID")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Registry file (default is the user config dir)")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(storesCmd)
	rootCmd.AddCommand(nameCmd)
}

// workspace is everything a command needs to act on one store.
type workspace struct {
	registry *config.Registry
	client   *storeapi.Client
	apiURL   string
	origin   string
}

func openWorkspace() (*workspace, error) {
	reg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	apiURL := reg.ResolveAPIURL(apiURLFlag)
	client := storeapi.NewClient(apiURL)
	if reg.Preferences != nil && reg.Preferences.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(reg.Preferences.TimeoutSeconds) * time.Second)
	}

	return &workspace{
		registry: reg,
		client:   client,
		apiURL:   apiURL,
		origin:   reg.ResolveOrigin(originFlag, apiURL),
	}, nil
}

func (w *workspace) confirmPhrase() string {
	if w.registry.Preferences != nil && w.registry.Preferences.ConfirmPhrase != "" {
		return w.registry.Preferences.ConfirmPhrase
	}
	return config.DefaultConfirmPhrase
}

// controller builds a form controller for storeID that reports through
// toaster and keeps the registry in step with successful actions.
func (w *workspace) controller(toaster *ui.Toaster) (*billboard.Controller, *session.PageSync) {
	sync := &session.PageSync{
		Registry: w.registry,
		Path:     configPath,
		StoreID:  storeID,
	}
	router := session.NewRouter(urls.BillboardsPage(storeID), sync.Refresh)

	ctrl := billboard.NewController(billboard.Options{
		StoreID:     storeID,
		Origin:      w.origin,
		InitialData: w.registry.InitialData(storeID),
		API:         w.client,
		Router:      router,
		Notifier:    toaster,
		OnStart:     sync.Begin,
	})
	sync.Label = func() string { return ctrl.Values().Label }
	return ctrl, sync
}

func requireStore() error {
	if storeID == "" {
		return errors.New("--store is required")
	}
	return nil
}

// editCmd opens the interactive form
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a store's billboard interactively",
	Long: `Open the billboard form for a store.

The label is seeded from the local registry when the store's billboard is
known, otherwise the form creates a new one. Press ctrl+d to delete.`,
	Example: `  storeadmin edit --store 6f1c2d
  storeadmin --store 6f1c2d --api-url https://admin.example.com`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	sync := &session.PageSync{
		Registry: ws.registry,
		Path:     configPath,
		StoreID:  storeID,
	}
	model := tui.NewFormModel(tui.FormConfig{
		API:         ws.client,
		StoreID:     storeID,
		Origin:      ws.origin,
		InitialData: ws.registry.InitialData(storeID),
		Sync:        sync,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	if fm, ok := final.(tui.FormModel); ok {
		if toast, ok := fm.LastToast(); ok {
			fmt.Fprintln(cmd.OutOrStdout(), toast.Render())
		}
	}
	warnRegistry(cmd, sync)
	return nil
}

// updateCmd saves the label without the interactive form
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Set a store's billboard label",
	Long: `Save a billboard label with a single PATCH request.

Any failure is reported as a notification and the command exits non-zero.`,
	Example: `  storeadmin update --store 6f1c2d --label "Summer sale"`,
	RunE:    runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&labelFlag, "label", "", "Billboard label (required)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	toaster := ui.NewToaster(out)
	ctrl, sync := ws.controller(toaster)

	header := ui.NewHeader(ctrl.Heading(), map[string]string{
		"Store": storeID,
		"API":   ws.apiURL,
	})
	fmt.Fprintln(out, header.Render())

	if err := ctrl.Submit(cmd.Context(), billboard.FormValues{Label: labelFlag}); err != nil {
		return err
	}
	if toaster.Failed() {
		return errors.New("update failed")
	}

	fmt.Fprintln(out, ui.RenderAlert(ctrl.APIAlert(), ui.GetTerminalWidth()))
	warnRegistry(cmd, sync)
	return nil
}

// deleteCmd deletes the billboard behind a typed confirmation
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a store's billboard",
	Long: `Delete a store's billboard.

The deletion must be confirmed by typing the confirmation phrase
(preferences.confirm_phrase in the registry, "DELETE" by default)
unless --yes is given. Deletion fails while categories still use the
billboard.`,
	Example: `  storeadmin delete --store 6f1c2d
  storeadmin delete --store 6f1c2d --yes`,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	toaster := ui.NewToaster(cmd.OutOrStdout())
	ctrl, sync := ws.controller(toaster)

	ctrl.RequestDelete()
	if !assumeYes && !ui.ConfirmBillboardDelete(cmd.InOrStdin(), cmd.OutOrStdout(), storeID, ws.confirmPhrase()) {
		ctrl.CloseDelete()
		return nil
	}

	ctrl.ConfirmDelete(cmd.Context())
	if toaster.Failed() {
		return errors.New("delete failed")
	}
	warnRegistry(cmd, sync)
	return nil
}

// storesCmd lists the stores in the local registry
var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List known stores",
	Long:  `List the stores in the local registry with their last known billboard.`,
	Example: `  storeadmin stores
  storeadmin stores --format yaml`,
	RunE: runStores,
}

func init() {
	storesCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, yaml)")
}

func runStores(cmd *cobra.Command, args []string) error {
	reg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reg.Stores); err != nil {
			return fmt.Errorf("failed to encode stores: %w", err)
		}
		return enc.Close()
	case "text":
	default:
		return fmt.Errorf("unknown format %q", outputFormat)
	}

	if len(reg.Stores) == 0 {
		fmt.Fprintln(out, "No stores in the registry.")
		fmt.Fprintln(out, "\nUse 'storeadmin update --store <id> --label <label>' to add one.")
		return nil
	}

	ids := make([]string, 0, len(reg.Stores))
	for id := range reg.Stores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		store := reg.Stores[id]
		name := store.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(out, "%s  %s\n", id, name)
		if store.Billboard != nil {
			fmt.Fprintf(out, "   Billboard: %s\n", store.Billboard.Label)
		} else {
			fmt.Fprintln(out, "   Billboard: none")
		}
		if !store.LastSynced.IsZero() {
			fmt.Fprintf(out, "   Synced:    %s\n", store.LastSynced.Local().Format(time.RFC822))
		}
	}
	return nil
}

// nameCmd sets a friendly name for a store
var nameCmd = &cobra.Command{
	Use:     "name NAME",
	Short:   "Name a store in the local registry",
	Example: `  storeadmin name --store 6f1c2d "Downtown"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runName,
}

func runName(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	reg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	reg.SetStoreName(storeID, args[0])
	if err := reg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	logging.Debug("Store named", zap.String("store_id", storeID), zap.String("name", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "%s Store %s named %q\n", ui.SuccessMarker, storeID, args[0])
	return nil
}

func warnRegistry(cmd *cobra.Command, sync *session.PageSync) {
	if err := sync.Err(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: registry not updated: %v\n", err)
	}
}
