package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-provider/internal/adapter"
	"github.com/MKhiriev/go-pass-provider/models"
)

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the daemon version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := c.provider.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func (c *cli) accountsCommand() *cobra.Command {
	accounts := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts on the device (list, create, switch, logout)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts with their lock state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.provider.Accounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}
			if len(state.Accounts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accounts found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ACTIVE\tUSER ID\tEMAIL\tNAME\tVAULT\tLOGGED IN")
			for _, account := range state.Accounts {
				active := ""
				if account.UserID == state.ActiveUserID {
					active = "*"
				}
				vault := "locked"
				if account.IsVaultUnlocked {
					vault = "unlocked"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
					active, account.UserID, account.Email, account.Name, vault, account.IsLoggedIn)
			}
			return w.Flush()
		},
	}

	var email, name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Provision a local account; the master password is read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Master password: ")
			if err != nil {
				return err
			}

			account, err := c.provider.CreateAccount(cmd.Context(), models.NewAccountRequest{
				Email:          email,
				Name:           name,
				MasterPassword: password,
			})
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (%s)\n", account.UserID, account.Email)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "account email")
	create.Flags().StringVar(&name, "name", "", "display name")
	_ = create.MarkFlagRequired("email")

	switchCmd := &cobra.Command{
		Use:   "switch <user-id>",
		Short: "Make an account the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.provider.SwitchAccount(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to switch account: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active account is now %s\n", args[0])
			return nil
		},
	}

	logout := &cobra.Command{
		Use:   "logout <user-id>",
		Short: "Lock the vault and soft-logout an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.provider.Logout(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to log out: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged out %s\n", args[0])
			return nil
		},
	}

	accounts.AddCommand(list, create, switchCmd, logout)
	return accounts
}

func (c *cli) settingsCommand() *cobra.Command {
	settings := &cobra.Command{
		Use:   "settings",
		Short: "Read or change per-account vault timeout settings",
	}

	get := &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show the vault timeout and timeout action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.provider.Settings(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to read settings: %w", err)
			}
			printSettings(cmd, s)
			return nil
		},
	}

	var timeout, action string
	set := &cobra.Command{
		Use:   "set <user-id>",
		Short: "Change the vault timeout and/or timeout action",
		Long: `Change the vault timeout ("never", "on_app_restart" or minutes such as "15m")
and/or the action taken when it elapses ("lock" or "logout").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := parseSettingsUpdate(cmd, timeout, action)
			if err != nil {
				return err
			}

			s, err := c.provider.UpdateSettings(cmd.Context(), args[0], update)
			if err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}
			printSettings(cmd, s)
			return nil
		},
	}
	set.Flags().StringVar(&timeout, "timeout", "", "vault timeout")
	set.Flags().StringVar(&action, "action", "", "vault timeout action")
	set.MarkFlagsOneRequired("timeout", "action")

	settings.AddCommand(get, set)
	return settings
}

func parseSettingsUpdate(cmd *cobra.Command, timeout, action string) (adapter.SettingsUpdate, error) {
	var update adapter.SettingsUpdate

	if cmd.Flags().Changed("timeout") {
		t, err := models.ParseVaultTimeout(timeout)
		if err != nil {
			return update, err
		}
		update.Timeout = &t
	}
	if cmd.Flags().Changed("action") {
		a, err := models.ParseVaultTimeoutAction(action)
		if err != nil {
			return update, err
		}
		update.Action = &a
	}

	return update, nil
}

func printSettings(cmd *cobra.Command, s adapter.Settings) {
	fmt.Fprintf(cmd.OutOrStdout(), "timeout: %s\naction:  %s\n", s.Timeout, s.Action)
}

func (c *cli) vaultCommand() *cobra.Command {
	vault := &cobra.Command{
		Use:   "vault",
		Short: "Inspect and change vault lock state",
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show unlocked and unlocking users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.provider.VaultState(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read vault state: %w", err)
			}
			printVaultStatus(cmd, s)
			return nil
		},
	}

	lock := &cobra.Command{
		Use:   "lock [user-id]",
		Short: "Lock a vault, or the active user's vault when no id is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := ""
			if len(args) == 1 {
				userID = args[0]
			}
			if err := c.provider.LockVault(cmd.Context(), userID); err != nil {
				return fmt.Errorf("failed to lock vault: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Vault locked.")
			return nil
		},
	}

	unlock := &cobra.Command{
		Use:   "unlock <user-id>",
		Short: "Unlock a vault; the master password is read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Master password: ")
			if err != nil {
				return err
			}

			result, err := c.provider.UnlockVault(cmd.Context(), args[0], password)
			if err != nil {
				return fmt.Errorf("failed to unlock vault: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Vault unlocked (%s).\n", result)
			return nil
		},
	}

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Stream vault state changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.provider.WatchVault(cmd.Context(), func(s adapter.VaultStatus) {
				printVaultStatus(cmd, s)
			})
		},
	}

	vault.AddCommand(status, lock, unlock, watch)
	return vault
}

func printVaultStatus(cmd *cobra.Command, s adapter.VaultStatus) {
	fmt.Fprintf(cmd.OutOrStdout(), "unlocked:  %s\nunlocking: %s\n", joinOrDash(s.UnlockedUserIDs), joinOrDash(s.UnlockingUserIDs))
}

func joinOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}

func (c *cli) lifecycleCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "lifecycle <foregrounded|backgrounded>",
		Short:     "Report the hosting app moving to the foreground or background",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{models.AppForegrounded.String(), models.AppBackgrounded.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			state := models.AppForegrounded
			if args[0] == models.AppBackgrounded.String() {
				state = models.AppBackgrounded
			}
			return c.provider.SetLifecycle(cmd.Context(), state)
		},
	}
}

func (c *cli) credentialsCommand() *cobra.Command {
	credentials := &cobra.Command{
		Use:   "credentials",
		Short: "Query the credential pipeline",
	}

	var query adapter.CredentialQuery
	get := &cobra.Command{
		Use:   "get",
		Short: "Show the entries offered to a calling app",
		Long: `Simulate a get request from a calling app and print the entries and actions
the provider would offer. Nothing is completed or unlocked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !query.Passwords && query.PasskeyRequestJSON == "" {
				query.Passwords = true
			}

			response, err := c.provider.BeginGetCredential(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("failed to query credentials: %w", err)
			}
			return printCredentialResponse(cmd, response)
		},
	}
	get.Flags().StringVar(&query.PackageName, "package", "", "calling app package name")
	get.Flags().StringVar(&query.Origin, "origin", "", "calling app origin (e.g. https://example.com)")
	get.Flags().BoolVar(&query.Passwords, "passwords", false, "include a password option")
	get.Flags().StringSliceVar(&query.AllowedUserIDs, "allowed-user", nil, "restrict the password option to these user ids")
	get.Flags().StringVar(&query.PasskeyRequestJSON, "passkey-request", "", "WebAuthn request JSON for a passkey option")

	credentials.AddCommand(get)
	return credentials
}

func printCredentialResponse(cmd *cobra.Command, response models.BeginGetCredentialResponse) error {
	out := cmd.OutOrStdout()

	for _, action := range response.AuthenticationActions {
		fmt.Fprintf(out, "Authentication required: %s\n", action.Title)
	}
	if len(response.CredentialEntries) == 0 {
		fmt.Fprintln(out, "No matching credentials.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tUSERNAME\tCIPHER ID\tOPTION")
	for _, entry := range response.CredentialEntries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Type, entry.Username, entry.CipherID, entry.OptionID)
	}
	return w.Flush()
}
