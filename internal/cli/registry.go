package cli

import (
	"github.com/spf13/cobra"
)

func newRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Bootstrap and role governance",
	}

	cmd.AddCommand(newRegistryInitCmd())
	cmd.AddCommand(newRegistrySetServerCmd())
	cmd.AddCommand(newRegistrySetAdminCmd())
	cmd.AddCommand(newRegistryRolesCmd())

	return cmd
}

func newRegistryInitCmd() *cobra.Command {
	var admin, server string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the registry with admin and server identities",
		Long: `Initialize the registry. Succeeds exactly once per registry instance;
run it in the same deployment step that brings the registry up, before
anything else can reach it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"admin": admin, "server": server}

			var result RolesResult
			if err := client.Post("/api/v1/registry/initialize", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Admin identity")
	cmd.Flags().StringVar(&server, "registry-server", "", "Server identity")
	_ = cmd.MarkFlagRequired("admin")
	_ = cmd.MarkFlagRequired("registry-server")

	return cmd
}

func newRegistrySetServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-server <identity>",
		Short: "Reassign the server role (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"server": args[0]}
			if err := client.Put("/api/v1/registry/server", body, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("server role reassigned")
			return nil
		},
	}
}

func newRegistrySetAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-admin <identity>",
		Short: "Reassign the admin role (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"admin": args[0]}
			if err := client.Put("/api/v1/registry/admin", body, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("admin role reassigned")
			return nil
		},
	}
}

func newRegistryRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "Show the current role slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RolesResult
			if err := client.Get("/api/v1/registry/roles", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
