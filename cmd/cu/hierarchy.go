package main

import (
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		user, err := c.GetCurrentUser(cmd.Context())
		if err != nil {
			return err
		}

		printUser(cmd.OutOrStdout(), user, c.Email(), jsonOutput)
		return nil
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams visible to the user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		printTeams(cmd.OutOrStdout(), c.ListTeams(), jsonOutput)
		return nil
	},
}

var spacesCmd = &cobra.Command{
	Use:   "spaces [team-id]",
	Short: "List spaces",
	Long: `List spaces. Without an argument, prints every space discovered at login
with its owning team. With a team ID, queries that team's spaces.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) == 0 {
			printSpaces(cmd.OutOrStdout(), c.Spaces(), jsonOutput)
			return nil
		}

		resp, err := c.ListTeamSpaces(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printNamed(cmd.OutOrStdout(), resp, "spaces", "No spaces found", jsonOutput)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories [space-id]",
	Short: "List the subcategories of a space",
	Long: `Fetch the categories of a space and print their subcategories, which are
the containers tasks are created in. Defaults to space_id from clickup.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		spaceID := cfg.SpaceID
		if len(args) == 1 {
			spaceID = args[0]
		}

		resp, err := c.ListCategories(cmd.Context(), spaceID)
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		printSubcategories(cmd.OutOrStdout(), c.Subcategories(), spaceID, false)
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags [space-id]",
	Short: "List the tags of a space",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		spaceID := cfg.SpaceID
		if len(args) == 1 {
			spaceID = args[0]
		}

		resp, err := c.ListTags(cmd.Context(), spaceID)
		if err != nil {
			return err
		}

		printTags(cmd.OutOrStdout(), resp, jsonOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(spacesCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(tagsCmd)
}
