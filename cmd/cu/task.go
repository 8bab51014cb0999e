package main

import (
	"github.com/spf13/cobra"

	"github.com/clickup-go/clickup/pkg/clickup"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Read and create tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks of a team",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		teamID, err := teamFlag(cmd, cfg)
		if err != nil {
			return err
		}

		opts := []clickup.ListTasksOption{}
		if space, _ := cmd.Flags().GetString("space"); space != "" {
			opts = append(opts, clickup.WithSpaceID(space))
		} else if cfg.SpaceID != "" {
			opts = append(opts, clickup.WithSpaceID(cfg.SpaceID))
		}
		closed, _ := cmd.Flags().GetBool("closed")
		opts = append(opts, clickup.WithIncludeClosed(closed))

		resp, err := c.ListTasksForTeam(cmd.Context(), teamID, opts...)
		if err != nil {
			return err
		}

		printTaskList(cmd.OutOrStdout(), resp, jsonOutput)
		return nil
	},
}

var tasksIDsCmd = &cobra.Command{
	Use:   "ids <category-id>",
	Short: "List task IDs in a category",
	Long:  `List the IDs of tasks in a category. Only open tasks are listed unless --all is given.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		teamID, err := teamFlag(cmd, cfg)
		if err != nil {
			return err
		}
		spaceID, err := spaceFlag(cmd, cfg)
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")

		resp, err := c.ListTaskIDs(cmd.Context(), teamID, spaceID, args[0], all)
		if err != nil {
			return err
		}

		printTaskIDs(cmd.OutOrStdout(), resp, jsonOutput)
		return nil
	},
}

var tasksEnrichCmd = &cobra.Command{
	Use:   "enrich <task-id>...",
	Short: "Fetch detailed fields for several tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		teamID, err := teamFlag(cmd, cfg)
		if err != nil {
			return err
		}
		spaceID, err := spaceFlag(cmd, cfg)
		if err != nil {
			return err
		}

		resp, err := c.GetEnrichedTasksByIDs(cmd.Context(), teamID, spaceID, args)
		if err != nil {
			return err
		}

		printTaskList(cmd.OutOrStdout(), resp, jsonOutput)
		return nil
	},
}

var tasksGetCmd = &cobra.Command{
	Use:   "get <task-id>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := c.GetEnrichedTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printTask(cmd.OutOrStdout(), resp, jsonOutput)
		return nil
	},
}

var tasksCreateCmd = &cobra.Command{
	Use:   "create <subcategory-id> <name>",
	Short: "Create a task",
	Long: `Create an open task at the top of a subcategory.

--due accepts Unix seconds, RFC 3339 or YYYY-MM-DD. --estimate sets a time
estimate in minutes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dueFlag, _ := cmd.Flags().GetString("due")
		due, err := parseDue(dueFlag)
		if err != nil {
			return err
		}

		c, _, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		var opts []clickup.CreateTaskOption
		if cmd.Flags().Changed("estimate") {
			estimate, _ := cmd.Flags().GetInt("estimate")
			opts = append(opts, clickup.WithEstimateMinutes(estimate))
		}

		resp, err := c.CreateTask(cmd.Context(), args[0], args[1], due, opts...)
		if err != nil {
			return err
		}

		printTask(cmd.OutOrStdout(), resp, jsonOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksIDsCmd)
	tasksCmd.AddCommand(tasksEnrichCmd)
	tasksCmd.AddCommand(tasksGetCmd)
	tasksCmd.AddCommand(tasksCreateCmd)

	for _, cmd := range []*cobra.Command{tasksListCmd, tasksIDsCmd, tasksEnrichCmd} {
		cmd.Flags().String("team", "", "Team ID (default: team_id from clickup.toml)")
		cmd.Flags().String("space", "", "Space ID (default: space_id from clickup.toml)")
	}
	tasksListCmd.Flags().Bool("closed", true, "Include closed tasks")
	tasksIDsCmd.Flags().Bool("all", false, "Include tasks in every status, not only Open")

	tasksCreateCmd.Flags().String("due", "", "Due date (Unix seconds, RFC 3339 or YYYY-MM-DD)")
	tasksCreateCmd.Flags().Int("estimate", 0, "Time estimate in minutes")
	tasksCreateCmd.MarkFlagRequired("due")
}
