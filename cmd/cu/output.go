package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/clickup-go/clickup/pkg/clickup"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// printUser prints the authenticated user
func printUser(w io.Writer, user *clickup.User, email string, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, user.Raw)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Username:\t%s\n", user.Username)
	fmt.Fprintf(tw, "ID:\t%s\n", user.ID)
	fmt.Fprintf(tw, "Email:\t%s\n", email)
	tw.Flush()
}

// printTeams prints the team registry sorted by ID
func printTeams(w io.Writer, teams map[string]string, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, teams)
		return
	}

	if len(teams) == 0 {
		fmt.Fprintln(w, "No teams found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\n")
	fmt.Fprintf(tw, "--\t----\n")
	for _, id := range sortedKeys(teams) {
		fmt.Fprintf(tw, "%s\t%s\n", id, teams[id])
	}
	tw.Flush()
}

// printSpaces prints the space registry sorted by ID
func printSpaces(w io.Writer, spaces map[string]clickup.Space, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, spaces)
		return
	}

	if len(spaces) == 0 {
		fmt.Fprintln(w, "No spaces found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tTEAM\n")
	fmt.Fprintf(tw, "--\t----\t----\n")
	for _, id := range sortedKeys(spaces) {
		s := spaces[id]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, s.Name, s.TeamID)
	}
	tw.Flush()
}

// printSubcategories prints subcategories registered for one space
func printSubcategories(w io.Writer, subs map[string]clickup.Subcategory, spaceID string, jsonOutput bool) {
	filtered := make(map[string]clickup.Subcategory)
	for id, s := range subs {
		if s.SpaceID == spaceID {
			filtered[id] = s
		}
	}

	if jsonOutput {
		printJSON(w, filtered)
		return
	}

	if len(filtered) == 0 {
		fmt.Fprintln(w, "No subcategories found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tCATEGORY\n")
	fmt.Fprintf(tw, "--\t----\t--------\n")
	for _, id := range sortedKeys(filtered) {
		s := filtered[id]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, s.Name, s.CategoryID)
	}
	tw.Flush()
}

// printNamed prints an array of objects under key as an ID/NAME table.
func printNamed(w io.Writer, resp clickup.Object, key, empty string, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, resp)
		return
	}

	items := resp.Objects(key)
	if len(items) == 0 {
		fmt.Fprintln(w, empty)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\n")
	fmt.Fprintf(tw, "--\t----\n")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\n", item.ID(), item.String("name"))
	}
	tw.Flush()
}

// printTags prints tag names
func printTags(w io.Writer, resp clickup.Object, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, resp)
		return
	}

	tags := resp.Objects("tags")
	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags found")
		return
	}
	for _, tag := range tags {
		fmt.Fprintln(w, tag.String("name"))
	}
}

// printTaskList prints the "tasks" array of a response
func printTaskList(w io.Writer, resp clickup.Object, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, resp)
		return
	}

	tasks := resp.Objects("tasks")
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tSTATUS\n")
	fmt.Fprintf(tw, "--\t----\t------\n")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", task.ID(), truncate(task.String("name"), 40), taskStatus(task))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d task(s)\n", len(tasks))
}

// printTaskIDs prints the "task_ids" array of a response, one per line
func printTaskIDs(w io.Writer, resp clickup.Object, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, resp)
		return
	}

	ids, _ := resp["task_ids"].([]interface{})
	if len(ids) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
}

// printTask prints a single task
func printTask(w io.Writer, task clickup.Object, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, task)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID())
	fmt.Fprintf(tw, "Name:\t%s\n", task.String("name"))
	fmt.Fprintf(tw, "Status:\t%s\n", taskStatus(task))
	if p := task.String("priority"); p != "" {
		fmt.Fprintf(tw, "Priority:\t%s\n", p)
	}
	if due := task.String("due_date"); due != "" && due != "0" {
		fmt.Fprintf(tw, "Due:\t%s\n", formatMillis(due))
	}
	if est := task.String("time_estimate"); est != "" && est != "0" {
		fmt.Fprintf(tw, "Estimate:\t%s\n", formatEstimate(est))
	}
	tw.Flush()
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		body := map[string]interface{}{"message": err.Error()}
		var apiErr *clickup.Error
		if errors.As(err, &apiErr) {
			body["code"] = string(apiErr.Code)
			if apiErr.StatusCode != 0 {
				body["status"] = apiErr.StatusCode
			}
		}
		printJSON(w, map[string]interface{}{"error": body})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// taskStatus reads the status name, which the service nests as
// {"status": {"status": "open"}}.
func taskStatus(task clickup.Object) string {
	if st := task.Object("status"); st != nil {
		return st.String("status")
	}
	return task.String("status")
}

// formatMillis renders a millisecond epoch string as local time.
func formatMillis(ms string) string {
	n, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return ms
	}
	return time.UnixMilli(n).Format("2006-01-02 15:04:05")
}

// formatEstimate renders a millisecond duration string.
func formatEstimate(ms string) string {
	n, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return ms
	}
	return (time.Duration(n) * time.Millisecond).String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
