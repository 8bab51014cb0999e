// Package clickup provides a Go client for the ClickUp task management REST API.
//
// A Client holds one authenticated session: the static API key used by the
// legacy (v1) endpoints and the bearer token, obtained at login, used by the
// current (v2) endpoints. Every method performs one HTTP round trip and
// returns the decoded JSON body as an Object.
//
// # Getting Started
//
// Connect logs in and discovers the teams and spaces visible to the user:
//
//	client, err := clickup.Connect(ctx, email, password, apiKey,
//	    clickup.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for id, name := range client.ListTeams() {
//	    fmt.Println(id, name)
//	}
//
// # Discovery
//
// Teams and spaces are registered at connect time. Subcategories are
// registered as a side effect of ListCategories:
//
//	categories, err := client.ListCategories(ctx, spaceID)
//	for id, sub := range client.Subcategories() {
//	    fmt.Println(id, sub.Name, sub.CategoryID, sub.SpaceID)
//	}
//
// The registries only grow. Call Refresh to merge in teams and spaces created
// after Connect.
//
// # Tasks
//
// List the tasks of a team (legacy API only):
//
//	tasks, err := client.ListTasksForTeam(ctx, teamID,
//	    clickup.WithSpaceID(spaceID),
//	    clickup.WithIncludeClosed(false),
//	)
//
// Fetch detailed fields for several tasks at once:
//
//	enriched, err := client.GetEnrichedTasksByIDs(ctx, teamID, spaceID, []string{"abc", "def"})
//
// Create a task due at a Unix timestamp, with a 90 minute estimate:
//
//	task, err := client.CreateTask(ctx, subcategoryID, "Write report", due.Unix(),
//	    clickup.WithEstimateMinutes(90),
//	)
//
// # Error Handling
//
// All failures are *Error values classified by code:
//
//	_, err := client.GetEnrichedTask(ctx, taskID)
//	if err != nil {
//	    if clickup.IsUpstream(err) {
//	        // non-2xx status; clickup.StatusCode(err) has it
//	    } else if clickup.IsNetwork(err) {
//	        // the request never completed
//	    }
//	}
//
// Nothing is retried.
package clickup
