package clickup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListTasksForTeam lists the tasks of a team through the legacy API.
//
// Options:
//   - WithSpaceID: restrict to one space
//   - WithIncludeClosed: include closed tasks (default: true)
//   - WithListVersion: only V1 is implemented; anything else fails with an
//     unsupported version error
func (c *Client) ListTasksForTeam(ctx context.Context, teamID string, opts ...ListTasksOption) (Object, error) {
	options := defaultListTasksOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.version != V1 {
		return nil, newUnsupportedVersionError("ListTasksForTeam", options.version)
	}
	if teamID == "" {
		return nil, newValidationError("team ID is required")
	}

	query := url.Values{}
	query.Set("include_closed", strconv.FormatBool(options.includeClosed))
	if options.spaceID != "" {
		arrayValues(query, "space_ids", options.spaceID)
	}

	return c.do(ctx, call{
		method:  http.MethodGet,
		version: V1,
		path:    "api/v1/team/" + url.PathEscape(teamID) + "/task",
		query:   query,
	})
}

// GetEnrichedTasksByIDs fetches the enrichment field set for several tasks
// of one space in a single call.
func (c *Client) GetEnrichedTasksByIDs(ctx context.Context, teamID, spaceID string, taskIDs []string) (Object, error) {
	var details []string
	if teamID == "" {
		details = append(details, "team ID is required")
	}
	if spaceID == "" {
		details = append(details, "space ID is required")
	}
	if len(taskIDs) == 0 {
		details = append(details, "at least one task ID is required")
	}
	for i, id := range taskIDs {
		if id == "" {
			details = append(details, fmt.Sprintf("task ID at index %d is empty", i))
		}
	}
	if len(details) > 0 {
		return nil, newValidationError(details...)
	}

	query := url.Values{}
	query.Set("team_id", teamID)
	arrayValues(query, "project_ids", spaceID)
	arrayValues(query, "fields", enrichmentFields...)
	arrayValues(query, "task_ids", taskIDs...)

	return c.do(ctx, call{
		method:  http.MethodGet,
		version: V2,
		path:    "v2/task",
		query:   query,
	})
}

// GetEnrichedTask fetches one task with its details.
func (c *Client) GetEnrichedTask(ctx context.Context, taskID string) (Object, error) {
	if taskID == "" {
		return nil, newValidationError("task ID is required")
	}
	return c.do(ctx, call{
		method:  http.MethodGet,
		version: V2,
		path:    "v1/task/" + url.PathEscape(taskID),
	})
}

// ListTaskIDs lists task identifiers of a category. Unless showAll is set
// only tasks with status "Open" are returned.
func (c *Client) ListTaskIDs(ctx context.Context, teamID, projectID, categoryID string, showAll bool) (Object, error) {
	var details []string
	if teamID == "" {
		details = append(details, "team ID is required")
	}
	if projectID == "" {
		details = append(details, "project ID is required")
	}
	if categoryID == "" {
		details = append(details, "category ID is required")
	}
	if len(details) > 0 {
		return nil, newValidationError(details...)
	}

	query := url.Values{}
	query.Set("team_id", teamID)
	arrayValues(query, "project_ids", projectID)
	arrayValues(query, "category_ids", categoryID)
	if !showAll {
		arrayValues(query, "statuses", DefaultTaskStatus)
	}

	return c.do(ctx, call{
		method:  http.MethodGet,
		version: V2,
		path:    "v2/taskId",
		query:   query,
	})
}

// CreateTask creates a task at the top of a subcategory. dueUnix is the due
// date in Unix seconds.
//
// With WithEstimateMinutes(n) and n != 0 a second call sets the time estimate
// on the new task, and the response of that call is returned instead of the
// creation response.
func (c *Client) CreateTask(ctx context.Context, subcategoryID, name string, dueUnix int64, opts ...CreateTaskOption) (Object, error) {
	options := &createTaskOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var details []string
	if subcategoryID == "" {
		details = append(details, "subcategory ID is required")
	}
	if name == "" {
		details = append(details, "task name is required")
	}
	if len(details) > 0 {
		return nil, newValidationError(details...)
	}

	body := createTaskRequest{
		Name:         name,
		Assignees:    []string{},
		DueDate:      dueUnix * 1000,
		DueDateTime:  false,
		Status:       DefaultTaskStatus,
		Priority:     DefaultTaskPriority,
		PositionWide: "subcategory",
		Position:     0,
	}

	created, err := c.do(ctx, call{
		method:  http.MethodPost,
		version: V2,
		path:    "v1/subcategory/" + url.PathEscape(subcategoryID) + "/task",
		body:    body,
	})
	if err != nil {
		return nil, err
	}

	if options.estimateMinutes == nil || *options.estimateMinutes == 0 {
		return created, nil
	}

	taskID := created.ID()
	if taskID == "" {
		return nil, &Error{
			Code:    ErrCodeUpstream,
			Message: "created task response carried no id",
			Context: map[string]interface{}{"subcategory_id": subcategoryID},
		}
	}

	return c.SetTimeEstimate(ctx, taskID, *options.estimateMinutes)
}

// SetTimeEstimate sets the time estimate of a task, in minutes.
func (c *Client) SetTimeEstimate(ctx context.Context, taskID string, minutes int) (Object, error) {
	if taskID == "" {
		return nil, newValidationError("task ID is required")
	}

	body := timeEstimateRequest{
		TimeEstimate:       int64(minutes) * 60000,
		TimeEstimateString: fmt.Sprintf("%d minutes", minutes),
	}

	return c.do(ctx, call{
		method:  http.MethodPut,
		version: V2,
		path:    "v1/task/" + url.PathEscape(taskID),
		body:    body,
	})
}
