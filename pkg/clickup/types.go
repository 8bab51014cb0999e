package clickup

import (
	"encoding/json"
	"strconv"
)

// APIVersion selects the endpoint family and the Authorization scheme.
type APIVersion string

const (
	// V1 is the legacy API, authenticated with the static API key.
	V1 APIVersion = "v1"
	// V2 is the current API, authenticated with the bearer token from login.
	V2 APIVersion = "v2"
)

// Object is a raw JSON object as returned by the service. Numbers are kept
// as json.Number.
type Object map[string]interface{}

// String returns the string form of key, accepting both JSON strings and
// numbers. Missing or other-typed values yield "".
func (o Object) String(key string) string {
	return idString(o[key])
}

// ID returns the "id" field as a string.
func (o Object) ID() string {
	return o.String("id")
}

// Object returns the nested object under key, or nil.
func (o Object) Object(key string) Object {
	m, ok := o[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return Object(m)
}

// Objects returns the array of objects under key. Elements that are not
// objects are skipped.
func (o Object) Objects(key string) []Object {
	arr, ok := o[key].([]interface{})
	if !ok {
		return nil
	}
	result := make([]Object, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]interface{}); ok {
			result = append(result, Object(m))
		}
	}
	return result
}

// Token returns the bearer token of a login response.
func (o Object) Token() string {
	return o.String("token")
}

// User returns the "user" object of a user-info response.
func (o Object) User() Object {
	return o.Object("user")
}

// Teams returns the "teams" array of a team-list response.
func (o Object) Teams() []Object {
	return o.Objects("teams")
}

// Spaces returns the "spaces" array of a space-list response.
func (o Object) Spaces() []Object {
	return o.Objects("spaces")
}

// Categories returns the "categories" array of a category-list response.
func (o Object) Categories() []Object {
	return o.Objects("categories")
}

// Subcategories returns the "subcategories" array of a category.
func (o Object) Subcategories() []Object {
	return o.Objects("subcategories")
}

// idString normalises identifiers, which the service sends either as
// strings or as numbers depending on the endpoint.
func idString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

// User is the authenticated user.
type User struct {
	Username string
	ID       string
	Raw      Object
}

// Space is an entry of the space registry.
type Space struct {
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}

// Subcategory is an entry of the subcategory registry.
type Subcategory struct {
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	SpaceID    string `json:"space_id"`
}

// Default values for tasks created through CreateTask.
const (
	DefaultTaskStatus   = "Open"
	DefaultTaskPriority = "none"
)

// enrichmentFields is the fixed field set requested by GetEnrichedTasksByIDs.
var enrichmentFields = []string{
	"assignees",
	"assigned_comments_count",
	"assigned_checklist_items",
	"attachments_thumbnail_count",
	"dependency_state",
	"parent_task",
	"attachments_count",
	"followers",
	"totalTimeSpent",
	"subtasks_count",
	"subtasks_by_status",
	"tags",
	"simple_statuses",
	"fallback_coverimage",
	"customFields",
}

// EnrichmentFields returns a copy of the field set requested when enriching
// tasks.
func EnrichmentFields() []string {
	out := make([]string, len(enrichmentFields))
	copy(out, enrichmentFields)
	return out
}

// createTaskRequest is the JSON body for creating a task.
type createTaskRequest struct {
	Name         string   `json:"name"`
	Assignees    []string `json:"assignees"`
	DueDate      int64    `json:"due_date"`
	StartDate    *int64   `json:"start_date"`
	DueDateTime  bool     `json:"due_date_time"`
	Status       string   `json:"status"`
	Priority     string   `json:"priority"`
	PositionWide string   `json:"position_wide"`
	Position     int      `json:"position"`
}

// timeEstimateRequest is the JSON body for setting a task's time estimate.
type timeEstimateRequest struct {
	TimeEstimate       int64  `json:"time_estimate"`
	TimeEstimateString string `json:"time_estimate_string"`
}
