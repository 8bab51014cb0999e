package fakeservice

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	// GET with a form body: ParseForm ignores bodies on GET.
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unreadable body", "INPUT_001")
		return
	}
	form, err := url.ParseQuery(string(data))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed body", "INPUT_002")
		return
	}

	if form.Get("email") != s.creds.Email || form.Get("password") != s.creds.Password {
		writeError(w, http.StatusUnauthorized, "Incorrect email or password", "OAUTH_019")
		return
	}

	resp := map[string]interface{}{"token": s.issueToken()}
	if r.URL.Query().Get("include_teams") == "true" {
		resp["teams"] = s.teamList()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) getUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": s.user})
}

func (s *Service) listTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"teams": s.teamList()})
}

func (s *Service) teamList() []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	teams := make([]map[string]interface{}, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, map[string]interface{}{"id": t.ID, "name": t.Name})
	}
	return teams
}

func (s *Service) listSpaces(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasTeam(teamID) {
		writeError(w, http.StatusUnauthorized, "Team not authorized", "OAUTH_027")
		return
	}

	spaces := make([]map[string]interface{}, 0)
	for _, sp := range s.spaces {
		if sp.TeamID == teamID {
			spaces = append(spaces, map[string]interface{}{"id": sp.ID, "name": sp.Name})
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"spaces": spaces})
}

func (s *Service) listTeamTasks(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	q := r.URL.Query()

	includeClosed := true
	if v := q.Get("include_closed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "include_closed must be a boolean", "ITEM_015")
			return
		}
		includeClosed = b
	}
	spaceFilter := setOf(q["space_ids[]"])

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasTeam(teamID) {
		writeError(w, http.StatusUnauthorized, "Team not authorized", "OAUTH_027")
		return
	}

	tasks := make([]map[string]interface{}, 0)
	for _, t := range s.tasks {
		_, spaceID, taskTeam := s.locate(t.SubcategoryID)
		if taskTeam != teamID {
			continue
		}
		if len(spaceFilter) > 0 && !spaceFilter[spaceID] {
			continue
		}
		if t.Closed && !includeClosed {
			continue
		}
		tasks = append(tasks, s.renderTask(t, nil))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (s *Service) enrichTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	teamID := q.Get("team_id")
	if teamID == "" {
		writeError(w, http.StatusBadRequest, "team_id is required", "TASK_010")
		return
	}
	ids := q["task_ids[]"]
	if len(ids) == 0 {
		writeError(w, http.StatusBadRequest, "task_ids is required", "TASK_011")
		return
	}
	projects := setOf(q["project_ids[]"])
	fields := q["fields[]"]

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		t := s.findTask(id)
		if t == nil {
			continue
		}
		_, spaceID, taskTeam := s.locate(t.SubcategoryID)
		if taskTeam != teamID {
			continue
		}
		if len(projects) > 0 && !projects[spaceID] {
			continue
		}
		tasks = append(tasks, s.renderTask(t, fields))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (s *Service) listTaskIDs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	teamID := q.Get("team_id")
	projects := setOf(q["project_ids[]"])
	categories := setOf(q["category_ids[]"])
	statuses := setOf(q["statuses[]"])

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0)
	for _, t := range s.tasks {
		categoryID, spaceID, taskTeam := s.locate(t.SubcategoryID)
		if teamID != "" && taskTeam != teamID {
			continue
		}
		if len(projects) > 0 && !projects[spaceID] {
			continue
		}
		if len(categories) > 0 && !categories[categoryID] {
			continue
		}
		if len(statuses) > 0 && !statuses[t.Status] {
			continue
		}
		ids = append(ids, t.ID)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task_ids": ids})
}

func (s *Service) getTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskID")

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTask(id)
	if t == nil {
		writeError(w, http.StatusNotFound, "Task not found", "ITEM_013")
		return
	}
	writeJSON(w, http.StatusOK, s.renderTask(t, nil))
}

// updateTaskRequest is the subset of task fields the fake accepts on PUT.
type updateTaskRequest struct {
	Name         *string `json:"name"`
	Status       *string `json:"status"`
	TimeEstimate *int64  `json:"time_estimate"`
}

func (s *Service) updateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskID")

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", "INPUT_003")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTask(id)
	if t == nil {
		writeError(w, http.StatusNotFound, "Task not found", "ITEM_013")
		return
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.TimeEstimate != nil {
		t.TimeEstimate = *req.TimeEstimate
	}
	writeJSON(w, http.StatusOK, s.renderTask(t, nil))
}

func (s *Service) listCategories(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "spaceID")

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]map[string]interface{}, 0)
	for _, c := range s.categories {
		if c.SpaceID != spaceID {
			continue
		}
		subs := make([]map[string]interface{}, 0)
		for _, sub := range s.subcategories {
			if sub.CategoryID == c.ID {
				subs = append(subs, map[string]interface{}{"id": sub.ID, "name": sub.Name})
			}
		}
		categories = append(categories, map[string]interface{}{
			"id":            c.ID,
			"name":          c.Name,
			"subcategories": subs,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// createTaskRequest mirrors the body sent by the client.
type createTaskRequest struct {
	Name      string   `json:"name"`
	Assignees []string `json:"assignees"`
	DueDate   int64    `json:"due_date"`
	Status    string   `json:"status"`
	Priority  string   `json:"priority"`
}

func (s *Service) createTask(w http.ResponseWriter, r *http.Request) {
	subcategoryID := chi.URLParam(r, "subcategoryID")

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", "INPUT_003")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Task name invalid", "INPUT_005")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categoryID, _, _ := s.locate(subcategoryID)
	if categoryID == "" {
		writeError(w, http.StatusNotFound, "Subcategory not found", "SUBCAT_016")
		return
	}

	status := req.Status
	if status == "" {
		status = "Open"
	}
	t := &Task{
		ID:            newTaskID(),
		Name:          req.Name,
		SubcategoryID: subcategoryID,
		Status:        status,
		Priority:      req.Priority,
		DueDate:       req.DueDate,
	}
	s.tasks = append(s.tasks, t)

	writeJSON(w, http.StatusOK, s.renderTask(t, nil))
}

func (s *Service) listTags(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("project_id")

	s.mu.Lock()
	defer s.mu.Unlock()

	tags := make([]map[string]interface{}, 0)
	for _, name := range s.tags[projectID] {
		tags = append(tags, map[string]interface{}{"name": name, "project_id": projectID})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tags": tags})
}

// renderTask builds the JSON shape of a task. Requested enrichment fields
// the fake does not track are rendered as null. Must be called with mu held.
func (s *Service) renderTask(t *Task, fields []string) map[string]interface{} {
	categoryID, spaceID, teamID := s.locate(t.SubcategoryID)
	out := map[string]interface{}{
		"id":            t.ID,
		"name":          t.Name,
		"status":        map[string]interface{}{"status": t.Status},
		"priority":      t.Priority,
		"due_date":      strconv.FormatInt(t.DueDate, 10),
		"time_estimate": t.TimeEstimate,
		"subcategory":   t.SubcategoryID,
		"category":      categoryID,
		"project":       spaceID,
		"team_id":       teamID,
		"closed":        t.Closed,
	}
	for _, f := range fields {
		switch f {
		case "tags":
			tags := t.Tags
			if tags == nil {
				tags = []string{}
			}
			out[f] = tags
		case "assignees", "followers":
			out[f] = []interface{}{}
		default:
			if _, ok := out[f]; !ok {
				out[f] = nil
			}
		}
	}
	return out
}

// hasTeam must be called with mu held.
func (s *Service) hasTeam(teamID string) bool {
	for _, t := range s.teams {
		if t.ID == teamID {
			return true
		}
	}
	return false
}

func setOf(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
