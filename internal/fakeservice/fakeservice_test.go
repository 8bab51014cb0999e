package fakeservice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func login(t *testing.T, h http.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest("GET", "/v1/login?include_teams=true", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func bearer(t *testing.T, h http.Handler) string {
	t.Helper()
	rr := login(t, h, DemoCredentials.Email, DemoCredentials.Password)
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed with %d", rr.Code)
	}
	return "Bearer " + decode(t, rr)["token"].(string)
}

func TestLogin_IssuesToken(t *testing.T) {
	h := NewDemo().Handler()

	rr := login(t, h, DemoCredentials.Email, DemoCredentials.Password)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	body := decode(t, rr)
	if tok, _ := body["token"].(string); tok == "" {
		t.Error("expected a token")
	}
	if teams, _ := body["teams"].([]interface{}); len(teams) != 1 {
		t.Errorf("expected 1 team with include_teams, got %v", body["teams"])
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h := NewDemo().Handler()

	rr := login(t, h, DemoCredentials.Email, "nope")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rr.Code)
	}
	if body := decode(t, rr); body["ECODE"] != "OAUTH_019" {
		t.Errorf("expected ECODE OAUTH_019, got %v", body["ECODE"])
	}
}

func TestLegacyRoutes_RequireAPIKey(t *testing.T) {
	h := NewDemo().Handler()

	req := httptest.NewRequest("GET", "/api/v1/user", nil)
	req.Header.Set("Authorization", bearer(t, h))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("bearer token on legacy route: expected 401, got %d", rr.Code)
	}

	req = httptest.NewRequest("GET", "/api/v1/user", nil)
	req.Header.Set("Authorization", DemoCredentials.APIKey)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("api key on legacy route: expected 200, got %d", rr.Code)
	}
}

func TestCurrentRoutes_RequireBearer(t *testing.T) {
	h := NewDemo().Handler()

	req := httptest.NewRequest("GET", "/v1/task/task1", nil)
	req.Header.Set("Authorization", DemoCredentials.APIKey)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("api key on current route: expected 401, got %d", rr.Code)
	}

	req = httptest.NewRequest("GET", "/v1/task/task1", nil)
	req.Header.Set("Authorization", "Bearer made-up")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("unknown token: expected 401, got %d", rr.Code)
	}

	req = httptest.NewRequest("GET", "/v1/task/task1", nil)
	req.Header.Set("Authorization", bearer(t, h))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("issued token: expected 200, got %d", rr.Code)
	}
}

func TestRecorder_KeepsBodyForHandlers(t *testing.T) {
	svc := NewDemo()
	h := svc.Handler()

	rr := login(t, h, DemoCredentials.Email, DemoCredentials.Password)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	reqs := svc.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 recorded request, got %d", len(reqs))
	}
	if reqs[0].Path != "/v1/login" || reqs[0].RawQuery != "include_teams=true" {
		t.Errorf("unexpected request: %+v", reqs[0])
	}
	if !strings.Contains(reqs[0].Body, "email=demo%40example.com") {
		t.Errorf("expected form body to be recorded, got %q", reqs[0].Body)
	}

	svc.ResetRequests()
	if len(svc.Requests()) != 0 {
		t.Error("expected empty request log after reset")
	}
}

func TestCreateTask_UnknownSubcategory(t *testing.T) {
	h := NewDemo().Handler()

	req := httptest.NewRequest("POST", "/v1/subcategory/nope/task", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Authorization", bearer(t, h))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestCreateTask_ThenEstimate(t *testing.T) {
	svc := NewDemo()
	h := svc.Handler()
	auth := bearer(t, h)

	req := httptest.NewRequest("POST", "/v1/subcategory/sc1/task", strings.NewReader(`{"name":"Ship it","due_date":1000}`))
	req.Header.Set("Authorization", auth)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	created := decode(t, rr)
	id := created["id"].(string)
	if created["project"] != "s1" || created["team_id"] != "t1" {
		t.Errorf("expected task located in s1/t1, got %v/%v", created["project"], created["team_id"])
	}

	req = httptest.NewRequest("PUT", "/v1/task/"+id, strings.NewReader(`{"time_estimate":60000}`))
	req.Header.Set("Authorization", auth)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	task, ok := svc.Task(id)
	if !ok {
		t.Fatal("created task not stored")
	}
	if task.Status != "Open" || task.TimeEstimate != 60000 || task.DueDate != 1000 {
		t.Errorf("unexpected task state: %+v", task)
	}
}

func TestEnrichTasks_AddsRequestedFields(t *testing.T) {
	h := NewDemo().Handler()

	q := url.Values{}
	q.Set("team_id", "t1")
	q.Add("task_ids[]", "task1")
	q.Add("fields[]", "tags")
	q.Add("fields[]", "parent_task")

	req := httptest.NewRequest("GET", "/v2/task?"+q.Encode(), nil)
	req.Header.Set("Authorization", bearer(t, h))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	tasks := decode(t, rr)["tasks"].([]interface{})
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0].(map[string]interface{})
	if tags, _ := task["tags"].([]interface{}); len(tags) != 1 || tags[0] != "urgent" {
		t.Errorf("expected tags [urgent], got %v", task["tags"])
	}
	if _, ok := task["parent_task"]; !ok {
		t.Error("expected parent_task placeholder")
	}
}

func TestRecovery_PanicReturns500(t *testing.T) {
	svc := NewDemo()
	handler := svc.recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong!")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/test", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rr.Code)
	}
	if body := decode(t, rr); body["ECODE"] != "SERVER_000" {
		t.Errorf("expected ECODE SERVER_000, got %v", body["ECODE"])
	}
}

func TestUnknownRoute(t *testing.T) {
	h := NewDemo().Handler()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/v3/nothing", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}
