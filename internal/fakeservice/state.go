// Package fakeservice is an in-memory stand-in for the ClickUp REST API. It
// implements the endpoints used by pkg/clickup with the same authentication
// rules and records every request it receives.
package fakeservice

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Credentials accepted by the fake.
type Credentials struct {
	Email    string
	Password string
	APIKey   string
}

// User is the account the fake authenticates.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Team is a top-level organizational unit.
type Team struct {
	ID   string
	Name string
}

// Space is a subdivision of a team.
type Space struct {
	ID     string
	Name   string
	TeamID string
}

// Category groups subcategories inside a space.
type Category struct {
	ID      string
	Name    string
	SpaceID string
}

// Subcategory holds tasks.
type Subcategory struct {
	ID         string
	Name       string
	CategoryID string
}

// Task is a work item.
type Task struct {
	ID            string
	Name          string
	SubcategoryID string
	Status        string
	Priority      string
	DueDate       int64
	TimeEstimate  int64
	Closed        bool
	Tags          []string
}

// Request is one request received by the fake.
type Request struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	Body          string
}

// Service holds the fake's state. The zero value is not usable; call New.
type Service struct {
	mu sync.Mutex

	creds  Credentials
	user   User
	tokens map[string]bool
	log    *zap.SugaredLogger

	teams         []Team
	spaces        []Space
	categories    []Category
	subcategories []Subcategory
	tasks         []*Task
	tags          map[string][]string

	requests []Request
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used by the request logging middleware.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates an empty fake accepting the given credentials.
func New(creds Credentials, user User, opts ...Option) *Service {
	s := &Service{
		creds:  creds,
		user:   user,
		tokens: make(map[string]bool),
		tags:   make(map[string][]string),
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTeam registers a team.
func (s *Service) AddTeam(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = append(s.teams, Team{ID: id, Name: name})
}

// RemoveTeam drops a team, as when the user leaves it. Its spaces stay in
// place but are no longer reachable.
func (s *Service) RemoveTeam(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.teams[:0]
	for _, t := range s.teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.teams = kept
}

// AddSpace registers a space under a team.
func (s *Service) AddSpace(teamID, id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces = append(s.spaces, Space{ID: id, Name: name, TeamID: teamID})
}

// AddCategory registers a category under a space.
func (s *Service) AddCategory(spaceID, id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, Category{ID: id, Name: name, SpaceID: spaceID})
}

// AddSubcategory registers a subcategory under a category.
func (s *Service) AddSubcategory(categoryID, id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subcategories = append(s.subcategories, Subcategory{ID: id, Name: name, CategoryID: categoryID})
}

// AddTask stores a task. An empty ID is replaced by a generated one, which
// is returned.
func (s *Service) AddTask(t Task) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = newTaskID()
	}
	if t.Status == "" {
		t.Status = "Open"
	}
	s.tasks = append(s.tasks, &t)
	return t.ID
}

// AddTag attaches a tag name to a project (space).
func (s *Service) AddTag(projectID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags[projectID] = append(s.tags[projectID], name)
}

// Task returns a copy of the task with the given ID.
func (s *Service) Task(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.findTask(id); t != nil {
		return *t, true
	}
	return Task{}, false
}

// Requests returns the requests received so far.
func (s *Service) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// ResetRequests clears the request log.
func (s *Service) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Service) record(r Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}

func (s *Service) issueToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok := uuid.NewString()
	s.tokens[tok] = true
	return tok
}

func (s *Service) validToken(tok string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[tok]
}

// findTask must be called with mu held.
func (s *Service) findTask(id string) *Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// locate resolves the category, space and team of a subcategory. Must be
// called with mu held.
func (s *Service) locate(subcategoryID string) (categoryID, spaceID, teamID string) {
	for _, sub := range s.subcategories {
		if sub.ID == subcategoryID {
			categoryID = sub.CategoryID
			break
		}
	}
	for _, c := range s.categories {
		if c.ID == categoryID {
			spaceID = c.SpaceID
			break
		}
	}
	for _, sp := range s.spaces {
		if sp.ID == spaceID {
			teamID = sp.TeamID
			break
		}
	}
	return categoryID, spaceID, teamID
}

func newTaskID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
