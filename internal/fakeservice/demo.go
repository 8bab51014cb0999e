package fakeservice

import "time"

// Demo credentials accepted by NewDemo.
var DemoCredentials = Credentials{
	Email:    "demo@example.com",
	Password: "demo",
	APIKey:   "pk_demo",
}

// NewDemo returns a fake seeded with a small hierarchy: one team with two
// spaces, a category with two subcategories in the first space and a few
// tasks.
func NewDemo(opts ...Option) *Service {
	s := New(DemoCredentials, User{ID: 1001, Username: "demo", Email: DemoCredentials.Email}, opts...)

	s.AddTeam("t1", "Demo Team")
	s.AddSpace("t1", "s1", "Engineering")
	s.AddSpace("t1", "s2", "Marketing")

	s.AddCategory("s1", "c1", "Backlog")
	s.AddSubcategory("c1", "sc1", "Bugs")
	s.AddSubcategory("c1", "sc2", "Features")

	due := time.Now().Add(72 * time.Hour).Unix() * 1000
	s.AddTask(Task{ID: "task1", Name: "Fix login redirect", SubcategoryID: "sc1", DueDate: due, Tags: []string{"urgent"}})
	s.AddTask(Task{ID: "task2", Name: "Add CSV export", SubcategoryID: "sc2", DueDate: due})
	s.AddTask(Task{ID: "task3", Name: "Old release notes", SubcategoryID: "sc2", Status: "Closed", Closed: true})

	s.AddTag("s1", "urgent")
	s.AddTag("s1", "backend")

	return s
}
