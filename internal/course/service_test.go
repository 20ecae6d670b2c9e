package course

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakeCourseRepo struct {
	courses map[string]*Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]*Course)}
}

func (f *fakeCourseRepo) Create(c *Course) error {
	f.courses[c.ID.String()] = c
	return nil
}

func (f *fakeCourseRepo) GetByID(id string) (*Course, error) {
	return f.courses[id], nil
}

func (f *fakeCourseRepo) ListAll() ([]*Course, error) {
	var out []*Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseRepo) Delete(id string) error {
	delete(f.courses, id)
	return nil
}

func TestCreateCourseDerivesTotalLessons(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), CreateCourseRequest{
		Title:       "Intro to AI",
		Description: "Fundamentals of AI",
		Lessons: []Lesson{
			{Title: "What is AI?", Duration: "10 mins"},
			{Title: "Search", Duration: "15 mins"},
			{Title: "Learning", Duration: "20 mins"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if c.TotalLessons != 3 {
		t.Errorf("TotalLessons must match the lessons array, got %d", c.TotalLessons)
	}
	if c.Image == "" {
		t.Error("a default image must be applied")
	}

	var lessons []Lesson
	if err := json.Unmarshal(c.Lessons, &lessons); err != nil {
		t.Fatalf("stored lessons should round-trip: %v", err)
	}
	if len(lessons) != 3 || lessons[1].Title != "Search" {
		t.Errorf("lessons not stored faithfully: %+v", lessons)
	}
}

func TestCreateCourseValidation(t *testing.T) {
	svc := NewService(newFakeCourseRepo())

	if _, err := svc.Create(context.Background(), CreateCourseRequest{Title: " ", Description: "x"}); !errors.Is(err, ErrInvalidCourse) {
		t.Errorf("want ErrInvalidCourse for blank title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateCourseRequest{Title: "x", Description: ""}); !errors.Is(err, ErrInvalidCourse) {
		t.Errorf("want ErrInvalidCourse for blank description, got %v", err)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	svc := NewService(newFakeCourseRepo())

	if _, err := svc.Get(context.Background(), "b1e3e0ce-58c8-4b8e-9a39-95cfb0ee2d3f"); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("want ErrCourseNotFound, got %v", err)
	}
}
