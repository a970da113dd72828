package controllers

import (
	"testing"

	courseModels "edura/models/course"
)

func TestCourseCurriculumOrdering(t *testing.T) {
	db := newTestDB(t)

	crs := courseModels.Course{Title: "Ordered", PublishedStatus: courseModels.StatusPublished, InstructorID: 1}
	if err := db.Create(&crs).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}

	// Insert out of order; order_index decides, not insertion order
	second := courseModels.Module{CourseID: crs.ID, Title: "Second", OrderIndex: 1}
	first := courseModels.Module{CourseID: crs.ID, Title: "First", OrderIndex: 0}
	for _, mod := range []*courseModels.Module{&second, &first} {
		if err := db.Create(mod).Error; err != nil {
			t.Fatalf("failed to seed module: %v", err)
		}
	}
	lateLesson := courseModels.Lesson{ModuleID: first.ID, Title: "Late", OrderIndex: 1}
	earlyLesson := courseModels.Lesson{ModuleID: first.ID, Title: "Early", OrderIndex: 0}
	for _, lesson := range []*courseModels.Lesson{&lateLesson, &earlyLesson} {
		if err := db.Create(lesson).Error; err != nil {
			t.Fatalf("failed to seed lesson: %v", err)
		}
	}

	modules, lessons, err := courseCurriculum(db, crs.ID)
	if err != nil {
		t.Fatalf("courseCurriculum failed: %v", err)
	}

	if len(modules) != 2 || modules[0].Title != "First" || modules[1].Title != "Second" {
		t.Errorf("modules out of order: %v", modules)
	}
	if len(lessons) != 2 || lessons[0].Title != "Early" || lessons[1].Title != "Late" {
		t.Errorf("lessons out of order: %v", lessons)
	}
}

func TestCourseCurriculumEmptyCourse(t *testing.T) {
	db := newTestDB(t)

	crs := courseModels.Course{Title: "Bare", PublishedStatus: courseModels.StatusPublished, InstructorID: 1}
	if err := db.Create(&crs).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}

	modules, lessons, err := courseCurriculum(db, crs.ID)
	if err != nil {
		t.Fatalf("courseCurriculum failed: %v", err)
	}
	if len(modules) != 0 || len(lessons) != 0 {
		t.Errorf("bare course returned %d modules, %d lessons", len(modules), len(lessons))
	}
}

func TestCourseCurriculumStoreFailure(t *testing.T) {
	db := newTestDB(t)

	crs, _ := seedCourse(t, db, 1, 1)

	// A store failure must surface as an error, not an empty curriculum
	if err := db.Migrator().DropTable(&courseModels.Lesson{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	if _, _, err := courseCurriculum(db, crs.ID); err == nil {
		t.Error("missing lessons table reported no error")
	}
}
