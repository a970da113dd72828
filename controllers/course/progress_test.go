package controllers

import (
	"testing"

	"gorm.io/gorm"

	courseModels "edura/models/course"
)

// seedCourse builds a course whose modules hold the given lesson counts and
// returns the lesson IDs in creation order.
func seedCourse(t *testing.T, db *gorm.DB, instructorID uint, lessonCounts ...int) (courseModels.Course, []uint) {
	t.Helper()

	course := courseModels.Course{
		Title:           "Go from Scratch",
		PublishedStatus: courseModels.StatusPublished,
		InstructorID:    instructorID,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}

	var lessonIDs []uint
	for m, count := range lessonCounts {
		module := courseModels.Module{CourseID: course.ID, Title: "Module", OrderIndex: m}
		if err := db.Create(&module).Error; err != nil {
			t.Fatalf("failed to seed module: %v", err)
		}
		for l := 0; l < count; l++ {
			lesson := courseModels.Lesson{ModuleID: module.ID, Title: "Lesson", OrderIndex: l}
			if err := db.Create(&lesson).Error; err != nil {
				t.Fatalf("failed to seed lesson: %v", err)
			}
			lessonIDs = append(lessonIDs, lesson.ID)
		}
	}

	return course, lessonIDs
}

func TestCourseProgressPartialCompletion(t *testing.T) {
	db := newTestDB(t)

	// Two modules holding two and one lessons; two of the three completed
	course, lessonIDs := seedCourse(t, db, 1, 2, 1)
	for _, id := range lessonIDs[:2] {
		if _, err := saveLessonProgress(db, 42, id, 0, true); err != nil {
			t.Fatalf("failed to save progress: %v", err)
		}
	}

	progress, err := courseProgress(db, course.ID, 42)
	if err != nil {
		t.Fatalf("courseProgress failed: %v", err)
	}

	if progress.TotalLessons != 3 {
		t.Errorf("totalLessons = %d, want 3", progress.TotalLessons)
	}
	if progress.CompletedLessons != 2 {
		t.Errorf("completedLessons = %d, want 2", progress.CompletedLessons)
	}
	if progress.ProgressPercentage != 67 {
		t.Errorf("progressPercentage = %d, want 67", progress.ProgressPercentage)
	}
}

func TestCourseProgressEmptyCourse(t *testing.T) {
	db := newTestDB(t)

	// No modules at all
	bare := courseModels.Course{Title: "Empty", InstructorID: 1}
	if err := db.Create(&bare).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}

	progress, err := courseProgress(db, bare.ID, 42)
	if err != nil {
		t.Fatalf("courseProgress failed: %v", err)
	}
	if progress.TotalLessons != 0 || progress.CompletedLessons != 0 || progress.ProgressPercentage != 0 {
		t.Errorf("course without modules reported %+v, want all zeros", progress)
	}

	// Modules present but no lessons under them
	hollow, _ := seedCourse(t, db, 1, 0, 0)
	progress, err = courseProgress(db, hollow.ID, 42)
	if err != nil {
		t.Fatalf("courseProgress failed: %v", err)
	}
	if progress.TotalLessons != 0 || progress.ProgressPercentage != 0 {
		t.Errorf("course without lessons reported %+v, want all zeros", progress)
	}
}

func TestCourseProgressIgnoresOtherMarks(t *testing.T) {
	db := newTestDB(t)

	course, lessonIDs := seedCourse(t, db, 1, 2)
	other, otherLessons := seedCourse(t, db, 1, 2)

	// Incomplete mark on the course under test
	if _, err := saveLessonProgress(db, 42, lessonIDs[0], 30, false); err != nil {
		t.Fatalf("failed to save progress: %v", err)
	}
	// Completed marks by another user and on another course
	if _, err := saveLessonProgress(db, 99, lessonIDs[0], 0, true); err != nil {
		t.Fatalf("failed to save progress: %v", err)
	}
	if _, err := saveLessonProgress(db, 42, otherLessons[0], 0, true); err != nil {
		t.Fatalf("failed to save progress: %v", err)
	}

	progress, err := courseProgress(db, course.ID, 42)
	if err != nil {
		t.Fatalf("courseProgress failed: %v", err)
	}
	if progress.CompletedLessons != 0 {
		t.Errorf("completedLessons = %d, want 0", progress.CompletedLessons)
	}
	if progress.ProgressPercentage != 0 {
		t.Errorf("progressPercentage = %d, want 0", progress.ProgressPercentage)
	}

	otherProgress, err := courseProgress(db, other.ID, 42)
	if err != nil {
		t.Fatalf("courseProgress failed: %v", err)
	}
	if otherProgress.CompletedLessons != 1 {
		t.Errorf("other course completedLessons = %d, want 1", otherProgress.CompletedLessons)
	}
}

func TestSaveLessonProgressUpserts(t *testing.T) {
	db := newTestDB(t)

	_, lessonIDs := seedCourse(t, db, 1, 1)
	lessonID := lessonIDs[0]

	first, err := saveLessonProgress(db, 42, lessonID, 30, false)
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if first.IsCompleted || first.LastWatchedPosition != 30 {
		t.Errorf("first save stored %+v", first)
	}

	second, err := saveLessonProgress(db, 42, lessonID, 300, true)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if !second.IsCompleted || second.LastWatchedPosition != 300 {
		t.Errorf("second save stored %+v", second)
	}
	if second.ID != first.ID {
		t.Errorf("second save created a new row: id %d -> %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&courseModels.Progress{}).
		Where("user_id = ? AND lesson_id = ?", 42, lessonID).
		Count(&count).Error; err != nil {
		t.Fatalf("failed to count marks: %v", err)
	}
	if count != 1 {
		t.Errorf("found %d marks for the pair, want 1", count)
	}
}

func TestSaveLessonProgressLastWriteWins(t *testing.T) {
	db := newTestDB(t)

	_, lessonIDs := seedCourse(t, db, 1, 1)
	lessonID := lessonIDs[0]

	// A completed mark overwritten by an incomplete one stays incomplete
	if _, err := saveLessonProgress(db, 42, lessonID, 300, true); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	saved, err := saveLessonProgress(db, 42, lessonID, 10, false)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if saved.IsCompleted {
		t.Error("rewind did not clear the completed flag")
	}
	if saved.LastWatchedPosition != 10 {
		t.Errorf("lastWatchedPosition = %d, want 10", saved.LastWatchedPosition)
	}
}
