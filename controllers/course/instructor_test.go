package controllers

import (
	"testing"

	courseModels "edura/models/course"
)

func TestInstructorStats(t *testing.T) {
	db := newTestDB(t)

	cheap := courseModels.Course{Title: "Cheap", Price: 10, PublishedStatus: courseModels.StatusPublished, InstructorID: 1}
	dear := courseModels.Course{Title: "Dear", Price: 20, PublishedStatus: courseModels.StatusPublished, InstructorID: 1}
	other := courseModels.Course{Title: "Other", Price: 99, PublishedStatus: courseModels.StatusPublished, InstructorID: 2}
	for _, crs := range []*courseModels.Course{&cheap, &dear, &other} {
		if err := db.Create(crs).Error; err != nil {
			t.Fatalf("failed to seed course: %v", err)
		}
	}

	// One student across both of the instructor's courses counts twice
	for _, courseID := range []uint{cheap.ID, dear.ID} {
		if _, err := createEnrollment(db, 42, courseID); err != nil {
			t.Fatalf("failed to enroll: %v", err)
		}
	}
	// Enrollments in another instructor's course stay out of the summary
	if _, err := createEnrollment(db, 42, other.ID); err != nil {
		t.Fatalf("failed to enroll: %v", err)
	}

	summary, err := instructorStats(db, 1)
	if err != nil {
		t.Fatalf("instructorStats failed: %v", err)
	}

	if summary.TotalCourses != 2 {
		t.Errorf("totalCourses = %d, want 2", summary.TotalCourses)
	}
	if summary.TotalStudents != 2 {
		t.Errorf("totalStudents = %d, want 2 (one student, two enrollments)", summary.TotalStudents)
	}
	if summary.TotalRevenue != 30 {
		t.Errorf("totalRevenue = %v, want 30", summary.TotalRevenue)
	}
	if summary.EnrollmentsThisMonth != 2 {
		t.Errorf("enrollmentsThisMonth = %d, want 2", summary.EnrollmentsThisMonth)
	}
}

func TestInstructorStatsRevenueAtCurrentPrice(t *testing.T) {
	db := newTestDB(t)

	crs := courseModels.Course{Title: "Repriced", Price: 10, PublishedStatus: courseModels.StatusPublished, InstructorID: 1}
	if err := db.Create(&crs).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}
	if _, err := createEnrollment(db, 42, crs.ID); err != nil {
		t.Fatalf("failed to enroll: %v", err)
	}

	// Reprice after the enrollment; revenue follows the current price
	crs.Price = 50
	if err := db.Save(&crs).Error; err != nil {
		t.Fatalf("failed to reprice course: %v", err)
	}

	summary, err := instructorStats(db, 1)
	if err != nil {
		t.Fatalf("instructorStats failed: %v", err)
	}
	if summary.TotalRevenue != 50 {
		t.Errorf("totalRevenue = %v, want 50 (current price, not price at enrollment)", summary.TotalRevenue)
	}
}

func TestInstructorStatsNoCourses(t *testing.T) {
	db := newTestDB(t)

	summary, err := instructorStats(db, 7)
	if err != nil {
		t.Fatalf("instructorStats failed: %v", err)
	}
	if summary != (InstructorSummary{}) {
		t.Errorf("instructor without courses reported %+v, want all zeros", summary)
	}
}
