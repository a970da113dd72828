package controllers

import (
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	courseModels "edura/models/course"
)

func TestCreateEnrollment(t *testing.T) {
	db := newTestDB(t)
	course, _ := seedCourse(t, db, 1, 1)

	enrollment, err := createEnrollment(db, 42, course.ID)
	if err != nil {
		t.Fatalf("createEnrollment failed: %v", err)
	}
	if enrollment.UserID != 42 || enrollment.CourseID != course.ID {
		t.Errorf("enrollment stored %+v", enrollment)
	}
	if !strings.HasPrefix(enrollment.TransactionID, "MOCK-") {
		t.Errorf("transaction id %q lacks the mock prefix", enrollment.TransactionID)
	}
}

func TestCreateEnrollmentRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	course, _ := seedCourse(t, db, 1, 1)

	if _, err := createEnrollment(db, 42, course.ID); err != nil {
		t.Fatalf("first enrollment failed: %v", err)
	}

	_, err := createEnrollment(db, 42, course.ID)
	if !errors.Is(err, errAlreadyEnrolled) {
		t.Fatalf("duplicate enrollment returned %v, want errAlreadyEnrolled", err)
	}

	var count int64
	if err := db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", 42, course.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("failed to count enrollments: %v", err)
	}
	if count != 1 {
		t.Errorf("found %d enrollments, want 1", count)
	}
}

func TestEnrollmentUniqueIndexArbitratesRace(t *testing.T) {
	db := newTestDB(t)
	course, _ := seedCourse(t, db, 1, 1)

	// Insert directly, bypassing the pre-check, the way the losing side of a
	// concurrent enroll would.
	first := courseModels.Enrollment{UserID: 42, CourseID: course.ID, TransactionID: "MOCK-a"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	second := courseModels.Enrollment{UserID: 42, CourseID: course.ID, TransactionID: "MOCK-b"}
	err := db.Create(&second).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate insert returned %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestCreateEnrollmentDistinctPairs(t *testing.T) {
	db := newTestDB(t)
	first, _ := seedCourse(t, db, 1, 1)
	second, _ := seedCourse(t, db, 1, 1)

	// Same user on another course, and another user on the same course
	if _, err := createEnrollment(db, 42, first.ID); err != nil {
		t.Fatalf("enrollment failed: %v", err)
	}
	if _, err := createEnrollment(db, 42, second.ID); err != nil {
		t.Errorf("same user, different course rejected: %v", err)
	}
	if _, err := createEnrollment(db, 99, first.ID); err != nil {
		t.Errorf("different user, same course rejected: %v", err)
	}
}
