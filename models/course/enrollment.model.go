package course

import "gorm.io/gorm"

// Enrollment links a user to a course. The composite unique index guarantees at
// most one row per (user, course) pair; a concurrent duplicate insert loses with
// a unique-violation error. Rows are created once and never updated.
type Enrollment struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID      uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	TransactionID string `json:"transaction_id"`
}
