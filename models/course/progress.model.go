package course

import "gorm.io/gorm"

// Progress is the per-user, per-lesson completion mark. Saves are upserts keyed
// on the composite unique index; last write wins and no history is kept.
type Progress struct {
	gorm.Model
	UserID              uint `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID            uint `json:"lesson_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	IsCompleted         bool `json:"is_completed" gorm:"default:false"`
	LastWatchedPosition int  `json:"last_watched_position" gorm:"default:0"` // seconds into the video
}
