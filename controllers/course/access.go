package controllers

import (
	"edura/models"
	courseModels "edura/models/course"
)

// ReasonLocked marks a lesson whose playable source is withheld
const ReasonLocked = "locked"

// LessonAccess is the access policy's verdict for one lesson
type LessonAccess struct {
	Playable bool
	Reason   string
}

// CanViewLesson decides whether a viewer may play a lesson: free previews are
// open to everyone, otherwise the course's instructor, an admin, or an enrolled
// user. Pure function of its inputs; callers null the video URL when the
// verdict is locked, leaving the lesson's metadata intact.
func CanViewLesson(lesson *courseModels.Lesson, viewerRole string, isOwner, isEnrolled bool) LessonAccess {
	if lesson.IsFreePreview || viewerRole == models.RoleAdmin || isOwner || isEnrolled {
		return LessonAccess{Playable: true}
	}
	return LessonAccess{Playable: false, Reason: ReasonLocked}
}
