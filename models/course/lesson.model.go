package course

import "gorm.io/gorm"

// Lesson represents a playable lesson within a module
type Lesson struct {
	gorm.Model
	ModuleID      uint   `json:"module_id" gorm:"index;not null"`
	Title         string `json:"title"`
	VideoURL      string `json:"video_url"`
	Duration      int    `json:"duration" gorm:"default:0"` // duration in seconds
	IsFreePreview bool   `json:"is_free_preview" gorm:"default:false"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"`
}
