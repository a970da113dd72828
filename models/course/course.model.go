package course

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Price           float64        `json:"price" gorm:"default:0"`
	ThumbnailURL    string         `json:"thumbnail_url"`
	PublishedStatus string         `json:"published_status" gorm:"default:'draft'"` // draft, published
	InstructorID    uint           `json:"instructor_id" gorm:"index;not null"`
	Resources       datatypes.JSON `json:"resources"` // list of Resource links
}

// Resource is one downloadable/reference link attached to a course
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ResourceList decodes the stored resource links
func (c *Course) ResourceList() []Resource {
	var resources []Resource
	if len(c.Resources) == 0 {
		return resources
	}
	if err := json.Unmarshal(c.Resources, &resources); err != nil {
		return nil
	}
	return resources
}

// AppendResource adds a resource link to the course
func (c *Course) AppendResource(r Resource) error {
	resources := append(c.ResourceList(), r)
	raw, err := json.Marshal(resources)
	if err != nil {
		return err
	}
	c.Resources = raw
	return nil
}
