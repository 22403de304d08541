// internal/models/category.go
package models

import "github.com/google/uuid"

// Category is a two-level browse tree: a category without a parent is a root
// ("main") category and may carry an image; a category with a parent is a sub
// category and never does. Deeper nesting is rejected at write time.
type Category struct {
	BaseModel
	Name     string     `json:"name" gorm:"size:100;not null"`
	Image    string     `json:"image" gorm:"size:500"`
	ParentID *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`

	// Relationships
	Parent *Category `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
}

func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
