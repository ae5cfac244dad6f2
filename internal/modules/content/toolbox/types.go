package toolbox

import (
	"errors"

	"github.com/folio-space/core/internal/models"
)

var errNotOwned = errors.New("resource belongs to another organization")

// Toolbox is the combined read model consumed by the portfolio assembler.
type Toolbox struct {
	Categories []models.SkillCategoryModel `json:"categories"`
	Tools      []models.ToolModel          `json:"tools"`
}

// IsEmpty reports whether the toolbox has nothing to show.
func (t *Toolbox) IsEmpty() bool {
	return t == nil || (len(t.Categories) == 0 && len(t.Tools) == 0)
}

type CategoryDTO struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

type SkillDTO struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"min=0,max=100"`
	Order int    `json:"order"`
}

type ToolDTO struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}
