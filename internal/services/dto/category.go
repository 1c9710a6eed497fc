package dto

// CreateCategoryRequest - создание рубрики или темы.
// ParentID == nil означает корневую рубрику.
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	BnName   string `json:"bn_name"`
	ParentID *uint  `json:"parent_id"`
}

// UpdateCategoryRequest - частичное обновление рубрики
type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	BnName   *string `json:"bn_name,omitempty"`
	ParentID *uint   `json:"parent_id,omitempty"`
}

// CategoryResponse - рубрика с вложенными темами
type CategoryResponse struct {
	ID            uint               `json:"id"`
	Name          string             `json:"name"`
	BnName        string             `json:"bn_name"`
	ParentID      *uint              `json:"parent_id"`
	Subcategories []CategoryResponse `json:"subcategories,omitempty"`
}
