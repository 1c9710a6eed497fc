package models

// Category - двухуровневое дерево: корневые узлы это "родительские"
// рубрики, дочерние узлы это темы (topics) постов. Уровень вложенности
// ограничен конвенцией, не схемой.
type Category struct {
	BaseModel
	Name     string `gorm:"index;not null" json:"name"`
	BnName   string `gorm:"index" json:"bn_name,omitempty"`
	ParentID *uint  `gorm:"index" json:"parent_id,omitempty"`

	Parent        *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Subcategories []Category `gorm:"foreignKey:ParentID" json:"-"`
}

// IsRoot сообщает является ли категория родительской рубрикой
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// RootID возвращает id родительской рубрики для темы
// (корневая категория считается родителем самой себя)
func (c *Category) RootID() uint {
	if c.ParentID != nil {
		return *c.ParentID
	}
	return c.ID
}
