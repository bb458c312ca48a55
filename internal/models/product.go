package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList stores a slice of strings as a JSON text column so the same
// schema works on both PostgreSQL and the in-memory SQLite used in tests.
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported string list column type %T", value)
	}
	if len(data) == 0 {
		*s = StringList{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// Product represents a catalog product. Title and slug are unique across
// the whole catalog; the slug is kept in canonical form by the repository
// on every write.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string         `json:"title" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=1"`
	Price       float64        `json:"price" gorm:"default:0" validate:"gte=0"`
	Description *string        `json:"description"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Stock       int            `json:"stock" gorm:"default:0" validate:"gte=0"`
	Sizes       StringList     `json:"sizes" gorm:"type:text" validate:"required"`
	Gender      string         `json:"gender" validate:"required"`
	Tags        StringList     `json:"tags" gorm:"type:text"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	UserID      string         `json:"-" gorm:"type:varchar(36);index"`
	User        User           `json:"user" gorm:"foreignKey:UserID"`
	gorm.Model  `json:"-"`
}

// ProductImage is a single image row owned by exactly one product. Images
// are never addressed on their own; they live and die with their product.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string `json:"url" gorm:"type:text"`
	ProductID string `json:"-" gorm:"type:varchar(36);index"`
}

// FlatProduct is the external representation of a product: the owned image
// collection reduced to a plain list of URL strings.
type FlatProduct struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description *string  `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	User        *User    `json:"user,omitempty"`
}

// Flatten builds the flattened view of a product.
func Flatten(p *Product) *FlatProduct {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	flat := &FlatProduct{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		Images:      urls,
	}
	if p.User.ID != "" {
		user := p.User
		user.Password = ""
		flat.User = &user
	}
	return flat
}
