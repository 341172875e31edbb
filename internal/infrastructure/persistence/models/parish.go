package models

import (
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/parish"
)

// DesignationModel is the persistence model for parish.Designation
type DesignationModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null"`
	NameKey     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text;not null;default:''"`
	IsActive    bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DesignationModel) TableName() string {
	return "designations"
}

// ToDomain converts the persistence model to a domain Designation
func (m *DesignationModel) ToDomain() *parish.Designation {
	return &parish.Designation{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

// DesignationModelFromDomain creates a persistence model from a domain Designation
func DesignationModelFromDomain(d *parish.Designation) *DesignationModel {
	m := &DesignationModel{
		Name:        d.Name,
		NameKey:     d.NameKey(),
		Description: d.Description,
		IsActive:    d.IsActive,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}

// GalleryItemModel is the persistence model for parish.GalleryItem
type GalleryItemModel struct {
	BaseModel
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Function    string    `gorm:"type:varchar(200);not null;default:''"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(2048);not null;default:''"`
	ObjectKey   string    `gorm:"type:varchar(512);not null;default:''"`
	Date        time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (GalleryItemModel) TableName() string {
	return "gallery_items"
}

// ToDomain converts the persistence model to a domain GalleryItem
func (m *GalleryItemModel) ToDomain() *parish.GalleryItem {
	return &parish.GalleryItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		Description: m.Description,
		Function:    m.Function,
		ImageURL:    m.ImageURL,
		ObjectKey:   m.ObjectKey,
		Date:        m.Date,
	}
}

// GalleryItemModelFromDomain creates a persistence model from a domain GalleryItem
func GalleryItemModelFromDomain(g *parish.GalleryItem) *GalleryItemModel {
	m := &GalleryItemModel{
		Title:       g.Title,
		Description: g.Description,
		Function:    g.Function,
		ImageURL:    g.ImageURL,
		ObjectKey:   g.ObjectKey,
		Date:        StoredTime(g.Date),
	}
	m.FromDomainBaseEntity(g.BaseEntity)
	return m
}
