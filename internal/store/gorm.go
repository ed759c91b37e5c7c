package store

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentModel 一行一个集合文档
type DocumentModel struct {
	Name      string `gorm:"primaryKey;size:64"`
	Body      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (DocumentModel) TableName() string { return "documents" }

// GormBackend 把整份文档存进 SQL 表（postgres / mysql / sqlite）
type GormBackend struct{ db *gorm.DB }

func NewGormBackend(db *gorm.DB, migrate bool) (*GormBackend, error) {
	if migrate {
		if err := db.AutoMigrate(&DocumentModel{}); err != nil {
			return nil, err
		}
	}
	return &GormBackend{db: db}, nil
}

func (g *GormBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var m DocumentModel
	err := g.db.WithContext(ctx).First(&m, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return m.Body, nil
}

// Write upsert，整体替换 body
func (g *GormBackend) Write(ctx context.Context, name string, data []byte) error {
	m := DocumentModel{Name: name, Body: data, UpdatedAt: time.Now().UTC()}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&m).Error
}
