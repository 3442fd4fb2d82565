package persist

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// snapshotRow 快照表，一行一个命名快照
type snapshotRow struct {
	Name      string `gorm:"primaryKey;size:100"`
	Version   int    `gorm:"not null"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string {
	return "snapshots"
}

// SQLite 基于本地 SQLite 文件的 BlobStore 实现
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite 打开（必要时创建）本地快照库
func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("打开快照库失败: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("迁移快照表失败: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(name string) ([]byte, int, bool, error) {
	var row snapshotRow
	err := s.db.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("读取快照失败: %w", err)
	}
	return row.Data, row.Version, true, nil
}

func (s *SQLite) Save(name string, version int, data []byte) error {
	row := snapshotRow{
		Name:      name,
		Version:   version,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("写入快照失败: %w", err)
	}
	return nil
}
