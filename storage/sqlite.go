package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry is one persisted key-value row.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (Entry) TableName() string { return "kv_entries" }

// SQLite is the durable Adapter: a single kv table in an embedded database
// file, the local-storage analog for a single browser scope. It honors the
// same failure policy as the rest of the package — a query error reads as an
// absent key, a failed write is dropped.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the database at path and migrates
// the kv table. This is the only storage constructor that can fail: with no
// database there is nothing to degrade to.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) (string, bool) {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		return "", false
	}
	return entry.Value, true
}

func (s *SQLite) Set(key, value string) {
	_ = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

func (s *SQLite) Delete(key string) {
	_ = s.db.Delete(&Entry{}, "key = ?", key).Error
}

// SetMulti upserts the whole batch inside one transaction, so a crash cannot
// land between the order write and the cart clear.
func (s *SQLite) SetMulti(entries map[string]string) {
	_ = s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&Entry{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
