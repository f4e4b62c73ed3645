package database

import "gamerforum/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters: parents before children so AutoMigrate creates foreign key
// targets first.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Category{},
		&models.Game{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
	}
}
