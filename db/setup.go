package db

import (
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	return Migrate(DB)
}

// Migrate is split out from MigrateDatabase so tests can run the same
// migration set against their own database handle.
func Migrate(gdb *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.Workspace{},
		&models.WorkspaceMember{},
		&models.WorkspaceInvitation{},
		&models.Task{},
		&models.Note{},
		&models.WorkspacePreference{},
	}

	migrator := gdb.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := gdb.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
