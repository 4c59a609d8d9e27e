package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&Profile{},
		&Event{},
		&Collection{},
		&Stamp{},
		&EventCollection{},
		&CollectionStamp{},
		&UserStamp{},
	)
}
