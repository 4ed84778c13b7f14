package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&ServiceProvider{},
		&Event{},
		&Participation{},
		&Invitee{},
		&Collaborator{},
		&Ticket{},
		&TicketLog{},
		&Payment{},
	)
}
