package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LiveClass struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseId    *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Instructor  string     `gorm:"type:varchar(255);not null"`
	Category    string     `gorm:"type:varchar(100);index"`
	Description string     `gorm:"type:text"`
	Topics      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	StartTime   time.Time  `gorm:"not null;index"`
	Duration    string     `gorm:"type:varchar(50)"`
	Attendees   int        `gorm:"default:0"`
	CoverImage  string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (LiveClass) TableName() string {
	return "live_classes"
}

type ClassChatMessage struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LiveClassId uuid.UUID `gorm:"type:uuid;not null;index:idx_class_chat_class_created,priority:1"`
	UserId      uuid.UUID `gorm:"type:uuid;not null"`
	AuthorName  string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_class_chat_class_created,priority:2"`
}

func (ClassChatMessage) TableName() string {
	return "class_chat_messages"
}
