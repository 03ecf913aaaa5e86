package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string    `gorm:"not null;uniqueIndex;size:255" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// FavoriteWord links a user to a saved word. The composite primary key
// keeps the relation duplicate-free at the store level.
type FavoriteWord struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"userId"`
	WordID    string    `gorm:"type:uuid;primaryKey" json:"wordId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (FavoriteWord) TableName() string {
	return "favorite_words"
}
