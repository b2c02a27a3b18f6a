package entities

import "time"

type User struct {
	ID             string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Email          string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"column:hashed_password;not null"`
	IsActive       bool      `json:"is_active" gorm:"column:is_active;not null;default:true"`
	IsSuperuser    bool      `json:"is_superuser" gorm:"column:is_superuser;not null;default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}
