// internal/models/user.go
package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	FullName         string   `json:"full_name" gorm:"size:100;not null"`
	Email            string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone            string   `json:"phone" gorm:"size:30;not null"`
	PasswordHash     string   `json:"-" gorm:"size:255;not null"`
	Role             UserRole `json:"role" gorm:"type:varchar(20);default:'user'"`
	MembershipAgreed bool     `json:"membership_agreed" gorm:"default:false"`
	KVKKAgreed       bool     `json:"kvkk_agreed" gorm:"default:false"`

	// Relationships
	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
	Garage    []Vehicle `json:"garage,omitempty" gorm:"many2many:user_garage"`
}

// Address is one saved delivery address in the user's address book.
type Address struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Title  string    `json:"title" gorm:"size:100;not null"`
	Detail string    `json:"detail" gorm:"size:500;not null"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
