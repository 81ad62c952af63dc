package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role is the single role carried by a user account and by its tokens
type Role string

const (
	RoleTechnician Role = "Technician"
	RoleDentist    Role = "Dentist"
)

// passwordCost is the bcrypt work factor used for every stored password
const passwordCost = 10

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleTechnician || r == RoleDentist
}

// User is an account able to log in. Users are created by registration only.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:text;not null;check:role IN ('Technician','Dentist')" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// HashPassword replaces the plain password held in u.Password with its bcrypt hash
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), passwordCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a plain password with the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
