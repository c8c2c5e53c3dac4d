package models

// User represents a registered marketplace user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;type:varchar(100);not null"`
	Email        string `gorm:"uniqueIndex;type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// UserResponse is the public view of a User. The password hash is never part of it.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToResponse returns the public view of u.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
