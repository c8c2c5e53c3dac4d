package models

// Storefront is a named collection of products owned by one user.
type Storefront struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"type:varchar(255);not null"`
	UserID uint   `gorm:"index;not null"`
}

type StorefrontResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	UserID uint   `json:"user_id"`
}

func (s *Storefront) ToResponse() StorefrontResponse {
	return StorefrontResponse{
		ID:     s.ID,
		Name:   s.Name,
		UserID: s.UserID,
	}
}
