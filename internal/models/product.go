package models

// Product represents an item listed in a storefront.
// Rating is stored with its default and has no write path; reviews do not feed it.
type Product struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:text;not null"`
	Price        float64 `gorm:"not null;index"`
	ImageURL     string  `gorm:"type:varchar(500);not null;default:''"`
	Rating       float64 `gorm:"not null;default:0"`
	StorefrontID uint    `gorm:"index;not null"`
}

// ProductResponse is the public view of a Product.
type ProductResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	Rating       float64 `json:"rating"`
	StorefrontID uint    `json:"storefront_id"`
}

// ToResponse returns the public view of p.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		Rating:       p.Rating,
		StorefrontID: p.StorefrontID,
	}
}

// ProductsToResponse converts a list of products, always returning a non-nil slice.
func ProductsToResponse(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, products[i].ToResponse())
	}
	return out
}

// ProductFilter narrows a product listing. Nil fields impose no constraint;
// all set fields must hold.
type ProductFilter struct {
	Name     string
	MinPrice *float64
	MaxPrice *float64
}
