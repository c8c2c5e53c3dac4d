package models

// Review is a user-submitted rating and comment on a product.
type Review struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	Rating    int    `gorm:"not null"`
	ProductID uint   `gorm:"index;not null"`
}

type ReviewResponse struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	ProductID uint   `json:"product_id"`
}

func (r *Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Content:   r.Content,
		Rating:    r.Rating,
		ProductID: r.ProductID,
	}
}

func ReviewsToResponse(reviews []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, reviews[i].ToResponse())
	}
	return out
}
