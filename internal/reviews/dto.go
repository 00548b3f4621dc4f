package reviews

import (
	"github.com/aselbek/bazar-backend/pkg/db/models"
)

const dateLayout = "02-01-2006"

// CreateReviewRequest is the POST /reviews payload.
type CreateReviewRequest struct {
	Product int64  `json:"product" validate:"required,gt=0"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// UpdateReviewRequest is the partial PATCH payload; only the owner may apply it.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment,omitempty"`
}

// ReviewerDTO exposes only the reviewer's name.
type ReviewerDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ReviewDTO is the transport shape of one review.
type ReviewDTO struct {
	ID         int64       `json:"id"`
	User       ReviewerDTO `json:"user"`
	Product    int64       `json:"product"`
	Rating     int         `json:"rating"`
	Comment    string      `json:"comment"`
	CreateDate string      `json:"create_date"`
}

// FromModel maps the persistence model into the transport shape.
func FromModel(review *models.Review) *ReviewDTO {
	if review == nil {
		return nil
	}
	dto := &ReviewDTO{
		ID:         review.ID,
		Product:    review.ProductID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreateDate: review.CreateDate.Format(dateLayout),
	}
	if review.User != nil {
		dto.User = ReviewerDTO{
			FirstName: review.User.FirstName,
			LastName:  review.User.LastName,
		}
	}
	return dto
}
