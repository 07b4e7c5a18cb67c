package request

type CreateRatingRequest struct {
	ContractorID string `json:"contractor_id" binding:"required"`
	ProjectID    string `json:"project_id" binding:"required"`
	RatingValue  int    `json:"rating_value" binding:"required"`
	Comment      string `json:"comment"`
}
