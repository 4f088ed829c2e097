package request_models

type CreateDestinationRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
}
