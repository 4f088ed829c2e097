package response_models

import "wanderlog/internal/models/db_models"

type DestinationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url,omitempty"`
}

type SubcategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

// DestinationDetailResponse partitions the subcategories by type tag. Rows
// with an unrecognized tag appear in none of the groups.
type DestinationDetailResponse struct {
	DestinationResponse
	Cafes        []SubcategoryResponse `json:"cafes"`
	Hotels       []SubcategoryResponse `json:"hotels"`
	TouristSpots []SubcategoryResponse `json:"tourist_spots"`
}

func FromDestination(destination db_models.Destination) DestinationResponse {
	return DestinationResponse{
		ID:          destination.ID.String(),
		Name:        destination.Name,
		Description: destination.Description,
		Location:    destination.Location,
		ImageURL:    destination.ImageURL,
	}
}

func FromSubcategory(subcategory db_models.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:          subcategory.ID.String(),
		Name:        subcategory.Name,
		Description: subcategory.Description,
		ImageURL:    subcategory.ImageURL,
	}
}

func FromDestinationDetail(destination db_models.Destination) DestinationDetailResponse {
	detail := DestinationDetailResponse{
		DestinationResponse: FromDestination(destination),
		Cafes:               []SubcategoryResponse{},
		Hotels:              []SubcategoryResponse{},
		TouristSpots:        []SubcategoryResponse{},
	}

	for _, sub := range destination.Subcategories {
		switch sub.Type {
		case db_models.SubcategoryTypeCafe:
			detail.Cafes = append(detail.Cafes, FromSubcategory(sub))
		case db_models.SubcategoryTypeHotel:
			detail.Hotels = append(detail.Hotels, FromSubcategory(sub))
		case db_models.SubcategoryTypeTourist:
			detail.TouristSpots = append(detail.TouristSpots, FromSubcategory(sub))
		}
	}

	return detail
}
