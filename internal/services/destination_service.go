package services

import (
	"context"

	"github.com/google/uuid"
	"wanderlog/internal/models/db_models"
	"wanderlog/internal/models/request_models"
	"wanderlog/internal/models/response_models"
	"wanderlog/internal/repositories"
	"wanderlog/pkg/utils"
)

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context) ([]response_models.DestinationResponse, error)
	GetDestinationDetail(ctx context.Context, destinationId string) (*response_models.DestinationDetailResponse, error)
	CreateDestination(ctx context.Context, request request_models.CreateDestinationRequest) (*response_models.DestinationResponse, error)
	DeleteDestination(ctx context.Context, destinationId string) error
	SeedCatalog(ctx context.Context) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
	}
}

func (d *DestinationService) ListDestinations(ctx context.Context) ([]response_models.DestinationResponse, error) {

	destinations, err := d.destinationRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, destination := range destinations {
		out = append(out, response_models.FromDestination(destination))
	}
	return out, nil
}

func (d *DestinationService) GetDestinationDetail(ctx context.Context, destinationId string) (*response_models.DestinationDetailResponse, error) {

	if _, err := uuid.Parse(destinationId); err != nil {
		return nil, utils.ErrDestinationNotFound
	}

	destination, err := d.destinationRepo.FindById(ctx, destinationId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	detail := response_models.FromDestinationDetail(*destination)
	return &detail, nil
}

func (d *DestinationService) CreateDestination(ctx context.Context, request request_models.CreateDestinationRequest) (*response_models.DestinationResponse, error) {

	destination := &db_models.Destination{
		Name:        request.Name,
		Description: request.Description,
		Location:    request.Location,
		ImageURL:    request.ImageURL,
	}

	if err := d.destinationRepo.InsertTx(destination, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := response_models.FromDestination(*destination)
	return &response, nil
}

func (d *DestinationService) DeleteDestination(ctx context.Context, destinationId string) error {

	if _, err := uuid.Parse(destinationId); err != nil {
		return utils.ErrDestinationNotFound
	}

	destination, err := d.destinationRepo.FindById(ctx, destinationId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if destination == nil {
		return utils.ErrDestinationNotFound
	}

	if err := d.destinationRepo.DeleteTx(destination, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// SeedCatalog loads the fixture catalog once. A non-empty catalog is left
// untouched so reseeding cannot duplicate rows.
func (d *DestinationService) SeedCatalog(ctx context.Context) error {

	count, err := d.destinationRepo.CountAll(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if count > 0 {
		return nil
	}

	if err := d.destinationRepo.SeedTx(ctx, seedDestinations()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func seedDestinations() []db_models.Destination {
	return []db_models.Destination{
		{
			Name:        "Mumbai",
			Description: "The city of dreams, known for its vibrant culture and bustling streets.",
			Location:    "Maharashtra, India",
			ImageURL:    "https://images.unsplash.com/photo-1570168007204-dfb528c6958f?auto=format&fit=crop&w=800",
			Subcategories: []db_models.Subcategory{
				{
					Name:        "Leopold Cafe",
					Type:        db_models.SubcategoryTypeCafe,
					Description: "Historic cafe with great food and ambiance",
					ImageURL:    "https://images.unsplash.com/photo-1559925393-8be0ec4767c8?auto=format&fit=crop&w=800",
				},
				{
					Name:        "Taj Mahal Palace",
					Type:        db_models.SubcategoryTypeHotel,
					Description: "Luxury hotel with stunning architecture",
					ImageURL:    "https://images.unsplash.com/photo-1566552881560-0be862a7c445?auto=format&fit=crop&w=800",
				},
				{
					Name:        "Gateway of India",
					Type:        db_models.SubcategoryTypeTourist,
					Description: "Historic monument and must-visit landmark",
					ImageURL:    "https://images.unsplash.com/photo-1567157577867-05ccb1388e66?auto=format&fit=crop&w=800",
				},
			},
		},
		{
			Name:        "Udaipur",
			Description: "The city of lakes, famous for its royal heritage and beautiful architecture.",
			Location:    "Rajasthan, India",
			ImageURL:    "https://images.unsplash.com/photo-1598890777032-bde835ba27c2?auto=format&fit=crop&w=800",
			Subcategories: []db_models.Subcategory{
				{
					Name:        "Cafe La Comida",
					Type:        db_models.SubcategoryTypeCafe,
					Description: "Rooftop cafe with lake views",
					ImageURL:    "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?auto=format&fit=crop&w=800",
				},
				{
					Name:        "Taj Lake Palace",
					Type:        db_models.SubcategoryTypeHotel,
					Description: "Luxury hotel in middle of Lake Pichola",
					ImageURL:    "https://images.unsplash.com/photo-1566552881560-0be862a7c445?auto=format&fit=crop&w=800",
				},
				{
					Name:        "City Palace",
					Type:        db_models.SubcategoryTypeTourist,
					Description: "Royal palace complex with museums",
					ImageURL:    "https://images.unsplash.com/photo-1599661046289-e31897846e41?auto=format&fit=crop&w=800",
				},
			},
		},
		{
			Name:        "Goa",
			Description: "A paradise for beach lovers with amazing nightlife and Portuguese influence.",
			Location:    "Goa, India",
			ImageURL:    "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?auto=format&fit=crop&w=800",
			Subcategories: []db_models.Subcategory{
				{
					Name:        "Cafe Artjuna",
					Type:        db_models.SubcategoryTypeCafe,
					Description: "Bohemian cafe with great coffee",
					ImageURL:    "https://images.unsplash.com/photo-1559925393-8be0ec4767c8?auto=format&fit=crop&w=800",
				},
				{
					Name:        "W Goa",
					Type:        db_models.SubcategoryTypeHotel,
					Description: "Luxury beachfront resort",
					ImageURL:    "https://images.unsplash.com/photo-1582719508461-905c673771fd?auto=format&fit=crop&w=800",
				},
				{
					Name:        "Calangute Beach",
					Type:        db_models.SubcategoryTypeTourist,
					Description: "Popular beach with water sports",
					ImageURL:    "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?auto=format&fit=crop&w=800",
				},
			},
		},
	}
}
