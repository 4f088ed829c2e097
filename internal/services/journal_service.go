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

type JournalServiceInterface interface {
	CreateEntry(ctx context.Context, userId string, request request_models.AddJournalEntryRequest) (*response_models.JournalEntryResponse, error)
	ListEntries(ctx context.Context, userId string) ([]response_models.JournalEntryResponse, error)
	UpdateEntry(ctx context.Context, entryId string, userId string, request request_models.EditJournalEntryRequest) error
	DeleteEntry(ctx context.Context, entryId string, userId string) error
}

type JournalService struct {
	journalRepo repositories.JournalRepository
}

func NewJournalService(journalRepo repositories.JournalRepository) JournalServiceInterface {
	return &JournalService{
		journalRepo: journalRepo,
	}
}

func (j *JournalService) CreateEntry(ctx context.Context, userId string, request request_models.AddJournalEntryRequest) (*response_models.JournalEntryResponse, error) {

	ownerID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	date, err := utils.ParseEntryDate(request.Date)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	entry := &db_models.JournalEntry{
		UserID:  ownerID,
		Date:    date,
		Title:   request.Title,
		Content: request.Content,
	}

	if err := j.journalRepo.InsertTx(entry, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := response_models.FromJournalEntry(*entry)
	return &response, nil
}

func (j *JournalService) ListEntries(ctx context.Context, userId string) ([]response_models.JournalEntryResponse, error) {

	entries, err := j.journalRepo.ListByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, response_models.FromJournalEntry(entry))
	}
	return out, nil
}

// UpdateEntry applies the owner check before touching anything. The owner id
// itself is never patched.
func (j *JournalService) UpdateEntry(ctx context.Context, entryId string, userId string, request request_models.EditJournalEntryRequest) error {

	entry, err := j.fetchOwned(ctx, entryId, userId)
	if err != nil {
		return err
	}

	date, err := utils.ParseEntryDate(request.Date)
	if err != nil {
		return utils.ErrInvalidInput
	}

	entry.Date = date
	entry.Title = request.Title
	entry.Content = request.Content

	if err := j.journalRepo.UpdateTx(entry, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (j *JournalService) DeleteEntry(ctx context.Context, entryId string, userId string) error {

	entry, err := j.fetchOwned(ctx, entryId, userId)
	if err != nil {
		return err
	}

	if err := j.journalRepo.DeleteTx(entry, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// fetchOwned validates the id before querying: a malformed id can never match
// a uuid column, and letting it through would surface as a driver error.
func (j *JournalService) fetchOwned(ctx context.Context, entryId string, userId string) (*db_models.JournalEntry, error) {
	if _, err := uuid.Parse(entryId); err != nil {
		return nil, utils.ErrEntryNotFound
	}

	entry, err := j.journalRepo.FindById(ctx, entryId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrEntryNotFound
	}
	if entry.UserID.String() != userId {
		return nil, utils.ErrForbidden
	}
	return entry, nil
}
