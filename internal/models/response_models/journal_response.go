package response_models

import (
	"wanderlog/internal/models/db_models"
	"wanderlog/pkg/utils"
)

type JournalEntryResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func FromJournalEntry(entry db_models.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:      entry.ID.String(),
		Date:    utils.FormatEntryDate(entry.Date),
		Title:   entry.Title,
		Content: entry.Content,
	}
}
