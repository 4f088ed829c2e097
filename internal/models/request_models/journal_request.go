package request_models

type AddJournalEntryRequest struct {
	Date    string `json:"date" binding:"required"`
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

type EditJournalEntryRequest struct {
	Date    string `json:"date" binding:"required"`
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}
