package request_models

type AddBucketListItemRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description"`
}

// UpdateBucketListItemRequest is a mutually exclusive patch: when Completed
// is present only the flag changes; otherwise Title/Description are replaced
// and the flag is left alone. Pointers distinguish "absent" from zero values.
type UpdateBucketListItemRequest struct {
	Completed   *bool   `json:"completed"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
