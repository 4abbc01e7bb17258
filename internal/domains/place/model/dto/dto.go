package dto

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
