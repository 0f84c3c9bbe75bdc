package github

import "time"

// Repository represents a single repository of the queried account.
// Description and Language are nil when GitHub reports no value.
type Repository struct {
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Language    *string   `json:"language,omitempty"`
	StarCount   int       `json:"stargazers_count"`
	ForkCount   int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
	URL         string    `json:"html_url"`
}

// HasDescription reports whether the repository carries a description.
func (r Repository) HasDescription() bool {
	return r.Description != nil
}

// HasLanguage reports whether GitHub classified the repository's language.
func (r Repository) HasLanguage() bool {
	return r.Language != nil
}

// DescriptionOr returns the description or fallback when absent.
func (r Repository) DescriptionOr(fallback string) string {
	if r.Description == nil || *r.Description == "" {
		return fallback
	}
	return *r.Description
}

// LanguageOr returns the language or fallback when absent.
func (r Repository) LanguageOr(fallback string) string {
	if r.Language == nil {
		return fallback
	}
	return *r.Language
}
