package catalog

import (
	"github.com/supakorn-kn/go-library/models"
	"github.com/supakorn-kn/go-library/objects"
)

type SearchOption struct {
	Title     models.MatchOption `json:"title,omitempty"`
	Author    models.MatchOption `json:"author,omitempty"`
	Available *bool              `json:"available,omitempty"`
}

// SearchBooks returns books whose title or author contains query, ignoring case
func (c *Catalog) SearchBooks(query string) []*objects.Book {

	result := []*objects.Book{}
	for _, book := range c.books {
		if models.PartialMatch(book.Title, query) || models.PartialMatch(book.Author, query) {
			result = append(result, book)
		}
	}

	return result
}

// Search returns books matching every condition given in opt
func (c *Catalog) Search(opt SearchOption) ([]*objects.Book, error) {

	if err := opt.Title.Validate(); err != nil {
		return nil, err
	}

	if err := opt.Author.Validate(); err != nil {
		return nil, err
	}

	result := []*objects.Book{}
	for _, book := range c.books {

		if !opt.Title.IsNil() && !opt.Title.Match(book.Title) {
			continue
		}

		if !opt.Author.IsNil() && !opt.Author.Match(book.Author) {
			continue
		}

		if opt.Available != nil && *opt.Available != book.IsAvailable {
			continue
		}

		result = append(result, book)
	}

	return result, nil
}
