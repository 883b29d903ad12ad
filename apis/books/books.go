package books

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-library/apis"
	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/models"
	"github.com/supakorn-kn/go-library/models/catalog"
	"github.com/supakorn-kn/go-library/objects"
)

type InsertRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

type BooksAPI struct {
	library *apis.Library
}

func NewBooksAPI(library *apis.Library) *BooksAPI {
	return &BooksAPI{library: library}
}

func (api BooksAPI) Insert(ctx *gin.Context) (*objects.BookRecord, error) {

	var req InsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, errors.RequestBodyInvalidError.New(err)
	}

	var result objects.BookRecord
	err := api.library.Write(ctx, func(c *catalog.Catalog) error {

		book, err := c.AddBook(req.Title, req.Author)
		if err != nil {
			return err
		}

		result = book.Record()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (api BooksAPI) ReadOne(title string, ctx *gin.Context) (*objects.BookRecord, error) {

	var result objects.BookRecord
	err := api.library.Read(func(c *catalog.Catalog) error {

		book, err := c.FindBook(title)
		if err != nil {
			return err
		}

		result = book.Record()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (api BooksAPI) Read(ctx *gin.Context) ([]objects.BookRecord, error) {

	var result []objects.BookRecord
	err := api.library.Read(func(c *catalog.Catalog) error {
		result = records(c.Books())
		return nil
	})

	return result, err
}

// Search uses q for a title-or-author search, otherwise the title, author and available filters
func (api BooksAPI) Search(ctx *gin.Context) ([]objects.BookRecord, error) {

	query := ctx.Query("q")

	opt, err := searchOption(ctx)
	if err != nil {
		return nil, err
	}

	var result []objects.BookRecord
	err = api.library.Read(func(c *catalog.Catalog) error {

		if query != "" {
			result = records(c.SearchBooks(query))
			return nil
		}

		books, err := c.Search(opt)
		if err != nil {
			return err
		}

		result = records(books)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, errors.NoMatchFoundError.New(ctx.Request.URL.RawQuery)
	}

	return result, nil
}

func searchOption(ctx *gin.Context) (catalog.SearchOption, error) {

	var opt catalog.SearchOption

	title, err := matchOption(ctx, "title")
	if err != nil {
		return opt, err
	}

	author, err := matchOption(ctx, "author")
	if err != nil {
		return opt, err
	}

	opt.Title = title
	opt.Author = author

	if value, ok := ctx.GetQuery("available"); ok {

		available, err := strconv.ParseBool(value)
		if err != nil {
			return opt, errors.RequestBodyInvalidError.New("available must be a boolean")
		}

		opt.Available = &available
	}

	return opt, nil
}

// matchOption reads key and key_match query parameters. Partial match is used by default.
func matchOption(ctx *gin.Context, key string) (models.MatchOption, error) {

	value := ctx.Query(key)
	if value == "" {
		return models.MatchOption{}, nil
	}

	matchType := models.PartialMatchType
	if raw, ok := ctx.GetQuery(key + "_match"); ok {

		parsed, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return models.MatchOption{}, errors.RequestBodyInvalidError.New(key + "_match must be a number")
		}

		matchType = models.MatchType(parsed)
	}

	return models.MatchOption{MatchType: matchType, Value: value}, nil
}

func records(books []*objects.Book) []objects.BookRecord {

	result := make([]objects.BookRecord, 0, len(books))
	for _, book := range books {
		result = append(result, book.Record())
	}

	return result
}
