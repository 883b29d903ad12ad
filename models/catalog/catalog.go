package catalog

import (
	"slices"
	"strings"

	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/objects"
)

// Catalog owns books and members of the library. Books are keyed by title and
// members by member ID; both keep insertion order for listing.
//
// Catalog is not safe for concurrent use.
type Catalog struct {
	books   []*objects.Book
	members []*objects.Member

	bookIndex   map[string]*objects.Book
	memberIndex map[int]*objects.Member
}

type Summary struct {
	TotalBooks   int `json:"total_books"`
	TotalMembers int `json:"total_members"`
	IssuedCount  int `json:"issued_count"`
}

func New() *Catalog {

	return &Catalog{
		books:       []*objects.Book{},
		members:     []*objects.Member{},
		bookIndex:   map[string]*objects.Book{},
		memberIndex: map[int]*objects.Member{},
	}
}

func (c *Catalog) AddBook(title, author string) (*objects.Book, error) {

	if strings.TrimSpace(title) == "" {
		return nil, errors.InvalidInputError.New("title")
	}

	if strings.TrimSpace(author) == "" {
		return nil, errors.InvalidInputError.New("author")
	}

	if _, ok := c.bookIndex[title]; ok {
		return nil, errors.DuplicatedBookTitleError.New(title)
	}

	book := objects.NewBook(title, author)
	c.appendBook(book)

	return book, nil
}

func (c *Catalog) AddMember(name string, memberID int) (*objects.Member, error) {

	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidInputError.New("name")
	}

	if _, ok := c.memberIndex[memberID]; ok {
		return nil, errors.DuplicatedMemberIDError.New(memberID)
	}

	member := objects.NewMember(name, memberID)
	c.appendMember(member)

	return member, nil
}

func (c *Catalog) FindMember(memberID int) (*objects.Member, error) {

	member, ok := c.memberIndex[memberID]
	if !ok {
		return nil, errors.MemberNotFoundError.New(memberID)
	}

	return member, nil
}

func (c *Catalog) FindBook(title string) (*objects.Book, error) {

	book, ok := c.bookIndex[title]
	if !ok {
		return nil, errors.BookNotFoundError.New(title)
	}

	return book, nil
}

func (c *Catalog) Books() []*objects.Book {
	return slices.Clone(c.books)
}

func (c *Catalog) Members() []*objects.Member {
	return slices.Clone(c.members)
}

func (c *Catalog) Summary() Summary {

	summary := Summary{TotalBooks: len(c.books), TotalMembers: len(c.members)}
	for _, book := range c.books {
		if !book.IsAvailable {
			summary.IssuedCount++
		}
	}

	return summary
}

func (c *Catalog) appendBook(book *objects.Book) {

	c.books = append(c.books, book)
	c.bookIndex[book.Title] = book
}

func (c *Catalog) appendMember(member *objects.Member) {

	c.members = append(c.members, member)
	c.memberIndex[member.MemberID] = member
}
