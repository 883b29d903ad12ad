package catalog

import (
	"slices"

	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/objects"
)

// IssueBook lends the book to the member. Nothing changes when any step fails.
func (c *Catalog) IssueBook(memberID int, title string) (*objects.Book, error) {

	member, err := c.FindMember(memberID)
	if err != nil {
		return nil, err
	}

	book, err := c.FindBook(title)
	if err != nil {
		return nil, err
	}

	if !book.IsAvailable {
		return nil, errors.BookUnavailableError.New(book.Title)
	}

	book.IsAvailable = false
	member.BorrowedBooks = append(member.BorrowedBooks, book)

	return book, nil
}

func (c *Catalog) ReturnBook(memberID int, title string) (*objects.Book, error) {

	member, err := c.FindMember(memberID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(member.BorrowedBooks, func(b *objects.Book) bool {
		return b.Title == title
	})

	if idx < 0 {
		return nil, errors.NotBorrowedByMemberError.New(title, memberID)
	}

	book := member.BorrowedBooks[idx]
	book.IsAvailable = true
	member.BorrowedBooks = slices.Delete(member.BorrowedBooks, idx, idx+1)

	return book, nil
}

func (c *Catalog) BorrowedBooks(memberID int) ([]*objects.Book, error) {

	member, err := c.FindMember(memberID)
	if err != nil {
		return nil, err
	}

	if len(member.BorrowedBooks) == 0 {
		return nil, errors.NoBooksBorrowedError.New(memberID)
	}

	return slices.Clone(member.BorrowedBooks), nil
}
