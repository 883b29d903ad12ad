package catalog

import (
	"github.com/supakorn-kn/go-library/objects"
)

func (c *Catalog) Record() objects.CatalogRecord {

	record := objects.CatalogRecord{
		Books:   make([]objects.BookRecord, 0, len(c.books)),
		Members: make([]objects.MemberRecord, 0, len(c.members)),
	}

	for _, book := range c.books {
		record.Books = append(record.Books, book.Record())
	}

	for _, member := range c.members {
		record.Members = append(record.Members, member.Record())
	}

	return record
}

// FromRecord rebuilds a catalog from stored data. Borrowed books are resolved to
// the catalog's book with the same title and availability is derived from the
// borrowed lists. Duplicated titles, member IDs and books claimed twice keep
// their first occurrence.
func FromRecord(record objects.CatalogRecord) *Catalog {

	c := New()

	for _, bookRecord := range record.Books {
		if _, ok := c.bookIndex[bookRecord.Title]; ok {
			continue
		}

		c.appendBook(&objects.Book{Title: bookRecord.Title, Author: bookRecord.Author})
	}

	held := map[*objects.Book]bool{}
	for _, memberRecord := range record.Members {
		if _, ok := c.memberIndex[memberRecord.MemberID]; ok {
			continue
		}

		member := objects.NewMember(memberRecord.Name, memberRecord.MemberID)
		for _, borrowed := range memberRecord.BorrowedBooks {

			book, ok := c.bookIndex[borrowed.Title]
			if !ok {
				book = &objects.Book{Title: borrowed.Title, Author: borrowed.Author}
				c.appendBook(book)
			}

			if held[book] {
				continue
			}

			held[book] = true
			member.BorrowedBooks = append(member.BorrowedBooks, book)
		}

		c.appendMember(member)
	}

	for _, book := range c.books {
		book.IsAvailable = !held[book]
	}

	return c
}
