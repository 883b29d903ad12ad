package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/go-library/objects"
)

type RecordTestSuite struct {
	suite.Suite
}

func (s *RecordTestSuite) TestRoundTrip() {

	original := New()
	for _, book := range [][2]string{{"Dune", "Herbert"}, {"Emma", "Austen"}, {"Ulysses", "Joyce"}} {
		_, err := original.AddBook(book[0], book[1])
		s.Require().NoError(err)
	}

	_, err := original.AddMember("Alice", 1001)
	s.Require().NoError(err)
	_, err = original.AddMember("Bob", 1002)
	s.Require().NoError(err)

	_, err = original.IssueBook(1001, "Ulysses")
	s.Require().NoError(err)
	_, err = original.IssueBook(1001, "Dune")
	s.Require().NoError(err)

	restored := FromRecord(original.Record())
	s.Require().Equal(original.Record(), restored.Record())
	s.Require().Equal(original.Summary(), restored.Summary())

	alice, err := restored.FindMember(1001)
	s.Require().NoError(err)

	ulysses, err := restored.FindBook("Ulysses")
	s.Require().NoError(err)
	s.Require().Same(ulysses, alice.BorrowedBooks[0], "Borrowed book must be the catalog's book")
}

func (s *RecordTestSuite) TestFromRecord() {

	s.Run("Should keep first occurrence of duplicated data", func() {

		record := objects.CatalogRecord{
			Books: []objects.BookRecord{
				{Title: "Dune", Author: "Herbert", IsAvailable: true},
				{Title: "Dune", Author: "Someone else", IsAvailable: true},
			},
			Members: []objects.MemberRecord{
				{Name: "Alice", MemberID: 1001},
				{Name: "Impostor", MemberID: 1001},
			},
		}

		c := FromRecord(record)
		s.Require().Len(c.Books(), 1)
		s.Require().Equal("Herbert", c.Books()[0].Author)
		s.Require().Len(c.Members(), 1)
		s.Require().Equal("Alice", c.Members()[0].Name)
	})

	s.Run("Should derive availability from borrowed books", func() {

		record := objects.CatalogRecord{
			Books: []objects.BookRecord{
				{Title: "Dune", Author: "Herbert", IsAvailable: true},
				{Title: "Emma", Author: "Austen", IsAvailable: false},
			},
			Members: []objects.MemberRecord{
				{Name: "Alice", MemberID: 1001, BorrowedBooks: []objects.BookRecord{{Title: "Dune", Author: "Herbert"}}},
			},
		}

		c := FromRecord(record)

		dune, err := c.FindBook("Dune")
		s.Require().NoError(err)
		s.Require().False(dune.IsAvailable)

		emma, err := c.FindBook("Emma")
		s.Require().NoError(err)
		s.Require().True(emma.IsAvailable)
	})

	s.Run("Should add borrowed book missing from book list", func() {

		record := objects.CatalogRecord{
			Members: []objects.MemberRecord{
				{Name: "Alice", MemberID: 1001, BorrowedBooks: []objects.BookRecord{{Title: "Dune", Author: "Herbert"}}},
			},
		}

		c := FromRecord(record)

		dune, err := c.FindBook("Dune")
		s.Require().NoError(err)
		s.Require().False(dune.IsAvailable)
		s.Require().Equal(1, c.Summary().IssuedCount)
	})

	s.Run("Should keep book with the first member when claimed twice", func() {

		borrowed := []objects.BookRecord{{Title: "Dune", Author: "Herbert"}}
		record := objects.CatalogRecord{
			Books: []objects.BookRecord{{Title: "Dune", Author: "Herbert"}},
			Members: []objects.MemberRecord{
				{Name: "Alice", MemberID: 1001, BorrowedBooks: borrowed},
				{Name: "Bob", MemberID: 1002, BorrowedBooks: borrowed},
			},
		}

		c := FromRecord(record)

		alice, err := c.FindMember(1001)
		s.Require().NoError(err)
		s.Require().Len(alice.BorrowedBooks, 1)

		bob, err := c.FindMember(1002)
		s.Require().NoError(err)
		s.Require().Empty(bob.BorrowedBooks)
	})

	s.Run("Should build empty catalog from empty record", func() {

		c := FromRecord(objects.CatalogRecord{})
		s.Require().Empty(c.Books())
		s.Require().Empty(c.Members())
	})
}

func TestRecord(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}
