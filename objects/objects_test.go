package objects

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/go-library/errors"
)

type ObjectsTestSuite struct {
	suite.Suite
}

func (s *ObjectsTestSuite) TestParseMemberID() {

	s.Run("Should parse 4-digit member ID properly", func() {

		for input, expected := range map[string]int{"1000": 1000, "9999": 9999, " 1001 ": 1001} {
			actual, err := ParseMemberID(input)
			s.Require().NoError(err, input)
			s.Require().Equal(expected, actual)
		}
	})

	s.Run("Should throw error when member ID is not a 4-digit number", func() {

		for _, input := range []string{"", "999", "0999", "10000", "12a4", "-100", "+123", "abcd"} {
			_, err := ParseMemberID(input)
			s.Require().True(errors.InvalidMemberIDFormatError.IsEqual(err), input)
		}
	})
}

func (s *ObjectsTestSuite) TestBookDocument() {

	s.Run("Should apply defaults to missing fields", func() {

		s.Require().Equal(BookRecord{Title: UnknownTitle, Author: UnknownAuthor, IsAvailable: true}, BookDocument{}.Record())
	})

	s.Run("Should keep given fields", func() {

		title := gofakeit.BookTitle()
		available := false

		actual := BookDocument{Title: &title, IsAvailable: &available}.Record()
		s.Require().Equal(BookRecord{Title: title, Author: UnknownAuthor, IsAvailable: false}, actual)
	})
}

func (s *ObjectsTestSuite) TestNewMemberRecord() {

	s.Run("Should apply defaults to missing fields", func() {

		actual := NewMemberRecord(nil, nil, nil)
		s.Require().Equal(UnknownMemberName, actual.Name)
		s.Require().Equal(UnknownMemberID, actual.MemberID)
		s.Require().NotNil(actual.BorrowedBooks)
		s.Require().Empty(actual.BorrowedBooks)
	})

	s.Run("Should keep given fields", func() {

		name := gofakeit.Name()
		memberID := 1234
		borrowed := []BookRecord{{Title: "Dune", Author: "Herbert"}}

		actual := NewMemberRecord(&name, &memberID, borrowed)
		s.Require().Equal(MemberRecord{Name: name, MemberID: memberID, BorrowedBooks: borrowed}, actual)
	})
}

func (s *ObjectsTestSuite) TestMemberRecord() {

	book := NewBook("Dune", "Herbert")
	book.IsAvailable = false

	member := NewMember("Alice", 1001)
	member.BorrowedBooks = append(member.BorrowedBooks, book)

	expected := MemberRecord{
		Name:          "Alice",
		MemberID:      1001,
		BorrowedBooks: []BookRecord{{Title: "Dune", Author: "Herbert", IsAvailable: false}},
	}
	s.Require().Equal(expected, member.Record())
}

func TestObjects(t *testing.T) {
	suite.Run(t, new(ObjectsTestSuite))
}
