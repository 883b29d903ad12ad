package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/objects"
)

type JSONFileStoreTestSuite struct {
	suite.Suite
	store *Store
}

func (s *JSONFileStoreTestSuite) SetupTest() {
	s.store = New(filepath.Join(s.T().TempDir(), "library_data.json"))
}

func (s *JSONFileStoreTestSuite) TestSaveAndLoad() {

	s.Run("Should load saved record properly", func() {

		dune := objects.BookRecord{Title: "Dune", Author: "Herbert", IsAvailable: false}
		record := objects.CatalogRecord{
			Books: []objects.BookRecord{dune, fakeBookRecord(), fakeBookRecord()},
			Members: []objects.MemberRecord{
				{Name: "Alice", MemberID: 1001, BorrowedBooks: []objects.BookRecord{dune}},
				{Name: gofakeit.Name(), MemberID: 1002, BorrowedBooks: []objects.BookRecord{}},
			},
		}

		s.Require().NoError(s.store.Save(context.Background(), record))

		actual, err := s.store.Load(context.Background())
		s.Require().NoError(err)
		s.Require().Equal(record, actual)
	})

	s.Run("Should overwrite previous file", func() {

		record := objects.CatalogRecord{Books: []objects.BookRecord{fakeBookRecord()}, Members: []objects.MemberRecord{}}
		s.Require().NoError(s.store.Save(context.Background(), record))

		actual, err := s.store.Load(context.Background())
		s.Require().NoError(err)
		s.Require().Equal(record, actual)

		entries, err := os.ReadDir(filepath.Dir(s.store.Path()))
		s.Require().NoError(err)
		s.Require().Len(entries, 1, "Temporary file should have been removed")
	})

	s.Run("Should write snake case keys", func() {

		b, err := os.ReadFile(s.store.Path())
		s.Require().NoError(err)
		s.Require().Contains(string(b), `"is_available"`)
	})
}

func (s *JSONFileStoreTestSuite) TestLoad() {

	s.Run("Should return empty record when file is not exist", func() {

		actual, err := s.store.Load(context.Background())
		s.Require().NoError(err)
		s.Require().Empty(actual.Books)
		s.Require().Empty(actual.Members)
	})

	s.Run("Should return empty record when file is blank", func() {

		s.writeFile("  \n")

		actual, err := s.store.Load(context.Background())
		s.Require().NoError(err)
		s.Require().Empty(actual.Books)
	})

	s.Run("Should throw error when file is corrupt", func() {

		for _, content := range []string{`{"books": [`, `[1, 2, 3]`, `{"books": "none"}`, `{"members": [{"member_id": "abc"}]}`} {
			s.writeFile(content)

			_, err := s.store.Load(context.Background())
			s.Require().True(errors.PersistenceReadCorruptError.IsEqual(err), content)
		}
	})

	s.Run("Should apply defaults to missing fields", func() {

		s.writeFile(`{"books": [{}], "members": [{}]}`)

		actual, err := s.store.Load(context.Background())
		s.Require().NoError(err)
		s.Require().Equal([]objects.BookRecord{{Title: objects.UnknownTitle, Author: objects.UnknownAuthor, IsAvailable: true}}, actual.Books)
		s.Require().Equal([]objects.MemberRecord{{Name: objects.UnknownMemberName, MemberID: objects.UnknownMemberID, BorrowedBooks: []objects.BookRecord{}}}, actual.Members)
	})

	s.Run("Should coerce non-array borrowed books to empty", func() {

		s.writeFile(`{"members": [
			{"name": "Alice", "member_id": 1001, "borrowed_books": "Dune"},
			{"name": "Bob", "member_id": 1002, "borrowed_books": {"title": "Dune"}},
			{"name": "Carol", "member_id": 1003, "borrowed_books": null}
		]}`)

		actual, err := s.store.Load(context.Background())
		s.Require().NoError(err)
		s.Require().Len(actual.Members, 3)

		for _, member := range actual.Members {
			s.Require().NotNil(member.BorrowedBooks)
			s.Require().Empty(member.BorrowedBooks, member.Name)
		}
	})
}

func (s *JSONFileStoreTestSuite) TestSaveFailed() {

	store := New(filepath.Join(s.T().TempDir(), "missing-dir", "library_data.json"))
	s.Require().Error(store.Save(context.Background(), objects.CatalogRecord{}))
}

func (s *JSONFileStoreTestSuite) writeFile(content string) {
	s.Require().NoError(os.WriteFile(s.store.Path(), []byte(content), 0o644))
}

func TestJSONFileStore(t *testing.T) {
	suite.Run(t, new(JSONFileStoreTestSuite))
}

func fakeBookRecord() objects.BookRecord {

	fakeInfo := gofakeit.Book()

	return objects.BookRecord{
		Title:       fakeInfo.Title + " " + gofakeit.UUID(),
		Author:      fakeInfo.Author,
		IsAvailable: gofakeit.Bool(),
	}
}
