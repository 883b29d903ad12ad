package jsonfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/objects"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileDocument struct {
	Books   []objects.BookDocument `json:"books"`
	Members []memberDocument       `json:"members"`
}

type memberDocument struct {
	Name          *string             `json:"name"`
	MemberID      *int                `json:"member_id"`
	BorrowedBooks jsoniter.RawMessage `json:"borrowed_books"`
}

// Store keeps the catalog as a single JSON file
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) (objects.CatalogRecord, error) {

	if err := ctx.Err(); err != nil {
		return objects.CatalogRecord{}, err
	}

	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return emptyRecord(), nil
	}

	if err != nil {
		return objects.CatalogRecord{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return emptyRecord(), nil
	}

	return decode(b)
}

// Save replaces the file through a temporary file in the same directory
func (s *Store) Save(ctx context.Context, record objects.CatalogRecord) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}

func decode(b []byte) (objects.CatalogRecord, error) {

	var doc fileDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return objects.CatalogRecord{}, errors.PersistenceReadCorruptError.New(err)
	}

	record := emptyRecord()
	record.Books = objects.BookRecordsFrom(doc.Books)

	for _, memberDoc := range doc.Members {

		borrowed, err := decodeBorrowedBooks(memberDoc.BorrowedBooks)
		if err != nil {
			return objects.CatalogRecord{}, errors.PersistenceReadCorruptError.New(err)
		}

		record.Members = append(record.Members, objects.NewMemberRecord(memberDoc.Name, memberDoc.MemberID, borrowed))
	}

	return record, nil
}

// decodeBorrowedBooks coerces anything but a JSON array to an empty list
func decodeBorrowedBooks(raw jsoniter.RawMessage) ([]objects.BookRecord, error) {

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []objects.BookRecord{}, nil
	}

	var docs []objects.BookDocument
	if err := json.Unmarshal(trimmed, &docs); err != nil {
		return nil, err
	}

	return objects.BookRecordsFrom(docs), nil
}

func emptyRecord() objects.CatalogRecord {
	return objects.CatalogRecord{Books: []objects.BookRecord{}, Members: []objects.MemberRecord{}}
}
