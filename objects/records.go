package objects

const (
	UnknownTitle      = "Unknown Title"
	UnknownAuthor     = "Unknown Author"
	UnknownMemberName = "Unknown"
)

// BookRecord is the stored shape of Book
type BookRecord struct {
	Title       string `json:"title" bson:"title"`
	Author      string `json:"author" bson:"author"`
	IsAvailable bool   `json:"is_available" bson:"is_available"`
}

// MemberRecord is the stored shape of Member. Borrowed books are stored by value.
type MemberRecord struct {
	Name          string       `json:"name" bson:"name"`
	MemberID      int          `json:"member_id" bson:"member_id"`
	BorrowedBooks []BookRecord `json:"borrowed_books" bson:"borrowed_books"`
}

type CatalogRecord struct {
	Books   []BookRecord   `json:"books"`
	Members []MemberRecord `json:"members"`
}

// BookDocument is decoded from storage before defaults are applied to missing fields
type BookDocument struct {
	Title       *string `json:"title" bson:"title"`
	Author      *string `json:"author" bson:"author"`
	IsAvailable *bool   `json:"is_available" bson:"is_available"`
}

func (d BookDocument) Record() BookRecord {

	record := BookRecord{Title: UnknownTitle, Author: UnknownAuthor, IsAvailable: true}

	if d.Title != nil {
		record.Title = *d.Title
	}

	if d.Author != nil {
		record.Author = *d.Author
	}

	if d.IsAvailable != nil {
		record.IsAvailable = *d.IsAvailable
	}

	return record
}

func BookRecordsFrom(docs []BookDocument) []BookRecord {

	records := make([]BookRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.Record())
	}

	return records
}

// NewMemberRecord applies defaults to fields missing from storage
func NewMemberRecord(name *string, memberID *int, borrowedBooks []BookRecord) MemberRecord {

	record := MemberRecord{Name: UnknownMemberName, MemberID: UnknownMemberID, BorrowedBooks: []BookRecord{}}

	if name != nil {
		record.Name = *name
	}

	if memberID != nil {
		record.MemberID = *memberID
	}

	if borrowedBooks != nil {
		record.BorrowedBooks = borrowedBooks
	}

	return record
}
