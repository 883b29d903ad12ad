package objects

import (
	"strconv"
	"strings"

	"github.com/supakorn-kn/go-library/errors"
)

const (
	MinMemberID = 1000
	MaxMemberID = 9999

	// UnknownMemberID is assigned to stored members without member_id
	UnknownMemberID = 0
)

type Member struct {
	Name     string `json:"name"`
	MemberID int    `json:"member_id"`

	// BorrowedBooks holds the same pointers stored in the catalog, in borrow order
	BorrowedBooks []*Book `json:"borrowed_books"`
}

func NewMember(name string, memberID int) *Member {
	return &Member{Name: name, MemberID: memberID, BorrowedBooks: []*Book{}}
}

func (m Member) Record() MemberRecord {

	borrowed := make([]BookRecord, 0, len(m.BorrowedBooks))
	for _, book := range m.BorrowedBooks {
		borrowed = append(borrowed, book.Record())
	}

	return MemberRecord{Name: m.Name, MemberID: m.MemberID, BorrowedBooks: borrowed}
}

// ParseMemberID accepts exactly four digits within MinMemberID and MaxMemberID
func ParseMemberID(input string) (int, error) {

	value := strings.TrimSpace(input)
	if len(value) != 4 {
		return 0, errors.InvalidMemberIDFormatError.New(input)
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, errors.InvalidMemberIDFormatError.New(input)
		}
	}

	memberID, err := strconv.Atoi(value)
	if err != nil || memberID < MinMemberID || memberID > MaxMemberID {
		return 0, errors.InvalidMemberIDFormatError.New(input)
	}

	return memberID, nil
}
