package errors

const (
	MemberNotFoundErrorCode = 300_001 + iota
	BookNotFoundErrorCode
	BookUnavailableErrorCode
	NotBorrowedByMemberErrorCode
	NoBooksBorrowedErrorCode
	NoMatchFoundErrorCode
	DuplicatedBookTitleErrorCode
	DuplicatedMemberIDErrorCode
	InvalidMemberIDFormatErrorCode
)

var MemberNotFoundError = new(MemberNotFoundErrorCode, "MemberNotFound", "Member with ID %d is not found")

var BookNotFoundError = new(BookNotFoundErrorCode, "BookNotFound", "Book '%s' is not found")

// BookUnavailableError indicates the book is currently issued to a member
var BookUnavailableError = new(BookUnavailableErrorCode, "BookUnavailable", "'%s' is currently unavailable")

// NotBorrowedByMemberError indicates member returns a book which is not in member's borrowed list
var NotBorrowedByMemberError = new(NotBorrowedByMemberErrorCode, "NotBorrowedByMember", "'%s' was not borrowed by member %d")

var NoBooksBorrowedError = new(NoBooksBorrowedErrorCode, "NoBooksBorrowed", "No book borrowed by member %d")

var NoMatchFoundError = new(NoMatchFoundErrorCode, "NoMatchFound", "No books found matching '%s'")

// DuplicatedBookTitleError indicates user adds a book using title that already in catalog
var DuplicatedBookTitleError = new(DuplicatedBookTitleErrorCode, "DuplicatedBookTitle", "Book title '%s' is already used")

// DuplicatedMemberIDError indicates user registers member using member ID that already in used
var DuplicatedMemberIDError = new(DuplicatedMemberIDErrorCode, "DuplicatedMemberID", "Member ID %d is already used")

// InvalidMemberIDFormatError indicates member ID input is not a 4-digit number
var InvalidMemberIDFormatError = new(InvalidMemberIDFormatErrorCode, "InvalidMemberIDFormat", "Member ID '%s' must be a 4-digit number (1000-9999)")
