package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/models/catalog"
	"github.com/supakorn-kn/go-library/objects"
)

const (
	addBookChoice = iota + 1
	addMemberChoice
	issueBookChoice
	returnBookChoice
	listBooksChoice
	listMembersChoice
	borrowedBooksChoice
	searchChoice
	exitChoice
)

const menu = `[1] Add Book
[2] Add Member
[3] Issue Book
[4] Return Book
[5] View all Books
[6] View all Members
[7] View borrowed books
[8] Search Book
[9] Exit
`

// Saver persists the catalog after every change
type Saver interface {
	Save(ctx context.Context, c *catalog.Catalog) error
}

// Shell is the numbered-menu front end of a catalog. It owns the catalog for
// as long as Run is executing.
type Shell struct {
	catalog *catalog.Catalog
	saver   Saver
	scanner *bufio.Scanner
	out     io.Writer
}

func New(c *catalog.Catalog, saver Saver, in io.Reader, out io.Writer) *Shell {

	return &Shell{
		catalog: c,
		saver:   saver,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until user chooses exit, input ends or ctx is done
func (s *Shell) Run(ctx context.Context) error {

	for {

		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("%s\n", menu)

		input, ok := s.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || choice < addBookChoice || choice > exitChoice {
			s.printf("Invalid! Please enter valid choice\n\n")
			continue
		}

		if choice == exitChoice {
			s.printSummary()
			return nil
		}

		if !s.handle(ctx, choice) {
			return nil
		}
	}
}

// handle returns false when input ends in the middle of a prompt
func (s *Shell) handle(ctx context.Context, choice int) bool {

	switch choice {

	case addBookChoice:
		return s.addBook(ctx)

	case addMemberChoice:
		return s.addMember(ctx)

	case issueBookChoice:
		return s.issueBook(ctx)

	case returnBookChoice:
		return s.returnBook(ctx)

	case listBooksChoice:
		s.listBooks()

	case listMembersChoice:
		s.listMembers()

	case borrowedBooksChoice:
		return s.borrowedBooks()

	case searchChoice:
		return s.search()
	}

	return true
}

func (s *Shell) addBook(ctx context.Context) bool {

	title, ok := s.prompt("Enter the title of the book you want to add: ")
	if !ok {
		return false
	}

	author, ok := s.prompt("Enter author name of the book: ")
	if !ok {
		return false
	}

	book, err := s.catalog.AddBook(strings.TrimSpace(title), strings.TrimSpace(author))
	if err != nil {
		s.printError(err)
		return true
	}

	s.printf("Book '%s' by %s added to library!\n\n", book.Title, book.Author)
	s.save(ctx)

	return true
}

func (s *Shell) addMember(ctx context.Context) bool {

	name, ok := s.prompt("Enter the name to register in member list: ")
	if !ok {
		return false
	}

	memberID, ok := s.promptMemberID("Enter member ID (e.g. 100X): ")
	if !ok {
		return false
	}

	member, err := s.catalog.AddMember(strings.TrimSpace(name), memberID)
	if err != nil {
		s.printError(err)
		return true
	}

	s.printf("Member '%s' with ID %d registered!\n\n", member.Name, member.MemberID)
	s.save(ctx)

	return true
}

func (s *Shell) issueBook(ctx context.Context) bool {

	memberID, ok := s.promptMemberID("Enter member ID to issue book: ")
	if !ok {
		return false
	}

	title, ok := s.prompt("Enter title of the book to issue: ")
	if !ok {
		return false
	}

	book, err := s.catalog.IssueBook(memberID, strings.TrimSpace(title))
	if err != nil {
		s.printError(err)
		return true
	}

	member, _ := s.catalog.FindMember(memberID)
	s.printf("'%s' issued to %s\n\n", book.Title, member.Name)
	s.save(ctx)

	return true
}

func (s *Shell) returnBook(ctx context.Context) bool {

	memberID, ok := s.promptMemberID("Enter member ID to return book: ")
	if !ok {
		return false
	}

	title, ok := s.prompt("Enter title of the book to return: ")
	if !ok {
		return false
	}

	book, err := s.catalog.ReturnBook(memberID, strings.TrimSpace(title))
	if err != nil {
		s.printError(err)
		return true
	}

	member, _ := s.catalog.FindMember(memberID)
	s.printf("'%s' returned by %s and is available in library!\n\n", book.Title, member.Name)
	s.save(ctx)

	return true
}

func (s *Shell) listBooks() {

	books := s.catalog.Books()
	if len(books) == 0 {
		s.printf("No books in the library yet.\n\n")
		return
	}

	s.printf("All Books in Library:\n\n")
	for _, book := range books {
		s.printf("Book: %s\nAuthor: %s\n%s\n\n", book.Title, book.Author, availability(book, "Book is Available", "Book is Unavailable"))
	}

	s.printf("Total Books: %d\n\n", len(books))
}

func (s *Shell) listMembers() {

	members := s.catalog.Members()
	if len(members) == 0 {
		s.printf("No members registered yet.\n\n")
		return
	}

	s.printf("Library Members:\n\n")
	for _, member := range members {
		s.printf("Name: %s | Member ID: %d\n", member.Name, member.MemberID)
	}

	s.printf("\nTotal members: %d\n\n", len(members))
}

func (s *Shell) borrowedBooks() bool {

	memberID, ok := s.promptMemberID("Enter member ID to view all books borrowed by member: ")
	if !ok {
		return false
	}

	books, err := s.catalog.BorrowedBooks(memberID)
	if err != nil {
		s.printError(err)
		return true
	}

	member, _ := s.catalog.FindMember(memberID)
	s.printf("These are the books borrowed by %s\n\n", member.Name)
	for i, book := range books {
		s.printf("%d. %s by %s\n", i+1, book.Title, book.Author)
	}

	s.printf("\n")

	return true
}

func (s *Shell) search() bool {

	query, ok := s.prompt("Enter the book to search: ")
	if !ok {
		return false
	}

	query = strings.TrimSpace(query)

	books := s.catalog.SearchBooks(query)
	if len(books) == 0 {
		s.printError(errors.NoMatchFoundError.New(query))
		return true
	}

	for _, book := range books {
		s.printf("%s by %s - %s\n", book.Title, book.Author, availability(book, "Available", "Not available"))
	}

	s.printf("\n")

	return true
}

func (s *Shell) printSummary() {

	summary := s.catalog.Summary()

	s.printf("Library Summary:\n")
	s.printf("- Total Books: %d\n", summary.TotalBooks)
	s.printf("- Total Members: %d\n", summary.TotalMembers)
	s.printf("- Currently Issued Books: %d\n", summary.IssuedCount)
	s.printf("\nThank you for using our Library System!\n")
}

func (s *Shell) save(ctx context.Context) {

	if s.saver == nil {
		return
	}

	if err := s.saver.Save(ctx, s.catalog); err != nil {
		s.printError(err)
	}
}

func (s *Shell) prompt(label string) (string, bool) {

	s.printf("%s", label)

	if !s.scanner.Scan() {
		s.printf("\n")
		return "", false
	}

	return s.scanner.Text(), true
}

// promptMemberID asks again until a 4-digit member ID is given
func (s *Shell) promptMemberID(label string) (int, bool) {

	for {

		input, ok := s.prompt(label)
		if !ok {
			return 0, false
		}

		memberID, err := objects.ParseMemberID(input)
		if err == nil {
			return memberID, true
		}

		s.printError(err)
	}
}

func (s *Shell) printError(err error) {
	s.printf("Error: %s\n\n", err)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func availability(book *objects.Book, available, unavailable string) string {

	if book.IsAvailable {
		return available
	}

	return unavailable
}
