package objects

type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	IsAvailable bool   `json:"is_available"`
}

func NewBook(title, author string) *Book {
	return &Book{Title: title, Author: author, IsAvailable: true}
}

func (b Book) Record() BookRecord {
	return BookRecord{Title: b.Title, Author: b.Author, IsAvailable: b.IsAvailable}
}
