package apis

import (
	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/objects"
)

type CRUDResponse struct {
	Result any              `json:"result,omitempty"`
	Error  errors.BaseError `json:"error,omitempty"`
}

type BooksAPI interface {
	Insert(ctx *gin.Context) (*objects.BookRecord, error)
	ReadOne(title string, ctx *gin.Context) (*objects.BookRecord, error)
	Read(ctx *gin.Context) ([]objects.BookRecord, error)
	Search(ctx *gin.Context) ([]objects.BookRecord, error)
}

type MembersAPI interface {
	Insert(ctx *gin.Context) (*objects.MemberRecord, error)
	ReadOne(memberID int, ctx *gin.Context) (*objects.MemberRecord, error)
	Read(ctx *gin.Context) ([]objects.MemberRecord, error)
	BorrowedBooks(memberID int, ctx *gin.Context) ([]objects.BookRecord, error)
	Issue(memberID int, ctx *gin.Context) (*objects.BookRecord, error)
	Return(memberID int, ctx *gin.Context) (*objects.BookRecord, error)
}

// LendingRequest is the body of issue and return requests
type LendingRequest struct {
	Title string `json:"title" binding:"required"`
}
