package members

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-library/apis"
	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/models/catalog"
	"github.com/supakorn-kn/go-library/objects"
)

type InsertRequest struct {
	Name     string `json:"name" binding:"required"`
	MemberID int    `json:"member_id" binding:"required"`
}

type MembersAPI struct {
	library *apis.Library
}

func NewMembersAPI(library *apis.Library) *MembersAPI {
	return &MembersAPI{library: library}
}

func (api MembersAPI) Insert(ctx *gin.Context) (*objects.MemberRecord, error) {

	var req InsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, errors.RequestBodyInvalidError.New(err)
	}

	if req.MemberID < objects.MinMemberID || req.MemberID > objects.MaxMemberID {
		return nil, errors.InvalidMemberIDFormatError.New(strconv.Itoa(req.MemberID))
	}

	var result objects.MemberRecord
	err := api.library.Write(ctx, func(c *catalog.Catalog) error {

		member, err := c.AddMember(req.Name, req.MemberID)
		if err != nil {
			return err
		}

		result = member.Record()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (api MembersAPI) ReadOne(memberID int, ctx *gin.Context) (*objects.MemberRecord, error) {

	var result objects.MemberRecord
	err := api.library.Read(func(c *catalog.Catalog) error {

		member, err := c.FindMember(memberID)
		if err != nil {
			return err
		}

		result = member.Record()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (api MembersAPI) Read(ctx *gin.Context) ([]objects.MemberRecord, error) {

	var result []objects.MemberRecord
	err := api.library.Read(func(c *catalog.Catalog) error {

		members := c.Members()
		result = make([]objects.MemberRecord, 0, len(members))
		for _, member := range members {
			result = append(result, member.Record())
		}

		return nil
	})

	return result, err
}

func (api MembersAPI) BorrowedBooks(memberID int, ctx *gin.Context) ([]objects.BookRecord, error) {

	var result []objects.BookRecord
	err := api.library.Read(func(c *catalog.Catalog) error {

		books, err := c.BorrowedBooks(memberID)
		if err != nil {
			return err
		}

		for _, book := range books {
			result = append(result, book.Record())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (api MembersAPI) Issue(memberID int, ctx *gin.Context) (*objects.BookRecord, error) {

	return api.lend(ctx, func(c *catalog.Catalog, title string) (*objects.Book, error) {
		return c.IssueBook(memberID, title)
	})
}

func (api MembersAPI) Return(memberID int, ctx *gin.Context) (*objects.BookRecord, error) {

	return api.lend(ctx, func(c *catalog.Catalog, title string) (*objects.Book, error) {
		return c.ReturnBook(memberID, title)
	})
}

func (api MembersAPI) lend(ctx *gin.Context, change func(c *catalog.Catalog, title string) (*objects.Book, error)) (*objects.BookRecord, error) {

	var req apis.LendingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, errors.RequestBodyInvalidError.New(err)
	}

	var result objects.BookRecord
	err := api.library.Write(ctx, func(c *catalog.Catalog) error {

		book, err := change(c, req.Title)
		if err != nil {
			return err
		}

		result = book.Record()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
