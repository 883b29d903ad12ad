package apis

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supakorn-kn/go-library/errors"
	"github.com/supakorn-kn/go-library/models/catalog"
	"github.com/supakorn-kn/go-library/objects"
)

const (
	RequestIDHeader     = "X-Request-Id"
	requestIDContextKey = "request_id"
)

// RequestIDMiddleware keeps the incoming request ID or generates a new one
func RequestIDMiddleware() gin.HandlerFunc {

	return func(ctx *gin.Context) {

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(requestIDContextKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()
	}
}

func RegisterBooksAPI(api BooksAPI, group *gin.RouterGroup) {

	group.POST("", func(ctx *gin.Context) {

		book, err := api.Insert(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, CRUDResponse{Result: book})
	})

	group.GET("", func(ctx *gin.Context) {

		books, err := api.Read(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: books})
	})

	group.GET("search", func(ctx *gin.Context) {

		books, err := api.Search(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: books})
	})

	group.GET(":title", func(ctx *gin.Context) {

		book, err := api.ReadOne(ctx.Param("title"), ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: book})
	})
}

func RegisterMembersAPI(api MembersAPI, group *gin.RouterGroup) {

	group.POST("", func(ctx *gin.Context) {

		member, err := api.Insert(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, CRUDResponse{Result: member})
	})

	group.GET("", func(ctx *gin.Context) {

		members, err := api.Read(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: members})
	})

	group.GET(":id", withMemberID(func(memberID int, ctx *gin.Context) (any, error) {
		return api.ReadOne(memberID, ctx)
	}))

	group.GET(":id/books", withMemberID(func(memberID int, ctx *gin.Context) (any, error) {
		return api.BorrowedBooks(memberID, ctx)
	}))

	group.POST(":id/issue", withMemberID(func(memberID int, ctx *gin.Context) (any, error) {
		return api.Issue(memberID, ctx)
	}))

	group.POST(":id/return", withMemberID(func(memberID int, ctx *gin.Context) (any, error) {
		return api.Return(memberID, ctx)
	}))
}

func RegisterSummaryAPI(library *Library, group *gin.RouterGroup) {

	group.GET("", func(ctx *gin.Context) {

		var summary catalog.Summary
		_ = library.Read(func(c *catalog.Catalog) error {
			summary = c.Summary()
			return nil
		})

		ctx.JSON(http.StatusOK, CRUDResponse{Result: summary})
	})
}

func withMemberID(handle func(memberID int, ctx *gin.Context) (any, error)) gin.HandlerFunc {

	return func(ctx *gin.Context) {

		memberID, err := objects.ParseMemberID(ctx.Param("id"))
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		result, err := handle(memberID, ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: result})
	}
}

func writeErrorJSON(ctx *gin.Context, err error) {

	requestID := ctx.GetString(requestIDContextKey)

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		slog.Error("Request failed", "request_id", requestID, "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, CRUDResponse{Error: errors.UnknownError.New(err)})
		return
	}

	var statusCode int
	var errorResponse = CRUDResponse{Error: assertedError}

	switch assertedError.Code {
	case errors.MemberNotFoundErrorCode,
		errors.BookNotFoundErrorCode,
		errors.NoBooksBorrowedErrorCode,
		errors.NoMatchFoundErrorCode:
		statusCode = http.StatusNotFound

	case errors.BookUnavailableErrorCode,
		errors.NotBorrowedByMemberErrorCode,
		errors.DuplicatedBookTitleErrorCode,
		errors.DuplicatedMemberIDErrorCode:
		statusCode = http.StatusConflict

	case errors.PersistenceReadCorruptErrorCode,
		errors.PersistenceWriteFailedErrorCode:
		slog.Error("Request failed", "request_id", requestID, "path", ctx.FullPath(), "error", err)
		statusCode = http.StatusInternalServerError

	default:
		statusCode = http.StatusBadRequest
	}

	ctx.JSON(statusCode, errorResponse)
}
