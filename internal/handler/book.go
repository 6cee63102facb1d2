package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookshare/bookshare-service/internal/model"
)

func (h *Handler) CreateBook(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.OwnerUid = uid
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.svc.Books.CreateBook(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	onlyAvailable, _ := strconv.ParseBool(c.QueryParam("onlyAvailable"))

	filter := model.BookFilter{
		Genre:         c.QueryParam("genre"),
		OwnerUid:      c.QueryParam("ownerUid"),
		CommunityUid:  c.QueryParam("communityUid"),
		OnlyAvailable: onlyAvailable,
		Page:          page,
		Size:          size,
	}

	list, err := h.svc.Books.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty bookUid")
	}

	book, err := h.svc.Books.GetBook(c.Request().Context(), bookUid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	bookUid := c.Param("bookUid")
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.svc.Books.UpdateBook(c.Request().Context(), bookUid, uid, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	if err := h.svc.Books.DeleteBook(c.Request().Context(), c.Param("bookUid"), uid); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SearchMetadata(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty query")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	books, err := h.svc.Metadata.SearchMetadata(c.Request().Context(), query, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}
