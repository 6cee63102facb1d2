package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookshare/bookshare-service/internal/model"
)

func (h *Handler) CreateReview(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.BookUid = c.Param("bookUid")
	req.ReviewerUid = uid
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.svc.Reviews.CreateReview(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) ListReviews(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty bookUid")
	}

	reviews, err := h.svc.Reviews.ListReviews(c.Request().Context(), bookUid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) GetOwnerRating(c echo.Context) error {
	userUid := c.Param("userUid")
	if userUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty userUid")
	}

	rating, err := h.svc.Reviews.GetOwnerRating(c.Request().Context(), userUid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, rating)
}
