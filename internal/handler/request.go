package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookshare/bookshare-service/internal/model"
)

func (h *Handler) CreateRequest(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.BorrowerUid = uid
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	br, err := h.svc.Borrows.CreateRequest(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, br)
}

func (h *Handler) ListRequests(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	role := c.QueryParam("role")
	if role != "owner" {
		role = "borrower"
	}
	status := model.Status(c.QueryParam("status"))

	items, err := h.svc.Borrows.ListRequests(c.Request().Context(), uid, role, status)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetRequest(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	requestUid := c.Param("requestUid")
	if requestUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty requestUid")
	}

	details, err := h.svc.Borrows.GetRequestDetails(c.Request().Context(), requestUid, uid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handler) ApproveRequest(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	var req model.ApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	br, err := h.svc.Borrows.ApproveRequest(c.Request().Context(), c.Param("requestUid"), uid, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, br)
}

func (h *Handler) DenyRequest(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	br, err := h.svc.Borrows.DenyRequest(c.Request().Context(), c.Param("requestUid"), uid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, br)
}

func (h *Handler) ConfirmHandover(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	br, err := h.svc.Borrows.ConfirmHandover(c.Request().Context(), c.Param("requestUid"), uid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, br)
}

func (h *Handler) InitiateReturn(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	var req model.InitiateReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	br, err := h.svc.Borrows.InitiateReturn(c.Request().Context(), c.Param("requestUid"), uid, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, br)
}

func (h *Handler) ConfirmReturn(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	br, err := h.svc.Borrows.ConfirmReturn(c.Request().Context(), c.Param("requestUid"), uid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, br)
}
