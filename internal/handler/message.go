package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookshare/bookshare-service/internal/model"
)

func (h *Handler) SendMessage(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	requestUid := c.Param("requestUid")
	var req model.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.svc.Messages.SendMessage(c.Request().Context(), requestUid, uid, req.Body)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) ListMessages(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	requestUid := c.Param("requestUid")
	if requestUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty requestUid")
	}

	msgs, err := h.svc.Messages.ListMessages(c.Request().Context(), requestUid, uid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}
