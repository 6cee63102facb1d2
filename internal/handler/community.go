package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookshare/bookshare-service/internal/model"
)

func (h *Handler) CreateCommunity(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	var req model.CreateCommunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.OwnerUid = uid
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	community, err := h.svc.Communities.CreateCommunity(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, community)
}

func (h *Handler) ListCommunities(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	items, err := h.svc.Communities.ListCommunities(c.Request().Context(), uid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCommunity(c echo.Context) error {
	communityUid := c.Param("communityUid")
	if communityUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty communityUid")
	}

	community, err := h.svc.Communities.GetCommunity(c.Request().Context(), communityUid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, community)
}

func (h *Handler) ListMembers(c echo.Context) error {
	members, err := h.svc.Communities.ListMembers(c.Request().Context(), c.Param("communityUid"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) LeaveCommunity(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	if err := h.svc.Communities.LeaveCommunity(c.Request().Context(), c.Param("communityUid"), uid); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Invite(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	var req model.InviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invite, err := h.svc.Communities.Invite(c.Request().Context(), c.Param("communityUid"), uid, req.InviteeEmail)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, invite)
}

func (h *Handler) AcceptInvitation(c echo.Context) error {
	uid, err := actorUid(c)
	if err != nil {
		return err
	}
	community, err := h.svc.Communities.AcceptInvitation(c.Request().Context(), c.Param("token"), uid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, community)
}

func (h *Handler) DeclineInvitation(c echo.Context) error {
	if _, err := actorUid(c); err != nil {
		return err
	}
	if err := h.svc.Communities.DeclineInvitation(c.Request().Context(), c.Param("token")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
