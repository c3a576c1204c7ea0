package handler

import (
	"fmt"
	"strconv"

	"cricket-booking/internal/module/match/usecases"
	"cricket-booking/internal/pkg/errors"
	"cricket-booking/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type MatchHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

func (h *MatchHandler) ListMatches(ctx *fiber.Ctx) error {
	status := ctx.Query("status")

	resp, err := h.Usecase.ListMatches(ctx.UserContext(), status)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list matches: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list matches")
}

func (h *MatchHandler) GetMatch(ctx *fiber.Ctx) error {
	matchID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse match id"))
	}

	resp, err := h.Usecase.GetMatch(ctx.UserContext(), matchID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get match: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get match")
}

func (h *MatchHandler) ListTeams(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListTeams(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list teams: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list teams")
}

func (h *MatchHandler) ListStadiums(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListStadiums(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list stadiums: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list stadiums")
}
