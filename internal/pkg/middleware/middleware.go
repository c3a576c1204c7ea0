package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cricket-booking/internal/module/booking/repositories"
	"cricket-booking/internal/pkg/errors"
	"cricket-booking/internal/pkg/helpers"
	"cricket-booking/internal/pkg/monitoring"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	token := strings.TrimPrefix(auth, "Bearer ")

	resp, err := m.Repo.ValidateToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("email_user", resp.EmailUser)

	return ctx.Next()
}

// Trace opens an apm transaction per request and threads it through the
// user context so repository and usecase logs pick up the trace ids.
func (m *Middleware) Trace(ctx *fiber.Ctx) error {
	tx := apm.DefaultTracer.StartTransaction(ctx.Method()+" "+ctx.Route().Path, "request")
	defer tx.End()

	ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))

	err := ctx.Next()

	tx.Result = strconv.Itoa(ctx.Response().StatusCode())
	return err
}

func (m *Middleware) Metrics(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()

	monitoring.ObserveHTTPRequest(
		ctx.Method(),
		ctx.Route().Path,
		strconv.Itoa(ctx.Response().StatusCode()),
		time.Since(start),
	)
	return err
}
