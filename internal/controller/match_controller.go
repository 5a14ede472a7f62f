package controller

import (
	"bufio"
	"context"
	"encoding/json"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/dto"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/serverutils"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type matchController struct {
	matchService service.IMatchService
}

func NewMatchController(matchService service.IMatchService) IMatchController {
	return &matchController{
		matchService: matchService,
	}
}

func (c *matchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/match/v1")
	h.Post("chat", c.Chat)
}

// Chat runs the vibe matching pipeline for one query and streams the public
// messages back as newline-delimited JSON, one {type, data} object per line.
// The stream always terminates; failures arrive as an in-band error line.
func (c *matchController) Chat(ctx *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	query := req.Query

	ctx.Set(fiber.HeaderContentType, "application/x-ndjson")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")

	// The stream writer runs after this handler returns, so the run gets its
	// own context; a failed flush means the client disconnected and cancels
	// the pipeline.
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		enc := json.NewEncoder(w)
		for msg := range c.matchService.MatchStream(runCtx, query) {
			if err := enc.Encode(msg); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}
