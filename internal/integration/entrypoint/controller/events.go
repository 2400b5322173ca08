package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	syncusecase "github.com/homeplan/backend/internal/application/usecase/sync"
	"github.com/homeplan/backend/internal/integration/entrypoint/dto"
	"github.com/homeplan/backend/internal/integration/entrypoint/middleware"
)

// heartbeatInterval keeps idle SSE connections from being reaped by
// intermediaries.
const heartbeatInterval = 30 * time.Second

// EventsController streams planner snapshots over server-sent events.
type EventsController struct {
	subscribeUseCase *syncusecase.SubscribeUseCase
}

// NewEventsController creates a new events controller instance.
func NewEventsController(subscribeUseCase *syncusecase.SubscribeUseCase) *EventsController {
	return &EventsController{
		subscribeUseCase: subscribeUseCase,
	}
}

// Stream handles GET /events requests. Each event replaces the client's
// local state wholesale: the current snapshot arrives immediately, then a
// fresh one after every change, until the client disconnects.
func (c *EventsController) Stream(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	flusher, ok := ctx.Writer.(http.Flusher)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Streaming is not supported",
		})
		return
	}

	input := syncusecase.SubscribeInput{
		UserID: userID,
	}

	output, err := c.subscribeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to open snapshot stream",
		})
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")
	ctx.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Request.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := ctx.Writer.WriteString(": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case snapshot, open := <-output.Snapshots:
			if !open {
				return
			}
			payload, err := json.Marshal(dto.ToSnapshotEvent(snapshot))
			if err != nil {
				slog.Warn("Failed to encode snapshot event", "user_id", userID, "error", err)
				continue
			}
			if _, err := ctx.Writer.WriteString("event: snapshot\ndata: " + string(payload) + "\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
