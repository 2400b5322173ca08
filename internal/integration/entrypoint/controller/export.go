package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homeplan/backend/internal/application/usecase/export"
	"github.com/homeplan/backend/internal/domain/entity"
	"github.com/homeplan/backend/internal/integration/entrypoint/dto"
	"github.com/homeplan/backend/internal/integration/entrypoint/middleware"
)

// ExportController handles export endpoints.
type ExportController struct {
	csvUseCase *export.ExportCSVUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(csvUseCase *export.ExportCSVUseCase) *ExportController {
	return &ExportController{
		csvUseCase: csvUseCase,
	}
}

// CSV handles GET /export/csv requests. The same filters as the item list
// apply, so the download matches the visible view.
func (c *ExportController) CSV(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := export.ExportCSVInput{
		UserID: userID,
		Search: ctx.Query("search"),
	}

	if raw := ctx.Query("category"); raw != "" {
		category := entity.Category(raw)
		if !entity.IsValidCategory(category) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category filter",
			})
			return
		}
		input.Category = &category
	}

	if raw := ctx.Query("status"); raw != "" {
		status := entity.ItemStatus(raw)
		if !entity.IsValidStatus(status) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid status filter",
			})
			return
		}
		input.Status = &status
	}

	output, err := c.csvUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export items",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", output.Content)
}
