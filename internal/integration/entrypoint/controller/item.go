// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/usecase/item"
	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
	"github.com/homeplan/backend/internal/integration/entrypoint/dto"
	"github.com/homeplan/backend/internal/integration/entrypoint/middleware"
)

// ItemController handles item and candidate endpoints.
type ItemController struct {
	listUseCase            *item.ListItemsUseCase
	createUseCase          *item.CreateItemUseCase
	updateUseCase          *item.UpdateItemUseCase
	deleteUseCase          *item.DeleteItemUseCase
	addCandidateUseCase    *item.AddCandidateUseCase
	selectCandidateUseCase *item.SelectCandidateUseCase
	removeCandidateUseCase *item.RemoveCandidateUseCase
	markPurchasedUseCase   *item.MarkPurchasedUseCase
	dropUseCase            *item.DropItemUseCase
	restoreUseCase         *item.RestoreItemUseCase
}

// NewItemController creates a new item controller instance.
func NewItemController(
	listUseCase *item.ListItemsUseCase,
	createUseCase *item.CreateItemUseCase,
	updateUseCase *item.UpdateItemUseCase,
	deleteUseCase *item.DeleteItemUseCase,
	addCandidateUseCase *item.AddCandidateUseCase,
	selectCandidateUseCase *item.SelectCandidateUseCase,
	removeCandidateUseCase *item.RemoveCandidateUseCase,
	markPurchasedUseCase *item.MarkPurchasedUseCase,
	dropUseCase *item.DropItemUseCase,
	restoreUseCase *item.RestoreItemUseCase,
) *ItemController {
	return &ItemController{
		listUseCase:            listUseCase,
		createUseCase:          createUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		addCandidateUseCase:    addCandidateUseCase,
		selectCandidateUseCase: selectCandidateUseCase,
		removeCandidateUseCase: removeCandidateUseCase,
		markPurchasedUseCase:   markPurchasedUseCase,
		dropUseCase:            dropUseCase,
		restoreUseCase:         restoreUseCase,
	}
}

// List handles GET /items requests. Category, status, search and group_by
// query parameters refine the view.
func (c *ItemController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := item.ListItemsInput{
		UserID:          userID,
		Search:          ctx.Query("search"),
		GroupByCategory: ctx.Query("group_by") == "category",
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve items",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemListResponse(output.Items, output.Groups))
}

// Create handles POST /items requests.
func (c *ItemController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	input := item.CreateItemInput{
		UserID:   userID,
		Name:     req.Name,
		Category: entity.Category(req.Category),
		Notes:    req.Notes,
		Link:     req.Link,
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(output.Item))
}

// Update handles PATCH /items/:id requests.
func (c *ItemController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, ok := parseItemID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := item.UpdateItemInput{
		ItemID: itemID,
		UserID: userID,
		Name:   req.Name,
		Notes:  req.Notes,
		Link:   req.Link,
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// Delete handles DELETE /items/:id requests.
func (c *ItemController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, ok := parseItemID(ctx)
	if !ok {
		return
	}

	input := item.DeleteItemInput{
		ItemID: itemID,
		UserID: userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddCandidate handles POST /items/:id/candidates requests.
func (c *ItemController) AddCandidate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, ok := parseItemID(ctx)
	if !ok {
		return
	}

	var req dto.AddCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyCandidateName),
		})
		return
	}

	input := item.AddCandidateInput{
		ItemID: itemID,
		UserID: userID,
		Name:   req.Name,
		Price:  req.Price,
		Link:   req.Link,
	}

	output, err := c.addCandidateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(output.Item))
}

// SelectCandidate handles POST /items/:id/candidates/:candidateId/select requests.
func (c *ItemController) SelectCandidate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, ok := parseItemID(ctx)
	if !ok {
		return
	}
	candidateID, ok := parseCandidateID(ctx)
	if !ok {
		return
	}

	input := item.SelectCandidateInput{
		ItemID:      itemID,
		UserID:      userID,
		CandidateID: candidateID,
	}

	output, err := c.selectCandidateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// RemoveCandidate handles DELETE /items/:id/candidates/:candidateId requests.
func (c *ItemController) RemoveCandidate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, ok := parseItemID(ctx)
	if !ok {
		return
	}
	candidateID, ok := parseCandidateID(ctx)
	if !ok {
		return
	}

	input := item.RemoveCandidateInput{
		ItemID:      itemID,
		UserID:      userID,
		CandidateID: candidateID,
	}

	output, err := c.removeCandidateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// MarkPurchased handles POST /items/:id/purchase requests.
func (c *ItemController) MarkPurchased(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, ok := parseItemID(ctx)
	if !ok {
		return
	}

	// The body is optional; an empty body purchases at the selected price.
	var req dto.MarkPurchasedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := item.MarkPurchasedInput{
		ItemID:      itemID,
		UserID:      userID,
		FinalAmount: req.FinalAmount,
	}

	output, err := c.markPurchasedUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// Drop handles POST /items/:id/drop requests.
func (c *ItemController) Drop(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, ok := parseItemID(ctx)
	if !ok {
		return
	}

	input := item.DropItemInput{
		ItemID: itemID,
		UserID: userID,
	}

	output, err := c.dropUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// Restore handles POST /items/:id/restore requests.
func (c *ItemController) Restore(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	itemID, ok := parseItemID(ctx)
	if !ok {
		return
	}

	input := item.RestoreItemInput{
		ItemID: itemID,
		UserID: userID,
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// respondUnauthenticated writes the shared missing-user response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// parseItemID parses the :id path parameter, writing the error response on
// failure.
func parseItemID(ctx *gin.Context) (uuid.UUID, bool) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return uuid.Nil, false
	}
	return itemID, true
}

// parseCandidateID parses the :candidateId path parameter, writing the error
// response on failure.
func parseCandidateID(ctx *gin.Context) (uuid.UUID, bool) {
	candidateID, err := uuid.Parse(ctx.Param("candidateId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid candidate ID format",
		})
		return uuid.Nil, false
	}
	return candidateID, true
}

// handleItemError handles item errors and returns appropriate HTTP responses.
func (c *ItemController) handleItemError(ctx *gin.Context, err error) {
	var itemErr *domainerror.ItemError
	if errors.As(err, &itemErr) {
		statusCode := c.getStatusCodeForItemError(itemErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: itemErr.Message,
			Code:  string(itemErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForItemError maps item error codes to HTTP status codes.
func (c *ItemController) getStatusCodeForItemError(code domainerror.ItemErrorCode) int {
	switch code {
	case domainerror.ErrCodeItemNotFound, domainerror.ErrCodeCandidateNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedItemAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeItemPurchased,
		domainerror.ErrCodeItemNotDecided,
		domainerror.ErrCodeItemNotDropped:
		return http.StatusConflict
	case domainerror.ErrCodeEmptyItemName,
		domainerror.ErrCodeEmptyCandidateName,
		domainerror.ErrCodeInvalidPriority,
		domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeMissingItemFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
