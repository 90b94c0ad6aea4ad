// Package handler はworksrefフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"admin_backend/internal/api"
	"admin_backend/internal/feature/worksref/domain/entity"
)

// WorksrefUsecase は作業参照データ操作のユースケースを定義します。
type WorksrefUsecase interface {
	ListPhases(ctx context.Context) ([]entity.Phase, error)
	ListWorks(ctx context.Context) ([]entity.WorkRow, error)
	ListWorkMaterials(ctx context.Context, workID string) ([]entity.MaterialRow, error)
	CreateWork(ctx context.Context, work *entity.Work) error
}

// WorksrefHandler は作業参照データのHTTPリクエストを処理します。
type WorksrefHandler struct {
	works WorksrefUsecase
}

// NewWorksrefHandler はWorksrefHandlerの新しいインスタンスを生成します。
func NewWorksrefHandler(works WorksrefUsecase) *WorksrefHandler {
	return &WorksrefHandler{works: works}
}

// ListPhases は GET /api/phases を処理します。
func (h *WorksrefHandler) ListPhases(c *gin.Context) {
	rows, err := h.works.ListPhases(c.Request.Context())
	if err != nil {
		slog.Error("failed to list phases", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch phases"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListWorks は GET /api/works を処理します。
func (h *WorksrefHandler) ListWorks(c *gin.Context) {
	rows, err := h.works.ListWorks(c.Request.Context())
	if err != nil {
		slog.Error("failed to list works", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch works"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListWorkMaterials は GET /api/works/:workId/materials を処理します。
func (h *WorksrefHandler) ListWorkMaterials(c *gin.Context) {
	workID := c.Param("workId")
	rows, err := h.works.ListWorkMaterials(c.Request.Context(), workID)
	if err != nil {
		slog.Error("failed to list work materials", "error", err, "work_id", workID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch materials"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateWork は POST /api/works を処理します。
func (h *WorksrefHandler) CreateWork(c *gin.Context) {
	var work entity.Work
	if err := c.ShouldBindJSON(&work); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.works.CreateWork(c.Request.Context(), &work); err != nil {
		slog.Error("failed to create work", "error", err, "work_id", work.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create work"})
		return
	}
	c.JSON(http.StatusCreated, work)
}
