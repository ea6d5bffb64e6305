package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartunibot/unibot-api/internal/dto"
	apierrors "github.com/smartunibot/unibot-api/internal/errors"
	"github.com/smartunibot/unibot-api/internal/middleware"
	"github.com/smartunibot/unibot-api/internal/services"
	"github.com/smartunibot/unibot-api/internal/sheets"
)

// ImportHandler runs the one-way spreadsheet sync. Rows come either from
// an uploaded xlsx file or, when none is attached, from the configured
// Google Sheet ranges.
type ImportHandler struct {
	importService *services.ImportService
	sheetsClient  *sheets.Client
	taskRange     string
	classRange    string
}

func NewImportHandler(importService *services.ImportService, sheetsClient *sheets.Client, taskRange, classRange string) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		sheetsClient:  sheetsClient,
		taskRange:     taskRange,
		classRange:    classRange,
	}
}

// ImportTasks inserts spreadsheet task rows not yet present. Existing
// rows are never overwritten, so re-running is safe.
func (h *ImportHandler) ImportTasks(c *gin.Context) {
	h.runImport(c, h.taskRange, h.importService.ImportTasks)
}

// ImportClasses inserts spreadsheet class rows not yet present.
func (h *ImportHandler) ImportClasses(c *gin.Context) {
	h.runImport(c, h.classRange, h.importService.ImportClasses)
}

type importFunc func(ctx context.Context, userID uint64, src services.RowSource) (services.ImportResult, error)

func (h *ImportHandler) runImport(c *gin.Context, sheetRange string, run importFunc) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	src, err := h.rowSource(c, sheetRange)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	if src == nil {
		apierrors.ServiceUnavailable(c, "La sincronización con Google Sheets no está configurada")
		return
	}

	result, err := run(c.Request.Context(), userID, src)
	if err != nil {
		apierrors.InternalError(c, "Error al sincronizar")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage(result, "Sincronización completada"))
}

// rowSource picks an uploaded workbook when one is attached, otherwise
// the hosted sheet. Returns nil when neither is available.
func (h *ImportHandler) rowSource(c *gin.Context, sheetRange string) (services.RowSource, error) {
	file, _, err := c.Request.FormFile("file")
	if err == nil {
		return sheets.NewXLSXSource(file, ""), nil
	}
	if h.sheetsClient != nil {
		return h.sheetsClient.Range(sheetRange), nil
	}
	return nil, nil
}
