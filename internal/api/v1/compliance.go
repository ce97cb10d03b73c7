package v1

import (
	"io"
	"net/http"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/service"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps compliance document uploads at 10 MiB
const maxUploadBytes = 10 << 20

type ComplianceHandler struct {
	service service.ComplianceService
	logger  *logger.Logger
}

func NewComplianceHandler(service service.ComplianceService, logger *logger.Logger) *ComplianceHandler {
	return &ComplianceHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a compliance document
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param document body dto.CreateComplianceDocumentRequest true "Compliance document"
// @Success 201 {object} dto.ComplianceDocumentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /compliance [post]
func (h *ComplianceHandler) CreateDocument(c *gin.Context) {
	var req dto.CreateComplianceDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateDocument(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a compliance document
// @Tags Compliance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} dto.ComplianceDocumentResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /compliance/{id} [get]
func (h *ComplianceHandler) GetDocument(c *gin.Context) {
	resp, err := h.service.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List compliance documents
// @Tags Compliance
// @Produce json
// @Security BearerAuth
// @Param filter query types.ComplianceDocumentFilter false "Filter"
// @Success 200 {object} dto.ListComplianceDocumentsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /compliance [get]
func (h *ComplianceHandler) ListDocuments(c *gin.Context) {
	filter := types.NewComplianceDocumentFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListDocuments(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Expiring compliance documents
// @Description Valid documents that expire within 30 days, including those already past their expiry date
// @Tags Compliance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ComplianceDocumentResponse
// @Router /compliance/expiring [get]
func (h *ComplianceHandler) GetExpiringDocuments(c *gin.Context) {
	resp, err := h.service.GetExpiringDocuments(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a compliance document
// @Tags Compliance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /compliance/{id} [delete]
func (h *ComplianceHandler) DeleteDocument(c *gin.Context) {
	if err := h.service.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Compliance document deleted successfully"))
}

// @Summary Upload a compliance document file
// @Description Store a PDF, PNG or JPEG and return a URL to reference from a compliance document
// @Tags Compliance
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document file"
// @Success 201 {object} dto.UploadDocumentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /compliance/upload [post]
func (h *ComplianceHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("A file is required").
			Mark(ierr.ErrValidation))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.Error(ierr.NewError("file too large").
			WithHint("Files must be 10 MB or smaller").
			WithReportableDetails(map[string]interface{}{
				"size": fileHeader.Size,
			}).
			Mark(ierr.ErrValidation))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Unable to read the uploaded file").
			Mark(ierr.ErrValidation))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Unable to read the uploaded file").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UploadDocument(c.Request.Context(), data)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
