package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	portssvc "github.com/adithyasudev/entry-voucher-forge/internal/core/ports/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/dto"
	"github.com/adithyasudev/entry-voucher-forge/internal/middleware"
	"github.com/adithyasudev/entry-voucher-forge/internal/printing"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests against the voucher being edited.
type voucherHandler struct {
	store       portssvc.RecordStoreSvcFacade
	companyName string
	now         func() time.Time
}

func newVoucherHandler(store portssvc.RecordStoreSvcFacade, companyName string) *voucherHandler {
	return &voucherHandler{
		store:       store,
		companyName: companyName,
		now:         time.Now,
	}
}

// registerVoucherRoutes registers routes related to the voucher record.
// submitGuards run in front of the submit route only.
func registerVoucherRoutes(rg *gin.RouterGroup, store portssvc.RecordStoreSvcFacade, companyName string, submitGuards ...gin.HandlerFunc) {
	h := newVoucherHandler(store, companyName)

	voucher := rg.Group("/voucher")
	{
		voucher.GET("", h.getSnapshot)
		voucher.PUT("", h.loadRecord)
		voucher.PATCH("/header", h.updateHeader)
		voucher.POST("/details", h.addDetailRow)
		voucher.PATCH("/details/:index", h.updateDetail)
		voucher.DELETE("/details/:index", h.removeDetailRow)
		voucher.POST("/reset", h.resetRecord)
		voucher.POST("/sample", h.loadSample)
		voucher.POST("/validate", h.validate)
		voucher.POST("/submit", append(submitGuards, h.submit)...)
		voucher.GET("/print", h.printVoucher)
	}
}

func rowIndexParam(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("index"))
}

// getSnapshot godoc
// @Summary Get the voucher being edited
// @Description Returns header, detail rows, item lookup table, loading flag, last error and last save acknowledgment
// @Tags voucher
// @Produce json
// @Success 200 {object} domain.StoreSnapshot
// @Router /voucher [get]
func (h *voucherHandler) getSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// updateHeader godoc
// @Summary Update header fields
// @Description Merges the given header fields; the account amount is derived and cannot be set
// @Tags voucher
// @Accept json
// @Produce json
// @Param header body dto.UpdateHeaderRequest true "Header fields to change"
// @Success 200 {object} domain.StoreSnapshot
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /voucher/header [patch]
func (h *voucherHandler) updateHeader(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	h.store.UpdateHeaderFields(req.ToHeaderPatch())
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// updateDetail godoc
// @Summary Update one field of a detail row
// @Description Sets item_code, description, qty or rate on the row at the zero-based index. Amount and account total are recomputed. Out-of-range indices are ignored.
// @Tags voucher
// @Accept json
// @Produce json
// @Param index path int true "Zero-based row index"
// @Param update body dto.UpdateDetailRequest true "Field and value"
// @Success 200 {object} domain.StoreSnapshot
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /voucher/details/{index} [patch]
func (h *voucherHandler) updateDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, err := rowIndexParam(c)
	if err != nil {
		badRequest(c, logger, "Invalid row index", err)
		return
	}

	var req dto.UpdateDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	value, err := req.ValueText()
	if err != nil {
		badRequest(c, logger, "Invalid value", err)
		return
	}

	h.store.UpdateDetailField(index, domain.DetailField(req.Field), value)
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// addDetailRow godoc
// @Summary Append an empty detail row
// @Tags voucher
// @Produce json
// @Success 200 {object} domain.StoreSnapshot
// @Router /voucher/details [post]
func (h *voucherHandler) addDetailRow(c *gin.Context) {
	h.store.AddDetailRow()
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// removeDetailRow godoc
// @Summary Remove a detail row
// @Description Removes the row at the zero-based index and renumbers the rest. The last remaining row is never removed.
// @Tags voucher
// @Produce json
// @Param index path int true "Zero-based row index"
// @Success 200 {object} domain.StoreSnapshot
// @Failure 400 {object} dto.ErrorResponse "Invalid row index"
// @Router /voucher/details/{index} [delete]
func (h *voucherHandler) removeDetailRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, err := rowIndexParam(c)
	if err != nil {
		badRequest(c, logger, "Invalid row index", err)
		return
	}

	h.store.RemoveDetailRow(index)
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// resetRecord godoc
// @Summary Start a new voucher
// @Description Replaces the record with an empty one dated today and clears the last error
// @Tags voucher
// @Produce json
// @Success 200 {object} domain.StoreSnapshot
// @Router /voucher/reset [post]
func (h *voucherHandler) resetRecord(c *gin.Context) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Resetting voucher")
	h.store.ResetRecord()
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// loadRecord godoc
// @Summary Replace the voucher being edited
// @Description Loads a header and rows. Row amounts, serial numbers and the account amount are recomputed. Quantities keep at most 3 decimal places and rates 4.
// @Tags voucher
// @Accept json
// @Produce json
// @Param record body dto.LoadRecordRequest true "Voucher to load"
// @Success 200 {object} domain.StoreSnapshot
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /voucher [put]
func (h *voucherHandler) loadRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoadRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	header, details, err := req.ToDomain()
	if err != nil {
		badRequest(c, logger, "Invalid voucher rows", err)
		return
	}

	logger.Info("Loading voucher", slog.Int64("vr_no", header.VoucherNumber), slog.Int("rows", len(details)))
	h.store.LoadRecord(header, details)
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// loadSample godoc
// @Summary Load the demo voucher
// @Tags voucher
// @Produce json
// @Success 200 {object} domain.StoreSnapshot
// @Router /voucher/sample [post]
func (h *voucherHandler) loadSample(c *gin.Context) {
	h.store.LoadSample()
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// validate godoc
// @Summary Run the pre-submit checks
// @Tags voucher
// @Produce json
// @Success 200 {object} dto.ValidationResponse "Voucher is valid"
// @Failure 400 {object} dto.ValidationResponse "First validation failure"
// @Router /voucher/validate [post]
func (h *voucherHandler) validate(c *gin.Context) {
	err := h.store.Validate()
	if err == nil {
		c.JSON(http.StatusOK, dto.ValidationResponse{Valid: true})
		return
	}

	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		respondWithError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to validate voucher")
		return
	}
	c.JSON(http.StatusBadRequest, dto.ValidationResponse{Field: verr.Field, Row: verr.Row, Message: verr.Message})
}

// submit godoc
// @Summary Save the voucher
// @Description Validates the voucher and sends it to the configured backend. Only one submission may be in flight.
// @Tags voucher
// @Produce json
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Submission already in flight"
// @Failure 429 {object} dto.ErrorResponse "Too many submissions"
// @Failure 502 {object} dto.ErrorResponse "Backend rejected or unreachable"
// @Router /voucher/submit [post]
func (h *voucherHandler) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ack, err := h.store.Submit(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to save sales data")
		return
	}
	c.JSON(http.StatusOK, dto.SubmitResponse{Acknowledgment: ack, Snapshot: h.store.Snapshot()})
}

// printVoucher godoc
// @Summary Printable voucher
// @Description Renders the voucher as an A4 print page. Refused unless the voucher was saved or passes validation.
// @Tags voucher
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 409 {object} dto.ErrorResponse "Voucher not printable"
// @Router /voucher/print [get]
func (h *voucherHandler) printVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rec, err := h.store.PrintableRecord()
	if err != nil {
		respondWithError(c, logger, err, "Failed to print voucher")
		return
	}
	c.HTML(http.StatusOK, printing.HTMLTemplateName, printing.NewVoucherView(rec, h.companyName, h.now()))
}
