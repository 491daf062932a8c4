package attendance

import (
	"errors"
	"net/http"
	"time"

	"go-hris-web/internal/page"
	"go-hris-web/internal/shared/apperror"
	"go-hris-web/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	templateName = "attendance.html"
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	ctrl   *Controller
	logger *zap.Logger
}

func NewHandler(ctrl *Controller, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{ctrl: ctrl, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func queryFrom(c *gin.Context) Query {
	return Query{
		Selected: c.Query("employee"),
		Date:     c.Query("date"),
	}
}

func (h *Handler) Page(c *gin.Context) {
	sessionID := c.GetString("session_id")
	h.logger.Debug("http attendance page", zap.String("session_id", sessionID))

	view := h.ctrl.Load(c.Request.Context(), sessionID, queryFrom(c))
	c.HTML(http.StatusOK, templateName, view)
}

func (h *Handler) Mark(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.GetString("session_id")
	q := queryFrom(c)
	form := MarkAttendanceForm{
		EmployeeID: c.PostForm("employee_id"),
		Date:       c.PostForm("date"),
		Status:     Status(c.PostForm("status")),
	}
	h.logger.Debug("http mark attendance",
		zap.String("session_id", sessionID),
		zap.String("employee_id", form.EmployeeID),
	)

	view, err := h.ctrl.Mark(ctx, sessionID, q, form)
	if errors.Is(err, page.ErrViewClosed) {
		c.Abort()
		return
	}

	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		view = h.ctrl.Load(ctx, sessionID, q)
		if !view.Loading() {
			view.Form = form
			view.FieldErrors = verr.Fields
		}
		c.HTML(http.StatusUnprocessableEntity, templateName, view)
		return
	}

	status := http.StatusOK
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("attendance request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
		status = httpErr.Status
	}
	c.HTML(status, templateName, view)
}

func (h *Handler) Export(c *gin.Context) {
	buf, err := h.ctrl.Export(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	filename := "attendance-" + time.Now().UTC().Format(DateLayout) + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.ctrl.Summary(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}
