package employee

import (
	"errors"
	"net/http"

	"go-hris-web/internal/page"
	"go-hris-web/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const templateName = "employees.html"

type Handler struct {
	ctrl   *Controller
	logger *zap.Logger
}

func NewHandler(ctrl *Controller, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{ctrl: ctrl, logger: l}
}

func (h *Handler) render(c *gin.Context, status int, view View) {
	c.HTML(status, templateName, view)
}

func (h *Handler) Page(c *gin.Context) {
	sessionID := c.GetString("session_id")
	h.logger.Debug("http employees page", zap.String("session_id", sessionID))

	view := h.ctrl.Load(c.Request.Context(), sessionID)
	if !view.Loading() {
		view.DialogOpen = c.Query("dialog") == "add"
		view.ConfirmDelete = c.Query("confirm")
	}
	h.render(c, http.StatusOK, view)
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.GetString("session_id")
	form := CreateEmployeeForm{
		EmployeeID: c.PostForm("employee_id"),
		FullName:   c.PostForm("full_name"),
		Email:      c.PostForm("email"),
		Department: c.PostForm("department"),
	}
	h.logger.Debug("http create employee", zap.String("session_id", sessionID))

	view, err := h.ctrl.Create(ctx, sessionID, form)
	h.write(c, view, err, form)
}

func (h *Handler) Delete(c *gin.Context) {
	sessionID := c.GetString("session_id")
	employeeID := c.Param("employeeId")
	h.logger.Debug("http delete employee",
		zap.String("session_id", sessionID),
		zap.String("employee_id", employeeID),
	)

	view, err := h.ctrl.Delete(c.Request.Context(), sessionID, employeeID)
	h.write(c, view, err, CreateEmployeeForm{})
}

func (h *Handler) write(c *gin.Context, view View, err error, submitted CreateEmployeeForm) {
	if errors.Is(err, page.ErrViewClosed) {
		c.Abort()
		return
	}

	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		view = h.ctrl.Load(c.Request.Context(), c.GetString("session_id"))
		if !view.Loading() {
			view.DialogOpen = true
			view.Form = submitted
			view.FieldErrors = verr.Fields
		}
		h.render(c, http.StatusUnprocessableEntity, view)
		return
	}

	status := http.StatusOK
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("employee request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
		status = httpErr.Status
	}
	h.render(c, status, view)
}
