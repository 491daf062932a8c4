package employee

import (
	"context"
	"errors"
	"strings"

	employeeerrors "go-hris-web/internal/employee/errors"
	"go-hris-web/internal/events"
	"go-hris-web/internal/page"
	"go-hris-web/internal/shared/apperror"
	"go-hris-web/internal/shared/contextutil"

	"go.uber.org/zap"
)

const ViewName = "employees"

const (
	msgCreated = "Employee added successfully"
	msgDeleted = "Employee deleted successfully"
)

// Controller drives the employees page: load on entry, create and delete
// with a full refresh after every write.
type Controller struct {
	repo    Repository
	tracker page.Tracker
	events  EventPublisher
	logger  *zap.Logger
}

func NewController(repo Repository, tracker page.Tracker, publisher events.Publisher, logger ...*zap.Logger) *Controller {
	l := zap.L().Named("employee.controller")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.controller")
	}
	return &Controller{
		repo:    repo,
		tracker: tracker,
		events:  NewEventPublisher(publisher),
		logger:  l,
	}
}

func (c *Controller) Load(ctx context.Context, sessionID string) View {
	rid := contextutil.GetRequestID(ctx)
	c.logger.Debug("load employees page requested",
		zap.String("request_id", rid),
		zap.String("session_id", sessionID),
	)

	m := page.NewMachine(c.tracker, ViewName, sessionID, c.logger)
	if err := m.Begin(ctx); err != nil {
		view, _ := c.blocked(err, false)
		return view
	}

	dir := NewDirectory(c.repo)
	err := dir.Refresh(ctx)
	m.End(ctx, err)

	view := View{Phase: m.Phase(), Employees: dir.Employees()}
	if err != nil {
		c.logger.Error("load employees failed", zap.String("request_id", rid), zap.Error(err))
		view.Notice = page.Failure(employeeerrors.ErrLoadFailed.Message)
	}
	return view
}

// Create validates the form locally, then writes and refreshes. A validation
// failure returns *apperror.ValidationError without touching the API.
func (c *Controller) Create(ctx context.Context, sessionID string, form CreateEmployeeForm) (View, error) {
	rid := contextutil.GetRequestID(ctx)
	form.normalize()
	if err := apperror.ValidateWith(&form, createFormMessages); err != nil {
		c.logger.Debug("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return View{}, err
	}

	c.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", form.EmployeeID),
		zap.String("email", form.Email),
	)

	m := page.NewMachine(c.tracker, ViewName, sessionID, c.logger)
	if err := m.Begin(ctx); err != nil {
		return c.blocked(err, true)
	}

	dir := NewDirectory(c.repo)
	// The write is not cancelled if the user navigates away mid-flight.
	created, err := dir.Create(context.WithoutCancel(ctx), form.toEmployee())
	if ctx.Err() != nil {
		m.End(ctx, err)
		c.logger.Info("create employee finished after view closed",
			zap.String("request_id", rid),
			zap.String("employee_id", form.EmployeeID),
			zap.Error(err),
		)
		return View{}, page.ErrViewClosed
	}
	if err != nil && !errors.Is(err, ErrRefreshFailed) {
		c.relist(ctx, dir)
	}
	m.End(ctx, err)

	view := View{Phase: m.Phase(), Employees: dir.Employees()}
	switch {
	case err == nil:
		c.publishCreated(ctx, created)
		c.logger.Info("create employee success",
			zap.String("request_id", rid),
			zap.String("employee_id", created.EmployeeID),
		)
		view.Notice = page.Success(msgCreated)
		return view, nil

	case errors.Is(err, ErrRefreshFailed):
		c.publishCreated(ctx, created)
		c.logger.Error("refresh after create employee failed", zap.String("request_id", rid), zap.Error(err))
		view.Notice = page.Failure(employeeerrors.ErrLoadFailed.Message)
		return view, employeeerrors.ErrLoadFailed.WithCause(err)

	default:
		c.logger.Warn("create employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", form.EmployeeID),
			zap.Error(err),
		)
		view.Notice = page.Failure(noticeMessage(err, employeeerrors.ErrCreateFailed.Message))
		// the dialog stays open; its fields were cleared on submit
		view.DialogOpen = true
		return view, err
	}
}

// Delete removes an employee after the user confirmed. Failures are not split
// by status code. The employee's attendance history is left untouched.
func (c *Controller) Delete(ctx context.Context, sessionID, employeeID string) (View, error) {
	rid := contextutil.GetRequestID(ctx)
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return View{}, employeeerrors.ErrInvalidEmployeeID
	}

	c.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	m := page.NewMachine(c.tracker, ViewName, sessionID, c.logger)
	if err := m.Begin(ctx); err != nil {
		return c.blocked(err, true)
	}

	dir := NewDirectory(c.repo)
	err := dir.Delete(context.WithoutCancel(ctx), employeeID)
	if ctx.Err() != nil {
		m.End(ctx, err)
		c.logger.Info("delete employee finished after view closed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return View{}, page.ErrViewClosed
	}
	if err != nil && !errors.Is(err, ErrRefreshFailed) {
		c.relist(ctx, dir)
	}
	m.End(ctx, err)

	view := View{Phase: m.Phase(), Employees: dir.Employees()}
	switch {
	case err == nil:
		c.publishDeleted(ctx, employeeID)
		c.logger.Info("delete employee success", zap.String("request_id", rid), zap.String("employee_id", employeeID))
		view.Notice = page.Success(msgDeleted)
		return view, nil

	case errors.Is(err, ErrRefreshFailed):
		c.publishDeleted(ctx, employeeID)
		c.logger.Error("refresh after delete employee failed", zap.String("request_id", rid), zap.Error(err))
		view.Notice = page.Failure(employeeerrors.ErrLoadFailed.Message)
		return view, employeeerrors.ErrLoadFailed.WithCause(err)

	default:
		c.logger.Warn("delete employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		view.Notice = page.Failure(employeeerrors.ErrDeleteFailed.Message)
		return view, err
	}
}

// relist re-reads the list so a failed write can still render the page.
func (c *Controller) relist(ctx context.Context, dir *Directory) {
	if err := dir.Refresh(ctx); err != nil {
		c.logger.Warn("relist employees after failed write", zap.Error(err))
	}
}

// blocked builds the view for a page that could not enter Loading.
func (c *Controller) blocked(err error, mutation bool) (View, error) {
	if errors.Is(err, page.ErrBusy) {
		view := View{Phase: page.PhaseLoading}
		if mutation {
			view.Notice = page.Failure(page.ErrBusy.Message)
		}
		return view, err
	}
	return View{Phase: page.PhaseError, Notice: page.Failure(employeeerrors.ErrLoadFailed.Message)}, err
}

func (c *Controller) publishCreated(ctx context.Context, empl Employee) {
	if err := c.events.PublishEmployeeCreated(context.WithoutCancel(ctx), empl); err != nil {
		c.logger.Warn("publish employee created failed", zap.String("employee_id", empl.EmployeeID), zap.Error(err))
	}
}

func (c *Controller) publishDeleted(ctx context.Context, employeeID string) {
	if err := c.events.PublishEmployeeDeleted(context.WithoutCancel(ctx), employeeID); err != nil {
		c.logger.Warn("publish employee deleted failed", zap.String("employee_id", employeeID), zap.Error(err))
	}
}

func noticeMessage(err error, fallback string) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
