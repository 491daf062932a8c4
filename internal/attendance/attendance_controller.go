package attendance

import (
	"bytes"
	"context"
	"errors"
	"time"

	attendanceerrors "go-hris-web/internal/attendance/errors"
	"go-hris-web/internal/employee"
	"go-hris-web/internal/events"
	"go-hris-web/internal/page"
	"go-hris-web/internal/shared/apperror"
	"go-hris-web/internal/shared/contextutil"

	"go.uber.org/zap"
)

const ViewName = "attendance"

const msgMarked = "Attendance marked successfully"

// Controller drives the attendance page. The employee list comes from the
// same directory the employees page uses.
type Controller struct {
	employees employee.Repository
	service   Service
	tracker   page.Tracker
	events    EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewController(
	employees employee.Repository,
	service Service,
	tracker page.Tracker,
	publisher events.Publisher,
	logger ...*zap.Logger,
) *Controller {
	l := zap.L().Named("attendance.controller")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.controller")
	}
	return &Controller{
		employees: employees,
		service:   service,
		tracker:   tracker,
		events:    NewEventPublisher(publisher),
		logger:    l,
		now:       time.Now,
	}
}

func (c *Controller) Load(ctx context.Context, sessionID string, q Query) View {
	q.normalize()
	rid := contextutil.GetRequestID(ctx)
	c.logger.Debug("load attendance page requested",
		zap.String("request_id", rid),
		zap.String("session_id", sessionID),
		zap.String("selected", q.Selected),
		zap.String("date", q.Date),
	)

	m := page.NewMachine(c.tracker, ViewName, sessionID, c.logger)
	if err := m.Begin(ctx); err != nil {
		view, _ := c.blocked(err, q, false)
		return view
	}

	empls, recs, err := c.fetch(ctx, q)
	m.End(ctx, err)

	view := c.view(m.Phase(), q, empls, recs)
	if err != nil {
		c.logger.Error("load attendance failed", zap.String("request_id", rid), zap.Error(err))
		view.Notice = page.Failure(attendanceerrors.ErrLoadFailed.Message)
	}
	return view
}

// Mark validates locally, writes, then re-reads employees and records.
// Whatever the outcome the form goes back to its defaults.
func (c *Controller) Mark(ctx context.Context, sessionID string, q Query, form MarkAttendanceForm) (View, error) {
	q.normalize()
	rid := contextutil.GetRequestID(ctx)
	form.normalize()
	if err := apperror.ValidateWith(&form, markFormMessages); err != nil {
		c.logger.Debug("mark attendance validation failed", zap.String("request_id", rid), zap.Error(err))
		return View{}, err
	}

	c.logger.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", form.EmployeeID),
		zap.String("date", form.Date),
		zap.String("status", string(form.Status)),
	)

	m := page.NewMachine(c.tracker, ViewName, sessionID, c.logger)
	if err := m.Begin(ctx); err != nil {
		return c.blocked(err, q, true)
	}

	rec, err := c.service.Mark(context.WithoutCancel(ctx), form)
	if ctx.Err() != nil {
		m.End(ctx, err)
		c.logger.Info("mark attendance finished after view closed",
			zap.String("request_id", rid),
			zap.String("employee_id", form.EmployeeID),
			zap.Error(err),
		)
		return View{}, page.ErrViewClosed
	}

	// refresh runs after success and failure alike
	empls, recs, fetchErr := c.fetch(ctx, q)

	var notice *page.Notice
	switch {
	case err != nil:
		c.logger.Warn("mark attendance failed",
			zap.String("request_id", rid),
			zap.String("employee_id", form.EmployeeID),
			zap.Error(err),
		)
		notice = page.Failure(noticeMessage(err, attendanceerrors.ErrMarkFailed.Message))
		if fetchErr != nil {
			c.logger.Warn("refresh after failed mark", zap.String("request_id", rid), zap.Error(fetchErr))
		}

	case fetchErr != nil:
		c.publishMarked(ctx, rec)
		c.logger.Error("refresh after mark attendance failed", zap.String("request_id", rid), zap.Error(fetchErr))
		notice = page.Failure(attendanceerrors.ErrLoadFailed.Message)
		err = attendanceerrors.ErrLoadFailed.WithCause(fetchErr)

	default:
		c.publishMarked(ctx, rec)
		c.logger.Info("mark attendance success",
			zap.String("request_id", rid),
			zap.String("employee_id", rec.EmployeeID),
			zap.String("date", rec.Date),
		)
		notice = page.Success(msgMarked)
	}
	m.End(ctx, err)

	view := c.view(m.Phase(), q, empls, recs)
	view.Notice = notice
	return view, err
}

// Summary returns the per-employee counts over all attendance. It does not
// take the page lock.
func (c *Controller) Summary(ctx context.Context) ([]Summary, error) {
	empls, recs, err := c.fetch(ctx, Query{})
	if err != nil {
		return nil, err
	}
	return Summarize(empls, recs), nil
}

// Export builds the attendance workbook from GET /attendance.
func (c *Controller) Export(ctx context.Context) (*bytes.Buffer, error) {
	rid := contextutil.GetRequestID(ctx)

	dir := employee.NewDirectory(c.employees)
	if err := dir.Refresh(ctx); err != nil {
		return nil, attendanceerrors.ErrLoadFailed.WithCause(err)
	}
	empls := dir.Employees()
	recs, err := c.service.ListAll(ctx, empls)
	if err != nil {
		return nil, err
	}

	buf, err := BuildWorkbook(recs, Summarize(empls, recs))
	if err != nil {
		c.logger.Error("build attendance workbook failed", zap.String("request_id", rid), zap.Error(err))
		return nil, attendanceerrors.ErrExportFailed.WithCause(err)
	}
	c.logger.Info("attendance exported", zap.String("request_id", rid), zap.Int("records", len(recs)))
	return buf, nil
}

// DefaultForm is the reset state of the mark form.
func (c *Controller) DefaultForm() MarkAttendanceForm {
	return DefaultForm(c.now())
}

// fetch reads employees then records. On a records failure the employees are
// still returned but no records are, so the page never shows partial data.
func (c *Controller) fetch(ctx context.Context, q Query) ([]employee.Employee, []Record, error) {
	dir := employee.NewDirectory(c.employees)
	if err := dir.Refresh(ctx); err != nil {
		return []employee.Employee{}, nil, err
	}
	empls := dir.Employees()

	var (
		recs []Record
		err  error
	)
	if q.Date != "" {
		recs, err = c.service.ListByDate(ctx, empls, q.Date)
	} else {
		recs, err = c.service.Collect(ctx, empls)
	}
	if err != nil {
		return empls, nil, err
	}
	return empls, recs, nil
}

func (c *Controller) view(phase page.Phase, q Query, empls []employee.Employee, recs []Record) View {
	return View{
		Phase:     phase,
		Employees: empls,
		Summary:   Summarize(empls, recs),
		Records:   FilterBySelected(recs, q.Selected),
		Query:     q,
		Form:      c.DefaultForm(),
	}
}

func (c *Controller) blocked(err error, q Query, mutation bool) (View, error) {
	if errors.Is(err, page.ErrBusy) {
		view := View{Phase: page.PhaseLoading, Query: q, Form: c.DefaultForm()}
		if mutation {
			view.Notice = page.Failure(page.ErrBusy.Message)
		}
		return view, err
	}
	return View{
		Phase:  page.PhaseError,
		Query:  q,
		Form:   c.DefaultForm(),
		Notice: page.Failure(attendanceerrors.ErrLoadFailed.Message),
	}, err
}

func (c *Controller) publishMarked(ctx context.Context, rec Record) {
	if err := c.events.PublishAttendanceMarked(context.WithoutCancel(ctx), rec); err != nil {
		c.logger.Warn("publish attendance marked failed",
			zap.String("employee_id", rec.EmployeeID),
			zap.String("date", rec.Date),
			zap.Error(err),
		)
	}
}

func noticeMessage(err error, fallback string) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
