package attendance_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hris-web/internal/attendance"
	attendanceerrors "go-hris-web/internal/attendance/errors"
	attendanceMock "go-hris-web/internal/attendance/mock"
	"go-hris-web/internal/employee"
	employeeerrors "go-hris-web/internal/employee/errors"
	employeeMock "go-hris-web/internal/employee/mock"
	"go-hris-web/internal/events"
	eventsMock "go-hris-web/internal/events/mock"
	"go-hris-web/internal/page"
	"go-hris-web/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type controllerDeps struct {
	ctrl      *attendance.Controller
	employees *employeeMock.MockRepository
	repo      *attendanceMock.MockRepository
	publisher *eventsMock.MockPublisher
	tracker   page.Tracker
}

func setupControllerTest(t *testing.T) *controllerDeps {
	apperror.Init()
	mc := gomock.NewController(t)

	employees := employeeMock.NewMockRepository(mc)
	repo := attendanceMock.NewMockRepository(mc)
	publisher := eventsMock.NewMockPublisher(mc)
	tracker := page.NewMemoryTracker(time.Minute)
	svc := attendance.NewService(repo, zap.NewNop())

	return &controllerDeps{
		ctrl:      attendance.NewController(employees, svc, tracker, publisher, zap.NewNop()),
		employees: employees,
		repo:      repo,
		publisher: publisher,
		tracker:   tracker,
	}
}

func TestAttendanceController_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("counts and records for every employee", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA, empB}, nil)
		deps.repo.EXPECT().ListByEmployee(gomock.Any(), "A").Return([]attendance.Record{
			rec("A", "2024-03-01", attendance.StatusPresent),
			rec("A", "2024-03-02", attendance.StatusPresent),
			rec("A", "2024-03-03", attendance.StatusAbsent),
			rec("A", "2024-03-04", attendance.StatusPresent),
		}, nil)
		deps.repo.EXPECT().ListByEmployee(gomock.Any(), "B").Return([]attendance.Record{}, nil)

		view := deps.ctrl.Load(ctx, "s1", attendance.Query{})

		assert.Equal(t, page.PhaseReady, view.Phase)
		assert.Equal(t, []attendance.Summary{
			{EmployeeID: "A", FullName: "Ana", Present: 3, Absent: 1},
			{EmployeeID: "B", FullName: "Budi"},
		}, view.Summary)
		assert.Len(t, view.Records, 4)
		assert.Equal(t, "2024-03-04", view.Records[0].Date)
		assert.Equal(t, attendance.StatusPresent, view.Form.Status)
		assert.NotEmpty(t, view.Form.Date)
		assert.Nil(t, view.Notice)
	})

	t.Run("selected employee narrows the table, not the cards", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA, empB}, nil)
		deps.repo.EXPECT().ListByEmployee(gomock.Any(), "A").Return([]attendance.Record{rec("A", "2024-03-01", attendance.StatusPresent)}, nil)
		deps.repo.EXPECT().ListByEmployee(gomock.Any(), "B").Return([]attendance.Record{rec("B", "2024-03-01", attendance.StatusAbsent)}, nil)

		view := deps.ctrl.Load(ctx, "s1", attendance.Query{Selected: "B"})

		assert.Len(t, view.Records, 1)
		assert.Equal(t, "B", view.Records[0].EmployeeID)
		assert.Len(t, view.Summary, 2)
		assert.True(t, view.IsSelected("B"))
		assert.Equal(t, "", view.ToggleLink("B"))
		assert.Equal(t, "A", view.ToggleLink("A"))
	})

	t.Run("date filter lists by date", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA}, nil)
		deps.repo.EXPECT().ListByDate(gomock.Any(), "2024-03-01").Return([]attendance.Record{rec("A", "2024-03-01", attendance.StatusPresent)}, nil)

		view := deps.ctrl.Load(ctx, "s1", attendance.Query{Date: "2024-03-01"})

		assert.Len(t, view.Records, 1)
		assert.Equal(t, "2024-03-01", view.Query.Date)
	})

	t.Run("malformed date filter is ignored", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA}, nil)
		deps.repo.EXPECT().ListByEmployee(gomock.Any(), "A").Return(nil, nil)

		view := deps.ctrl.Load(ctx, "s1", attendance.Query{Date: "03/01/2024"})

		assert.Equal(t, "", view.Query.Date)
	})

	t.Run("no employees", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{}, nil)

		view := deps.ctrl.Load(ctx, "s1", attendance.Query{})

		assert.True(t, view.NoEmployees())
		assert.True(t, view.NoRecords())
	})

	t.Run("one failed fetch shows no records at all", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA, empB}, nil)
		deps.repo.EXPECT().ListByEmployee(gomock.Any(), "A").Return([]attendance.Record{rec("A", "2024-03-01", attendance.StatusPresent)}, nil).AnyTimes()
		deps.repo.EXPECT().ListByEmployee(gomock.Any(), "B").Return(nil, attendanceerrors.ErrLoadFailed)

		view := deps.ctrl.Load(ctx, "s1", attendance.Query{})

		assert.Equal(t, page.PhaseError, view.Phase)
		assert.Equal(t, "Failed to load attendance data", view.Notice.Message)
		assert.True(t, view.NoRecords())
		assert.Len(t, view.Employees, 2)
	})

	t.Run("employee list failure", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.employees.EXPECT().List(gomock.Any()).Return(nil, employeeerrors.ErrLoadFailed)

		view := deps.ctrl.Load(ctx, "s1", attendance.Query{})

		assert.Equal(t, page.PhaseError, view.Phase)
		assert.Equal(t, "Failed to load attendance data", view.Notice.Message)
	})

	t.Run("busy", func(t *testing.T) {
		deps := setupControllerTest(t)
		_, ok, _ := deps.tracker.Acquire(ctx, attendance.ViewName+":s1")
		assert.True(t, ok)

		view := deps.ctrl.Load(ctx, "s1", attendance.Query{})

		assert.True(t, view.Loading())
	})
}

func TestAttendanceController_Mark(t *testing.T) {
	ctx := context.Background()
	form := attendance.MarkAttendanceForm{EmployeeID: "A", Date: "2024-03-01", Status: attendance.StatusPresent}

	t.Run("invalid input - zero API calls", func(t *testing.T) {
		cases := []struct {
			name    string
			form    attendance.MarkAttendanceForm
			field   string
			message string
		}{
			{"no employee", attendance.MarkAttendanceForm{Date: "2024-03-01", Status: attendance.StatusPresent}, "employee_id", "Please select an employee"},
			{"no date", attendance.MarkAttendanceForm{EmployeeID: "A", Status: attendance.StatusPresent}, "date", "Date is required"},
			{"bad date", attendance.MarkAttendanceForm{EmployeeID: "A", Date: "2024-13-40", Status: attendance.StatusPresent}, "date", "Date must be in YYYY-MM-DD format"},
			{"no status", attendance.MarkAttendanceForm{EmployeeID: "A", Date: "2024-03-01"}, "status", "Status is required"},
			{"unknown status", attendance.MarkAttendanceForm{EmployeeID: "A", Date: "2024-03-01", Status: "Late"}, "status", "Status must be Present or Absent"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupControllerTest(t)

				_, err := deps.ctrl.Mark(ctx, "s1", attendance.Query{}, tc.form)

				var verr *apperror.ValidationError
				assert.True(t, errors.As(err, &verr))
				assert.Equal(t, tc.message, verr.Field(tc.field))
			})
		}
	})

	t.Run("success - write then full refresh, form reset", func(t *testing.T) {
		deps := setupControllerTest(t)
		marked := rec("A", "2024-03-01", attendance.StatusPresent)

		gomock.InOrder(
			deps.repo.EXPECT().Mark(gomock.Any(), marked).Return(marked, nil).Times(1),
			deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA}, nil),
			deps.repo.EXPECT().ListByEmployee(gomock.Any(), "A").Return([]attendance.Record{marked}, nil),
		)
		deps.publisher.EXPECT().
			Publish(gomock.Any(), events.AttendanceTopic, "A", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, event any) error {
				ev, ok := event.(events.AttendanceMarkedEvent)
				assert.True(t, ok)
				assert.Equal(t, "2024-03-01", ev.Date)
				assert.Equal(t, "Present", ev.Status)
				return nil
			})

		view, err := deps.ctrl.Mark(ctx, "s1", attendance.Query{}, form)

		assert.NoError(t, err)
		assert.Equal(t, "Attendance marked successfully", view.Notice.Message)
		assert.Equal(t, 1, view.Summary[0].Present)
		assert.Equal(t, "", view.Form.EmployeeID)
		assert.Equal(t, attendance.StatusPresent, view.Form.Status)
	})

	t.Run("marking the same day twice conflicts and keeps one record", func(t *testing.T) {
		deps := setupControllerTest(t)

		var (
			mu     sync.Mutex
			stored []attendance.Record
		)
		deps.repo.EXPECT().Mark(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r attendance.Record) (attendance.Record, error) {
				mu.Lock()
				defer mu.Unlock()
				for _, s := range stored {
					if s.EmployeeID == r.EmployeeID && s.Date == r.Date {
						return attendance.Record{}, attendanceerrors.ErrAlreadyMarked.WithCause(errors.New("409"))
					}
				}
				stored = append(stored, r)
				return r, nil
			}).Times(2)
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA}, nil).Times(2)
		deps.repo.EXPECT().ListByEmployee(gomock.Any(), "A").
			DoAndReturn(func(context.Context, string) ([]attendance.Record, error) {
				mu.Lock()
				defer mu.Unlock()
				return append([]attendance.Record(nil), stored...), nil
			}).Times(2)
		deps.publisher.EXPECT().Publish(gomock.Any(), events.AttendanceTopic, "A", gomock.Any()).Return(nil).Times(1)

		_, err := deps.ctrl.Mark(ctx, "s1", attendance.Query{}, form)
		assert.NoError(t, err)

		second := form
		second.Status = attendance.StatusAbsent
		view, err := deps.ctrl.Mark(ctx, "s1", attendance.Query{}, second)

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyMarked)
		assert.Equal(t, "Attendance already marked for this date", view.Notice.Message)
		assert.Len(t, attendance.RecordsForEmployee(view.Records, "A"), 1)
		assert.Equal(t, attendance.StatusPresent, view.Records[0].Status)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.repo.EXPECT().Mark(gomock.Any(), gomock.Any()).Return(attendance.Record{}, attendanceerrors.ErrEmployeeNotFound)
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{}, nil)

		view, err := deps.ctrl.Mark(ctx, "s1", attendance.Query{}, form)

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
		assert.Equal(t, "Employee not found", view.Notice.Message)
	})

	t.Run("other failure - generic message", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.repo.EXPECT().Mark(gomock.Any(), gomock.Any()).Return(attendance.Record{}, errors.New("connection reset"))
		deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{}, nil)

		view, err := deps.ctrl.Mark(ctx, "s1", attendance.Query{}, form)

		assert.Error(t, err)
		assert.Equal(t, "Failed to mark attendance", view.Notice.Message)
		assert.Equal(t, page.PhaseError, view.Phase)
	})

	t.Run("refresh failure after a successful mark", func(t *testing.T) {
		deps := setupControllerTest(t)
		deps.repo.EXPECT().Mark(gomock.Any(), gomock.Any()).Return(rec("A", "2024-03-01", attendance.StatusPresent), nil)
		deps.employees.EXPECT().List(gomock.Any()).Return(nil, employeeerrors.ErrLoadFailed)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		view, err := deps.ctrl.Mark(ctx, "s1", attendance.Query{}, form)

		assert.ErrorIs(t, err, attendanceerrors.ErrLoadFailed)
		assert.Equal(t, "Failed to load attendance data", view.Notice.Message)
	})

	t.Run("busy", func(t *testing.T) {
		deps := setupControllerTest(t)
		_, ok, _ := deps.tracker.Acquire(ctx, attendance.ViewName+":s1")
		assert.True(t, ok)

		view, err := deps.ctrl.Mark(ctx, "s1", attendance.Query{}, form)

		assert.ErrorIs(t, err, page.ErrBusy)
		assert.True(t, view.Loading())
	})

	t.Run("view closed mid-write", func(t *testing.T) {
		deps := setupControllerTest(t)
		cctx, cancel := context.WithCancel(ctx)
		deps.repo.EXPECT().Mark(gomock.Any(), gomock.Any()).
			DoAndReturn(func(wctx context.Context, r attendance.Record) (attendance.Record, error) {
				cancel()
				assert.NoError(t, wctx.Err())
				return r, nil
			})

		_, err := deps.ctrl.Mark(cctx, "s1", attendance.Query{}, form)

		assert.ErrorIs(t, err, page.ErrViewClosed)
		_, ok, _ := deps.tracker.Acquire(ctx, attendance.ViewName+":s1")
		assert.True(t, ok)
	})
}

func TestAttendanceController_Summary(t *testing.T) {
	deps := setupControllerTest(t)
	deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA}, nil)
	deps.repo.EXPECT().ListByEmployee(gomock.Any(), "A").Return([]attendance.Record{
		rec("A", "2024-03-01", attendance.StatusAbsent),
	}, nil)

	got, err := deps.ctrl.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []attendance.Summary{{EmployeeID: "A", FullName: "Ana", Absent: 1}}, got)
}

func TestAttendanceController_Export(t *testing.T) {
	deps := setupControllerTest(t)
	deps.employees.EXPECT().List(gomock.Any()).Return([]employee.Employee{empA, empB}, nil)
	deps.repo.EXPECT().ListAll(gomock.Any()).Return([]attendance.Record{
		rec("A", "2024-03-01", attendance.StatusPresent),
		rec("B", "2024-03-02", attendance.StatusAbsent),
		rec("GONE", "2024-02-01", attendance.StatusPresent),
	}, nil)

	buf, err := deps.ctrl.Export(context.Background())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Employee", "Employee ID", "Date", "Status"},
		{"Budi", "B", "2024-03-02", "Absent"},
		{"Ana", "A", "2024-03-01", "Present"},
		{"GONE", "GONE", "2024-02-01", "Present"},
	}, rows)

	summary, err := f.GetRows("Summary")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Ana", "A", "1", "0"}, summary[1])
	assert.Equal(t, []string{"Budi", "B", "0", "1"}, summary[2])
}
