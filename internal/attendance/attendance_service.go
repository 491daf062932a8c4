package attendance

import (
	"context"

	"go-hris-web/internal/employee"
	"go-hris-web/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// Collect fetches every employee's records concurrently and returns them
	// merged, name-joined and sorted. One failed fetch fails the whole batch.
	Collect(ctx context.Context, employees []employee.Employee) ([]Record, error)
	ListByDate(ctx context.Context, employees []employee.Employee, date string) ([]Record, error)
	ListAll(ctx context.Context, employees []employee.Employee) ([]Record, error)
	Mark(ctx context.Context, form MarkAttendanceForm) (Record, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Collect(ctx context.Context, employees []employee.Employee) ([]Record, error) {
	rid := contextutil.GetRequestID(ctx)

	// slot per employee: merge order follows the employee list, not completion order
	slots := make([][]Record, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range employees {
		g.Go(func() error {
			recs, err := s.repo.ListByEmployee(gctx, e.EmployeeID)
			if err != nil {
				return err
			}
			slots[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("collect attendance failed",
			zap.String("request_id", rid),
			zap.Int("employees", len(employees)),
			zap.Error(err),
		)
		return nil, err
	}

	merged := make([]Record, 0)
	for _, recs := range slots {
		merged = append(merged, recs...)
	}

	s.logger.Debug("collect attendance success",
		zap.String("request_id", rid),
		zap.Int("employees", len(employees)),
		zap.Int("records", len(merged)),
	)
	return SortByDateDescending(JoinNames(merged, employees)), nil
}

func (s *service) ListByDate(ctx context.Context, employees []employee.Employee, date string) ([]Record, error) {
	recs, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return SortByDateDescending(JoinNames(recs, employees)), nil
}

func (s *service) ListAll(ctx context.Context, employees []employee.Employee) ([]Record, error) {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return SortByDateDescending(JoinNames(recs, employees)), nil
}

// Mark expects an already validated form.
func (s *service) Mark(ctx context.Context, form MarkAttendanceForm) (Record, error) {
	rec, err := s.repo.Mark(ctx, form.toRecord())
	if err != nil {
		s.logger.Warn("mark attendance failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", form.EmployeeID),
			zap.String("date", form.Date),
			zap.Error(err),
		)
		return Record{}, err
	}
	return rec, nil
}
