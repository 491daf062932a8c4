package attendance

import (
	"context"
	"net/url"

	"go-hris-web/internal/apiclient"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Mark(ctx context.Context, rec Record) (Record, error)
	ListAll(ctx context.Context) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	ListByDate(ctx context.Context, date string) ([]Record, error)
}

type repository struct {
	client *apiclient.Client
}

// NewRepository reads and writes attendance through the remote API.
func NewRepository(client *apiclient.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Mark(ctx context.Context, rec Record) (Record, error) {
	var created Record
	if err := r.client.Post(ctx, "/attendance", rec, &created); err != nil {
		return Record{}, mapMarkError(err)
	}
	if created.EmployeeID == "" {
		created = rec
	}
	created.Date = NormalizeDate(created.Date)
	return created, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Record, error) {
	return r.list(ctx, "/attendance", nil)
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return r.list(ctx, "/attendance/"+url.PathEscape(employeeID), nil)
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]Record, error) {
	return r.list(ctx, "/attendance", url.Values{"date": {date}})
}

func (r *repository) list(ctx context.Context, path string, query url.Values) ([]Record, error) {
	var recs []Record
	if err := r.client.Get(ctx, path, query, &recs); err != nil {
		return nil, mapListError(err)
	}
	out := make([]Record, len(recs))
	for i, rec := range recs {
		rec.Date = NormalizeDate(rec.Date)
		out[i] = rec
	}
	return out, nil
}
