package timetracking

import (
	"github.com/JorgeSaicoski/pgconnect"
)

// repository is the slice of pgconnect's generic repository this service
// touches. The seam exists so precondition and rollback behavior can be
// exercised without a live database.
type repository[T any] interface {
	Create(record *T) error
	Update(record *T) error
	Delete(record *T) error
	FindByID(id uint, out *T) error
	FindWhere(out *[]T, query string, args ...interface{}) error
}

type pgRepository[T any] struct {
	repo *pgconnect.Repository[T]
}

func newPGRepository[T any](database *pgconnect.DB) pgRepository[T] {
	return pgRepository[T]{repo: pgconnect.NewRepository[T](database)}
}

func (r pgRepository[T]) Create(record *T) error {
	return r.repo.Create(record)
}

func (r pgRepository[T]) Update(record *T) error {
	return r.repo.Update(record)
}

func (r pgRepository[T]) Delete(record *T) error {
	return r.repo.Delete(record)
}

func (r pgRepository[T]) FindByID(id uint, out *T) error {
	return r.repo.FindByID(id, out)
}

func (r pgRepository[T]) FindWhere(out *[]T, query string, args ...interface{}) error {
	return r.repo.FindWhere(out, query, args...)
}
