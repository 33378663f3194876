package store

import "github.com/ddanshin/staffdir/internal/logger"

type Storages struct {
	EmployeeRepository EmployeeRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		EmployeeRepository: NewEmployeeRepository(db, logger),
	}
}
