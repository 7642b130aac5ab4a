package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/carstorage/internal/dbx"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/cars"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX so services can run
// the same code inside or outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cars(db dbx.DBTX) cars.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
