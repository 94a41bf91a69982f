package postgres

import (
	"context"
	"database/sql"

	"github.com/codecraftwt/eazecap/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) ApplicationRepo() port.ApplicationRepository {
	if u.tx != nil {
		return NewSqlApplicationRepository(u.tx)
	}
	return NewSqlApplicationRepository(u.db)
}

func (u *sqlUnitOfWork) DocumentRepo() port.DocumentRepository {
	if u.tx != nil {
		return NewSqlDocumentRepository(u.tx)
	}
	return NewSqlDocumentRepository(u.db)
}

func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
