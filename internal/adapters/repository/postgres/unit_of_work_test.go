package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codecraftwt/eazecap/internal/adapters/repository/postgres"
	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"

	"github.com/stretchr/testify/require"
)

func TestSqlUnitOfWork(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	uow := postgres.NewUnitOfWork(dbConnection)

	t.Run("Execute - Commits On Success", func(t *testing.T) {
		// Arrange
		truncate()
		app := newDraftApplication()

		// Act
		err := uow.Execute(ctx, func(tx port.UnitOfWork) error {
			if err := tx.ApplicationRepo().Create(ctx, app); err != nil {
				return err
			}
			return tx.DocumentRepo().Create(ctx, newStagingDocument(app.ID, domain.UploadFieldIDPhoto))
		})

		// Assert
		require.NoError(t, err)
		found, err := uow.ApplicationRepo().FindByID(ctx, app.ID)
		require.NoError(t, err)
		require.Equal(t, app.ID, found.ID)
		docs, err := uow.DocumentRepo().ListByApplication(ctx, app.ID)
		require.NoError(t, err)
		require.Len(t, docs, 1)
	})

	t.Run("Execute - Rolls Back On Error", func(t *testing.T) {
		// Arrange
		truncate()
		app := newDraftApplication()
		boom := errors.New("boom")

		// Act
		err := uow.Execute(ctx, func(tx port.UnitOfWork) error {
			if err := tx.ApplicationRepo().Create(ctx, app); err != nil {
				return err
			}
			return boom
		})

		// Assert
		require.ErrorIs(t, err, boom)
		_, err = uow.ApplicationRepo().FindByID(ctx, app.ID)
		require.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}
