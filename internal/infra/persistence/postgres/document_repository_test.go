package postgres

import (
	"context"
	"testing"
	"time"

	"creaglass/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var documentColumns = []string{"id", "filename", "mime_type", "storage_key", "size", "checksum", "created_by", "created_at"}

func TestDocumentRepository_DeleteDocument(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDocumentRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`DELETE FROM "documents" WHERE id = \$1 RETURNING \*`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(id.String(), "cutlist.pdf", "application/pdf", "documents/"+id.String()+"/cutlist.pdf", 2048, "", uuid.NewString(), time.Now().UTC()))

	document, err := repo.DeleteDocument(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "documents/"+id.String()+"/cutlist.pdf", document.StorageKey)
	assert.Equal(t, int64(2048), document.Size)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_DeleteDocument_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDocumentRepository(db)

	mock.ExpectQuery(`DELETE FROM "documents" WHERE id = \$1 RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	document, err := repo.DeleteDocument(context.Background(), uuid.New())

	assert.Nil(t, document)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_FindDocumentByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDocumentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "documents" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	document, err := repo.FindDocumentByID(context.Background(), uuid.New())

	assert.Nil(t, document)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
