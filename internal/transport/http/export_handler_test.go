package http

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfpulse/internal/dataprocessing"
	apierrors "perfpulse/internal/errors"
)

func newExportRouter(svc DataReader) chi.Router {
	logger := testLogger()
	errorHandler := apierrors.NewErrorHandler(logger, false)
	return NewExportHandler(svc, logger, errorHandler).Routes()
}

func TestExportCSV(t *testing.T) {
	router := newExportRouter(&fakeDataService{records: handlerRecords()})

	req := httptest.NewRequest(http.MethodGet, "/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")

	body := rec.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}))

	reader := csv.NewReader(bytes.NewReader(body[3:]))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Alice", rows[1][0])
}

func TestExportCSVWithFilter(t *testing.T) {
	router := newExportRouter(&fakeDataService{records: handlerRecords()})

	req := httptest.NewRequest(http.MethodGet, "/csv?department=Sales", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.Bytes()
	reader := csv.NewReader(bytes.NewReader(body[3:]))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[1][0])
}

func TestExportCSVInvalidFilter(t *testing.T) {
	router := newExportRouter(&fakeDataService{records: handlerRecords()})

	req := httptest.NewRequest(http.MethodGet, "/csv?min_experience=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportCSVStoreMissing(t *testing.T) {
	router := newExportRouter(&fakeDataService{err: dataprocessing.ErrSourceUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportExcel(t *testing.T) {
	router := newExportRouter(&fakeDataService{records: handlerRecords()})

	req := httptest.NewRequest(http.MethodGet, "/xlsx", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func TestExportPDF(t *testing.T) {
	router := newExportRouter(&fakeDataService{records: handlerRecords()})

	req := httptest.NewRequest(http.MethodGet, "/pdf?department=Eng", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}
