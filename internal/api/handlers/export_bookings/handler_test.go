package export_bookings

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReports struct {
	csv string
	err error
}

func (f *fakeReports) WriteBookingsCSV(ctx context.Context, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, f.csv)
	return err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	h := NewHandler(&fakeReports{csv: "booking_id,owner\n1,Jane Smith\n"}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/export_bookings", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="bookings_`))
	assert.Equal(t, "booking_id,owner\n1,Jane Smith\n", rec.Body.String())
}

func TestHandle_ExportError(t *testing.T) {
	h := NewHandler(&fakeReports{err: errors.New("connection reset")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/export_bookings", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// при ошибке клиент не получает частичный CSV
	assert.NotContains(t, rec.Body.String(), "booking_id")
}
