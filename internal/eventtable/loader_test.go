package eventtable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const table = header +
	"A3,\"Vecina, mejor\",\"x>y\",Relativa,\"HO\"\n" +
	"B1,IRAT,\"Mn > T\",Absoluta,\"HO IRAT\"\n"

func TestLoaderRemote(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			w.Write([]byte(table))
		}))
		defer srv.Close()

		rows, meta := NewLoader(srv.URL+"/event_table.csv", time.Second, nil).Load(context.Background())
		require.Len(t, rows, 2)
		assert.Equal(t, "Vecina, mejor", rows[0].Description)
		assert.Equal(t, models.EventSourceRemote, meta.Source)
		assert.Equal(t, 2, meta.RowCount)
	})

	t.Run("non-2xx falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		rows, meta := NewLoader(srv.URL, time.Second, nil).Load(context.Background())
		assert.Equal(t, Fallback(), rows)
		assert.Equal(t, models.EventSourceFallback, meta.Source)
		assert.Equal(t, 8, meta.RowCount)
	})

	t.Run("transport failure falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		rows, meta := NewLoader(url, time.Second, nil).Load(context.Background())
		assert.Equal(t, Fallback(), rows)
		assert.Equal(t, models.EventSourceFallback, meta.Source)
	})

	t.Run("unparseable body falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(header))
		}))
		defer srv.Close()

		rows, _ := NewLoader(srv.URL, time.Second, nil).Load(context.Background())
		assert.Equal(t, Fallback(), rows)
	})
}

func TestLoaderFile(t *testing.T) {
	t.Parallel()

	t.Run("reads local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "event_table.csv")
		require.NoError(t, os.WriteFile(path, []byte(table), 0o644))

		rows, meta := NewLoader(path, 0, nil).Load(context.Background())
		require.Len(t, rows, 2)
		assert.Equal(t, models.EventSourceFile, meta.Source)
		assert.Equal(t, path, meta.Location)
	})

	t.Run("missing file falls back", func(t *testing.T) {
		rows, meta := NewLoader(filepath.Join(t.TempDir(), "nope.csv"), 0, nil).Load(context.Background())
		assert.Equal(t, Fallback(), rows)
		assert.Equal(t, models.EventSourceFallback, meta.Source)
	})

	t.Run("empty location serves embedded table", func(t *testing.T) {
		rows, meta := NewLoader("", 0, nil).Load(context.Background())
		assert.Len(t, rows, 8)
		assert.Equal(t, models.EventSourceFallback, meta.Source)
	})
}
