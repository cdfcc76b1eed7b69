package eventtable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jengzang/handover-backend-go/internal/logging"
	"github.com/jengzang/handover-backend-go/internal/models"
)

// ErrStatus is returned for a non-2xx response from the table source
var ErrStatus = errors.New("unexpected response status")

// Loader fetches the event table from a URL or a local file
type Loader struct {
	location string
	client   *http.Client
	log      logging.Logger
}

// NewLoader creates a loader. location may be an http(s) URL, a file path,
// or empty to always serve the embedded table.
func NewLoader(location string, timeout time.Duration, log logging.Logger) *Loader {
	if log == nil {
		log = logging.Noop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Loader{
		location: location,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Load returns the event table and where it came from. Any failure to
// fetch or parse the source is logged and answered with the fallback rows.
func (l *Loader) Load(ctx context.Context) ([]models.EventRow, models.EventTableMeta) {
	meta := models.EventTableMeta{Location: l.location, LoadedAt: time.Now().UTC()}

	if l.location == "" {
		meta.Source = models.EventSourceFallback
		return l.fallback(meta)
	}

	var (
		rows []models.EventRow
		err  error
	)
	if isURL(l.location) {
		meta.Source = models.EventSourceRemote
		rows, err = l.fetch(ctx)
	} else {
		meta.Source = models.EventSourceFile
		rows, err = l.readFile()
	}
	if err != nil {
		l.log.Warn(ctx, "event table unavailable, using embedded table",
			logging.String("location", l.location), logging.Err(err))
		meta.Source = models.EventSourceFallback
		return l.fallback(meta)
	}

	meta.RowCount = len(rows)
	l.log.Info(ctx, "event table loaded",
		logging.String("location", l.location),
		logging.String("source", string(meta.Source)),
		logging.Int("rows", len(rows)))
	return rows, meta
}

func (l *Loader) fallback(meta models.EventTableMeta) ([]models.EventRow, models.EventTableMeta) {
	rows := Fallback()
	meta.RowCount = len(rows)
	return rows, meta
}

func (l *Loader) fetch(ctx context.Context) ([]models.EventRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	return Parse(resp.Body)
}

func (l *Loader) readFile() ([]models.EventRow, error) {
	f, err := os.Open(l.location)
	if err != nil {
		return nil, fmt.Errorf("failed to open event table: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
