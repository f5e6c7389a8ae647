package loadaudit

import (
	"sync"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/reconcile"
	"go.uber.org/zap"
)

// Auditor is the application context built once at startup. It owns the
// memoized load of a single workbook; reconciliation is recomputed on every
// Audit call.
type Auditor struct {
	path   string
	opts   Options
	logger *zap.Logger

	mu    sync.Mutex
	table *models.Table
}

// New creates an Auditor for the workbook at path. A nil logger disables logging.
func New(path string, opts Options, logger *zap.Logger) *Auditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auditor{
		path:   path,
		opts:   opts,
		logger: logger.With(zap.String("workbook", path)),
	}
}

// Path returns the workbook path.
func (a *Auditor) Path() string {
	return a.path
}

// Table returns the normalized table, loading it on first use. Failed loads
// are not memoized. The returned table is shared and must not be modified.
func (a *Auditor) Table() (*models.Table, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.table != nil {
		return a.table, nil
	}

	table, err := Load(a.path, a.opts)
	if err != nil {
		a.logger.Error("load failed", zap.Error(err))
		return nil, err
	}

	a.logWarnings(table)
	a.logger.Info("workbook loaded",
		zap.String("sheet", table.Sheet),
		zap.Int("rows", len(table.Rows)))
	a.table = table
	return table, nil
}

// Clear drops the memoized table so the next call reloads the workbook.
func (a *Auditor) Clear() {
	a.mu.Lock()
	a.table = nil
	a.mu.Unlock()
	a.logger.Debug("cache cleared")
}

// Audit reconciles the workbook and applies f.
func (a *Auditor) Audit(f reconcile.Filter) (*models.Report, error) {
	table, err := a.Table()
	if err != nil {
		return nil, err
	}

	records, summary := reconcile.Reconcile(table, f)
	a.logger.Debug("audit",
		zap.String("query", f.Query),
		zap.String("status", string(f.Status)),
		zap.Int("records", summary.Total),
		zap.Int("overage", summary.Overage))

	status := f.Status
	if status == "" {
		status = reconcile.StatusAll
	}
	return &models.Report{
		Source:   table.Source,
		Sheet:    table.Sheet,
		Query:    f.Query,
		Status:   string(status),
		Records:  records,
		Summary:  summary,
		Warnings: table.Warnings,
	}, nil
}

func (a *Auditor) logWarnings(table *models.Table) {
	w := table.Warnings
	if !w.Any() {
		return
	}
	if w.SheetFallback {
		a.logger.Warn("template sheet not found, read first sheet instead",
			zap.String("want", a.opts.SheetName()),
			zap.String("sheet", table.Sheet))
	}
	if w.CoercedCells > 0 {
		a.logger.Warn("numeric cells coerced to zero", zap.Int("cells", w.CoercedCells))
	}
	if w.OrphanRows > 0 {
		a.logger.Warn("rows without instructor dropped", zap.Int("rows", w.OrphanRows))
	}
	if len(w.MissingColumns) > 0 {
		a.logger.Warn("columns missing", zap.Strings("columns", w.MissingColumns))
	}
	if len(w.SplitBlocks) > 0 {
		a.logger.Warn("instructor rows not contiguous; forward-fill may misattribute rows",
			zap.Strings("ids", w.SplitBlocks))
	}
}
