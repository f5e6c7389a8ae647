package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/output"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/reconcile"
	"go.uber.org/zap"
)

// dashboardView is the data passed to dashboard.html.
type dashboardView struct {
	Report   *models.Report
	Query    string
	Status   string
	Order    string
	Statuses []option
	Orders   []option
	Warnings []string
}

type option struct {
	Value string
	Label string
}

var statusOptions = []option{
	{string(reconcile.StatusAll), "All"},
	{string(reconcile.StatusCompliant), "Compliant"},
	{string(reconcile.StatusOverage), "Overage / error"},
}

var orderOptions = []option{
	{string(reconcile.OrderSheet), "Sheet order"},
	{string(reconcile.OrderName), "Name"},
	{string(reconcile.OrderID), "ID"},
}

// errorView is the data passed to error.html.
type errorView struct {
	Title   string
	Message string
	Detail  string
}

// errorBody is the JSON error payload.
type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func parseFilter(r *http.Request) (reconcile.Filter, error) {
	q := r.URL.Query()
	status, err := reconcile.ParseStatus(q.Get("status"))
	if err != nil {
		return reconcile.Filter{}, err
	}
	order, err := reconcile.ParseOrder(q.Get("sort"))
	if err != nil {
		return reconcile.Filter{}, err
	}
	return reconcile.Filter{Query: q.Get("q"), Status: status, Order: order}, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		s.renderError(w, http.StatusBadRequest, errorView{Title: "Invalid filter", Message: err.Error()})
		return
	}

	report, err := s.auditor.Audit(f)
	if err != nil {
		status, view := s.describeError(err)
		s.renderError(w, status, view)
		return
	}

	s.render(w, http.StatusOK, "dashboard.html", dashboardView{
		Report:   report,
		Query:    f.Query,
		Status:   string(f.Status),
		Order:    string(f.Order),
		Statuses: statusOptions,
		Orders:   orderOptions,
		Warnings: output.WarningLines(report.Warnings),
	})
}

func (s *Server) handleInstructors(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Kind: "filter"})
		return
	}

	report, err := s.auditor.Audit(f)
	if err != nil {
		status, _ := s.describeError(err)
		writeJSON(w, status, errorBody{Error: err.Error(), Kind: errorKind(err)})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	s.reload()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReloadForm(w http.ResponseWriter, r *http.Request) {
	s.reload()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) reload() {
	s.auditor.Clear()
	s.logger.Info("reload requested", zap.String("workbook", s.auditor.Path()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// describeError maps load errors to a status code and a user-facing page.
func (s *Server) describeError(err error) (int, errorView) {
	var missing *loadaudit.MissingFileError
	var schema *loadaudit.SchemaError
	switch {
	case errors.As(err, &missing):
		return http.StatusServiceUnavailable, errorView{
			Title:   "File not found",
			Message: "Please provide the workbook file:",
			Detail:  missing.FileName(),
		}
	case errors.As(err, &schema):
		return http.StatusUnprocessableEntity, errorView{
			Title:   "Column not found",
			Message: "Column " + schema.Column + " was not found. Check that the header is on row " + strconv.Itoa(schema.HeaderRow) + " of sheet " + schema.Sheet + ".",
			Detail:  schema.Column,
		}
	}
	s.logger.Error("audit failed", zap.Error(err))
	return http.StatusInternalServerError, errorView{Title: "Error", Message: err.Error()}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, loadaudit.ErrFileNotFound):
		return "missing_file"
	case errors.Is(err, loadaudit.ErrSchema):
		return "schema"
	}
	return "internal"
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("template execution failed", zap.String("template", name), zap.Error(err))
	}
}

func (s *Server) renderError(w http.ResponseWriter, status int, view errorView) {
	s.render(w, status, "error.html", view)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
