package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/store"
	"github.com/ddanshin/staffdir/internal/utils"
	"github.com/ddanshin/staffdir/internal/validators"
	"github.com/ddanshin/staffdir/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		log.Err(err).Str("func", "*Handler.createEmployee").Msg("Invalid JSON was passed")
		writeError(w, validators.ErrNameEmailRequired)
		return
	}

	created, err := h.services.EmployeeService.Create(ctx, employee)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEmployee").Msg("error creating employee")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.EmployeeResponse{
		Message:  "Employee created successfully",
		Employee: created,
	}, http.StatusCreated)
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// page is 1-indexed; missing or unparsable values fall back to 1
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	department := r.URL.Query().Get("department")
	role := r.URL.Query().Get("role")

	employees, pagination, err := h.services.EmployeeService.List(ctx, page, department, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEmployees").Msg("error listing employees")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.EmployeeListResponse{
		Employees:  employees,
		Pagination: pagination,
	}, http.StatusOK)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := employeeIDFromRequest(r)
	if err != nil {
		writeError(w, store.ErrEmployeeNotFound)
		return
	}

	employee, err := h.services.EmployeeService.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEmployee").Int64("id", id).Msg("error getting employee")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.EmployeeResponse{Employee: employee}, http.StatusOK)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := employeeIDFromRequest(r)
	if err != nil {
		writeError(w, store.ErrEmployeeNotFound)
		return
	}

	var update models.EmployeeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateEmployee").Msg("Invalid JSON was passed")
		writeError(w, validators.ErrNoDataProvided)
		return
	}

	updated, err := h.services.EmployeeService.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEmployee").Int64("id", id).Msg("error updating employee")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.EmployeeResponse{
		Message:  "Employee updated successfully",
		Employee: updated,
	}, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := employeeIDFromRequest(r)
	if err != nil {
		writeError(w, store.ErrEmployeeNotFound)
		return
	}

	if err := h.services.EmployeeService.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteEmployee").Int64("id", id).Msg("error deleting employee")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// employeeIDFromRequest parses the {id} path parameter. A non-integer id
// is indistinguishable from an unknown record for the caller.
func employeeIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
