package http

import (
	"net/http"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/service"
)

type EmployeeHandler struct {
	svc service.EmployeeService
}

func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

type employeePayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	CPF      string `json:"cpf"`
	Role     string `json:"role"`
	Age      int32  `json:"age"`
}

func (p employeePayload) toDomain() *domain.Employee {
	return &domain.Employee{
		Name:  p.Name,
		Email: p.Email,
		CPF:   p.CPF,
		Role:  p.Role,
		Age:   p.Age,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	employee, err := h.svc.Create(r.Context(), payload.toDomain(), payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	registration, err := pathID(r, "registration")
	if err != nil {
		writeError(w, err)
		return
	}

	employee, err := h.svc.Get(r.Context(), registration)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	registration, err := pathID(r, "registration")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload employeePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	employee := payload.toDomain()
	employee.Registration = registration
	updated, err := h.svc.Update(r.Context(), employee, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	registration, err := pathID(r, "registration")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), registration); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
