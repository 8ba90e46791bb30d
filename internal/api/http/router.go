// Package http exposes the rental network's REST API. Handlers stay thin:
// decode, call the service, map the error taxonomy to a status code.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all HTTP routes.
func NewRouter(rental *RentalHandler, cyclist *CyclistHandler, employee *EmployeeHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/rental", rental.StartRental).Methods(http.MethodPost)
	r.HandleFunc("/return", rental.ReturnRental).Methods(http.MethodPost)

	r.HandleFunc("/cyclist", cyclist.Register).Methods(http.MethodPost)
	r.HandleFunc("/cyclist/emailInUse/{email}", cyclist.EmailInUse).Methods(http.MethodGet)
	r.HandleFunc("/cyclist/{id}", cyclist.Get).Methods(http.MethodGet)
	r.HandleFunc("/cyclist/{id}", cyclist.Update).Methods(http.MethodPut)
	r.HandleFunc("/cyclist/{id}/activate", cyclist.Activate).Methods(http.MethodPost)
	r.HandleFunc("/cyclist/{id}/canRent", cyclist.CanRent).Methods(http.MethodGet)
	r.HandleFunc("/cyclist/{id}/rentedBike", cyclist.RentedBike).Methods(http.MethodGet)

	r.HandleFunc("/creditCard/{id}", cyclist.GetCard).Methods(http.MethodGet)
	r.HandleFunc("/creditCard/{id}", cyclist.UpdateCard).Methods(http.MethodPut)

	r.HandleFunc("/employee", employee.Create).Methods(http.MethodPost)
	r.HandleFunc("/employee", employee.List).Methods(http.MethodGet)
	r.HandleFunc("/employee/{registration}", employee.Get).Methods(http.MethodGet)
	r.HandleFunc("/employee/{registration}", employee.Update).Methods(http.MethodPut)
	r.HandleFunc("/employee/{registration}", employee.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
