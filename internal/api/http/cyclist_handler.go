package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/service"
)

type CyclistHandler struct {
	svc service.CyclistService
}

func NewCyclistHandler(svc service.CyclistService) *CyclistHandler {
	return &CyclistHandler{svc: svc}
}

type passportPayload struct {
	Number  string `json:"number"`
	Expiry  string `json:"expiry"`
	Country string `json:"country"`
}

type cyclistPayload struct {
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Nationality      string           `json:"nationality"`
	BirthDate        string           `json:"birth_date"`
	Password         string           `json:"password"`
	CPF              string           `json:"cpf"`
	DocumentPhotoURL string           `json:"document_photo_url"`
	Passport         *passportPayload `json:"passport"`
}

type cardPayload struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type registerRequest struct {
	Cyclist cyclistPayload `json:"cyclist"`
	Card    cardPayload    `json:"payment_method"`
}

func (p cyclistPayload) toDomain() *domain.Cyclist {
	c := &domain.Cyclist{
		Name:             p.Name,
		Email:            p.Email,
		Nationality:      p.Nationality,
		BirthDate:        p.BirthDate,
		CPF:              p.CPF,
		DocumentPhotoURL: p.DocumentPhotoURL,
	}
	if p.Passport != nil {
		c.Passport = &domain.Passport{
			Number:  p.Passport.Number,
			Expiry:  p.Passport.Expiry,
			Country: p.Passport.Country,
		}
	}
	return c
}

func (p cardPayload) toDomain() *domain.CreditCard {
	return &domain.CreditCard{
		HolderName: p.HolderName,
		Number:     p.Number,
		Expiry:     p.Expiry,
		CVV:        p.CVV,
	}
}

func (h *CyclistHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cyclist, err := h.svc.Register(r.Context(), req.Cyclist.toDomain(), req.Cyclist.Password, req.Card.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cyclist)
}

func (h *CyclistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	cyclist, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cyclist)
}

func (h *CyclistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload cyclistPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	cyclist := payload.toDomain()
	cyclist.ID = id
	updated, err := h.svc.Update(r.Context(), cyclist, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CyclistHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	cyclist, err := h.svc.Activate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cyclist)
}

func (h *CyclistHandler) EmailInUse(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	inUse, err := h.svc.EmailInUse(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inUse)
}

func (h *CyclistHandler) CanRent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	canRent, err := h.svc.CanRent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, canRent)
}

func (h *CyclistHandler) RentedBike(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	bike, err := h.svc.RentedBike(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bike)
}

func (h *CyclistHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	card, err := h.svc.GetCard(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *CyclistHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload cardPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	card := payload.toDomain()
	card.CyclistID = id
	if err := h.svc.UpdateCard(r.Context(), card); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Validation("invalid " + name + " path parameter")
	}
	return int32(id), nil
}
