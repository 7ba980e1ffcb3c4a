package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/minhleeee123/stellar-digital-identity/interfaces"
)

// RequestError provides structured error information for HTTP responses.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Handler serves registry reads. It never signs anything.
type Handler struct {
	reader interfaces.IdentityReader
	log    *slog.Logger
}

func NewHandler(reader interfaces.IdentityReader, log *slog.Logger) *Handler {
	return &Handler{
		reader: reader,
		log:    log,
	}
}

type identityIDsResponse struct {
	Owner interfaces.Address `json:"owner"`
	IDs   []string           `json:"ids"`
}

type totalResponse struct {
	Total uint32 `json:"total"`
}

type adminResponse struct {
	Admin interfaces.Address `json:"admin"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleGetIdentity returns an identity as seen by the requester.
//
// URL format: GET /api/identity/{id}?requester=G...
func (h *Handler) HandleGetIdentity(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	requester, err := interfaces.NewAddress(r.URL.Query().Get("requester"))
	if err != nil {
		h.writeError(w, &RequestError{StatusCode: http.StatusBadRequest, Err: err})
		return
	}

	record, err := h.reader.GetIdentity(r.Context(), id, requester)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// HandleCheckAccess returns the active grant of requester on an identity.
//
// URL format: GET /api/identity/{id}/access/{requester}
func (h *Handler) HandleCheckAccess(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	requester, err := interfaces.NewAddress(r.PathValue("requester"))
	if err != nil {
		h.writeError(w, &RequestError{StatusCode: http.StatusBadRequest, Err: err})
		return
	}

	permission, err := h.reader.CheckAccess(r.Context(), id, requester)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, permission)
}

func (h *Handler) HandleIdentitiesByOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := interfaces.NewAddress(r.PathValue("owner"))
	if err != nil {
		h.writeError(w, &RequestError{StatusCode: http.StatusBadRequest, Err: err})
		return
	}

	ids, err := h.reader.GetIdentitiesByOwner(r.Context(), owner)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, identityIDsResponse{Owner: owner, IDs: ids})
}

func (h *Handler) HandleTotalIdentities(w http.ResponseWriter, r *http.Request) {
	total, err := h.reader.GetTotalIdentities(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totalResponse{Total: total})
}

func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.reader.GetAdmin(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminResponse{Admin: admin})
}

// statusFor maps registry errors to HTTP status codes. Anything unrecognized
// is an upstream failure.
func statusFor(err error) int {
	var reqErr *RequestError
	var simErr *interfaces.SimulationError
	var accountErr *interfaces.AccountNotFoundError

	switch {
	case errors.As(err, &reqErr):
		return reqErr.StatusCode
	case errors.Is(err, interfaces.ErrIdentityNotFound), errors.Is(err, interfaces.ErrAccessNotFound):
		return http.StatusNotFound
	case errors.As(err, &accountErr):
		return http.StatusNotFound
	case errors.As(err, &simErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("registry read failed", "err", err)
	} else {
		h.log.Debug("registry read rejected", "status", code, "err", err)
	}
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
