package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"nutrition-booking/pkg/response"
	"nutrition-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// decodeAndValidate reads a JSON body into req and runs struct validation.
// It writes the 400 response itself and reports whether the handler may go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

// uuidVar parses a uuid path variable
func uuidVar(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.BadRequest(w, "Invalid "+label)
		return uuid.Nil, false
	}
	return id, true
}

func queryUUID(w http.ResponseWriter, r *http.Request, name string) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, "Invalid "+name)
		return nil, false
	}
	return &id, true
}

func queryBool(w http.ResponseWriter, r *http.Request, name string) (*bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		response.BadRequest(w, "Invalid "+name)
		return nil, false
	}
	return &value, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, "Invalid "+name)
		return 0, false
	}
	return value, true
}
