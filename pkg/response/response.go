package response

import (
	"encoding/json"
	"net/http"
)

// Body is the uniform envelope every endpoint returns.
type Body struct {
	Status  bool        `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func send(w http.ResponseWriter, statusCode int, success bool, payload interface{}, message string) {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Body{
		Status:  success,
		Data:    payload,
		Message: message,
	})
}

func Success(w http.ResponseWriter, payload interface{}, message string) {
	send(w, http.StatusOK, true, payload, message)
}

func Created(w http.ResponseWriter, payload interface{}, message string) {
	send(w, http.StatusCreated, true, payload, message)
}

func BadRequest(w http.ResponseWriter, message string) {
	send(w, http.StatusBadRequest, false, nil, message)
}

func NotFound(w http.ResponseWriter, message string) {
	send(w, http.StatusNotFound, false, nil, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	send(w, http.StatusInternalServerError, false, nil, message)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	send(w, statusCode, false, nil, message)
}
