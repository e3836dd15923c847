package handlers

import (
	"encoding/json"
	"net/http"
)

type Payload struct {
	Key     string
	Payload any
}

func toPayload(key string, pl any) Payload {
	return Payload{Key: key, Payload: pl}
}

func toJSON(storage map[string]any, payload Payload) {
	storage[payload.Key] = payload.Payload
}

// responseWithJSON пишет body как есть, без обёртки в объект.
func responseWithJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// responseWithPayload собирает объект ответа из пар ключ-значение.
func responseWithPayload(w http.ResponseWriter, code int, payload ...Payload) {
	storage := make(map[string]any)
	for _, pl := range payload {
		toJSON(storage, pl)
	}
	responseWithJSON(w, code, storage)
}

func responseWithError(w http.ResponseWriter, code int, message string) {
	responseWithPayload(w, code, toPayload("error", message))
}

func healthCheck(w http.ResponseWriter) {
	responseWithPayload(w, http.StatusOK,
		toPayload("status", "ok"),
		toPayload("service", "mini-task-manager"),
	)
}
