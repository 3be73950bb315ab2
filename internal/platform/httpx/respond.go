package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON estaba duplicado por módulo en versiones anteriores; al repetirse
// en todos los handlers de la consola terminó acá como helper común.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde un error con cuerpo JSON {"error": "..."}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}
