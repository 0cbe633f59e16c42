package handler

import (
	"net/http"

	"github.com/Shu5555/jinro-app/internal/api/apierr"
)

// WriteError writes an error response using the API error mapping
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}
