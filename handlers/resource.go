package handlers

import (
	"net/http"

	"github.com/akinalpfdn/kimlik/models"
	"github.com/akinalpfdn/kimlik/pkg"
)

// ResourceHandler, korumalı örnek kaynak endpoint'i.
//
// Gateway'in asıl işi token yaşam döngüsüdür; bu handler korumanın arkasında
// "servis edilen kaynak"ı temsil eder. Token kabul/yenileme kararı buraya
// gelmeden middleware'da verilmiştir — handler sadece context'teki kimliği
// kullanır.
type ResourceHandler struct{}

// NewResourceHandler, constructor.
func NewResourceHandler() *ResourceHandler {
	return &ResourceHandler{}
}

// Get godoc
// GET /resources
// Auth middleware gerektirir. Yenileme yapıldıysa response'ta taze
// accessToken cookie'si de vardır (middleware set eder).
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := r.Context().Value(IdentityContextKey).(models.Identity)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "please re-login")
		return
	}

	pkg.Data(w, http.StatusOK, map[string]any{
		"resource": "protected resource data",
		"user":     identity,
	})
}
