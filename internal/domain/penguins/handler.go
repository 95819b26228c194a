package penguins

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"penguin-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20 // 1MB

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/penguins", func(pr chi.Router) {
		pr.Post("/", createPenguinHandler(svc, log))
		pr.Get("/", listPenguinsHandler(svc, log))

		pr.Get("/{penguinID}", getPenguinHandler(svc, log))
		pr.Put("/{penguinID}", updatePenguinHandler(svc, log))
		pr.Delete("/{penguinID}", deletePenguinHandler(svc, log))
	})
}

type createPenguinRequest struct {
	Species     string `json:"species" example:"Emperor"`
	FirstName   string `json:"firstName" example:"Pingu"`
	Description string `json:"description,omitempty" example:"likes to slide on the ice"`
	Gender      string `json:"gender,omitempty" example:"male"`
}

type updatePenguinRequest struct {
	// Punteros para update parcial: nil = no tocar.
	Species     *string `json:"species"`
	FirstName   *string `json:"firstName"`
	Description *string `json:"description"`
	Gender      *string `json:"gender"`
}

type penguinResponse struct {
	ID          string    `json:"id"`
	Species     string    `json:"species"`
	FirstName   string    `json:"firstName"`
	Description string    `json:"description,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type errorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// createPenguinHandler godoc
// @Summary      Create a penguin
// @Tags         penguins
// @Accept       json
// @Produce      json
// @Param        penguin  body      createPenguinRequest  true  "species and firstName are required"
// @Success      200      {object}  penguinResponse
// @Failure      400      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /api/penguins [post]
func createPenguinHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPenguinRequest
		if err := decodeJSON(w, r, &req); err != nil {
			log.Info("POST - responding with a 400 status code - invalid json", map[string]any{"error": err.Error()})
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if strings.TrimSpace(req.Species) == "" {
			log.Info("POST - responding with a 400 status code - species is required", nil)
			writeError(w, http.StatusBadRequest, "species is required")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Species:     req.Species,
			FirstName:   req.FirstName,
			Description: req.Description,
			Gender:      req.Gender,
		})
		if err != nil {
			respondError(w, log, http.MethodPost, "", err)
			return
		}

		log.Info("POST - responding with a 200 status code", map[string]any{"penguin_id": p.ID})
		writeJSON(w, http.StatusOK, toPenguinResponse(p))
	}
}

// listPenguinsHandler godoc
// @Summary      List all penguins
// @Tags         penguins
// @Produce      json
// @Success      200  {array}   penguinResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/penguins [get]
func listPenguinsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respondError(w, log, http.MethodGet, "", err)
			return
		}

		out := make([]penguinResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPenguinResponse(p))
		}

		log.Info("GET - responding with a 200 status code", map[string]any{"count": len(out)})
		writeJSON(w, http.StatusOK, out)
	}
}

// getPenguinHandler godoc
// @Summary      Get a penguin by id
// @Tags         penguins
// @Produce      json
// @Param        penguinID  path      string  true  "penguin id (UUID)"
// @Success      200        {object}  penguinResponse
// @Failure      404        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/penguins/{penguinID} [get]
func getPenguinHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "penguinID")

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondError(w, log, http.MethodGet, id, err)
			return
		}

		log.Info("GET - responding with a 200 status code", map[string]any{"penguin_id": p.ID})
		writeJSON(w, http.StatusOK, toPenguinResponse(p))
	}
}

// updatePenguinHandler godoc
// @Summary      Update a penguin
// @Description  Only the supplied fields are replaced; they are validated with the creation rules.
// @Tags         penguins
// @Accept       json
// @Produce      json
// @Param        penguinID  path      string                true  "penguin id (UUID)"
// @Param        penguin    body      updatePenguinRequest  true  "fields to replace"
// @Success      200        {object}  penguinResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/penguins/{penguinID} [put]
func updatePenguinHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "penguinID")

		var req updatePenguinRequest
		if err := decodeJSON(w, r, &req); err != nil {
			log.Info("PUT - responding with a 400 status code - invalid json", map[string]any{"error": err.Error()})
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		updated, err := svc.Update(r.Context(), id, Patch{
			Species:     req.Species,
			FirstName:   req.FirstName,
			Description: req.Description,
			Gender:      req.Gender,
		})
		if err != nil {
			respondError(w, log, http.MethodPut, id, err)
			return
		}

		log.Info("PUT - responding with a 200 status code", map[string]any{"penguin_id": updated.ID})
		writeJSON(w, http.StatusOK, toPenguinResponse(updated))
	}
}

// deletePenguinHandler godoc
// @Summary      Delete a penguin
// @Tags         penguins
// @Param        penguinID  path  string  true  "penguin id (UUID)"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/penguins/{penguinID} [delete]
func deletePenguinHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "penguinID")

		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, log, http.MethodDelete, id, err)
			return
		}

		log.Info("DELETE - responding with a 204 status code", map[string]any{"penguin_id": id})
		w.WriteHeader(http.StatusNoContent)
	}
}

// respondError traduce el kind del error a status. Los errores inesperados
// se loguean completos y al cliente solo le llega "internal error".
func respondError(w http.ResponseWriter, log logger.Logger, method, id string, err error) {
	fields := map[string]any{}
	if id != "" {
		fields["penguin_id"] = id
	}

	switch KindOf(err) {
	case KindValidation:
		var ve ValidationErrors
		errors.As(err, &ve)
		fields["error"] = err.Error()
		log.Info(fmt.Sprintf("%s - responding with a 400 status code - validation failed", method), fields)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: ve})

	case KindNotFound, KindInvalidID:
		log.Info(fmt.Sprintf("%s - responding with a 404 status code - (!penguin)", method), fields)
		writeError(w, http.StatusNotFound, "penguin not found")

	default:
		fields["error"] = err.Error()
		log.Error(fmt.Sprintf("%s - responding with a 500 status code", method), fields)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON acepta body vacío como objeto vacío (PUT sin campos = no-op).
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func toPenguinResponse(p Penguin) penguinResponse {
	return penguinResponse{
		ID:          p.ID,
		Species:     p.Species,
		FirstName:   p.FirstName,
		Description: p.Description,
		Gender:      p.Gender,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
