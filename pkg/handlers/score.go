package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/schemascore/schemascore-engine/pkg/apperrors"
	"github.com/schemascore/schemascore-engine/pkg/logging"
	"github.com/schemascore/schemascore-engine/pkg/models"
	"github.com/schemascore/schemascore-engine/pkg/services"
)

// scoreSchemaRequest is the POST /score_schema request body. Schema is kept
// raw so a missing key (400) can be told apart from a present-but-malformed
// one (422).
type scoreSchemaRequest struct {
	Schema              json.RawMessage    `json:"schema"`
	WeightsOverride     map[string]float64 `json:"weights_override"`
	SimilarityThreshold *float64           `json:"similarity_threshold"`
}

// ScoreHandler handles schema scoring HTTP requests.
type ScoreHandler struct {
	scoring *services.ScoringService
	logger  *zap.Logger
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(scoring *services.ScoringService, logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{scoring: scoring, logger: logger}
}

// RegisterRoutes registers the score handler's routes on the given mux.
func (h *ScoreHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /score_schema", h.ScoreSchema)
}

// ScoreSchema handles POST /score_schema.
// Scores the submitted schema on naming quality, description presence,
// name similarity, type presence, and key presence, and returns the full
// breakdown with the penalized-fields report.
func (h *ScoreHandler) ScoreSchema(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(zap.String("request_id", uuid.NewString()))

	var req scoreSchemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request body", zap.String("error", logging.SanitizeError(err)))
		if err := ErrorResponse(w, http.StatusBadRequest, "bad_request", "Request body is not valid JSON"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if req.Schema == nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "bad_request", "No schema provided in the request body"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	var schema []models.ColumnDescriptor
	// json.Unmarshal accepts a literal null into a slice; a present-but-null
	// schema is the non-list case, not an absent key.
	if string(req.Schema) == "null" {
		if err := ErrorResponse(w, http.StatusUnprocessableEntity, "invalid_format", "The \"schema\" field must be a list of column descriptors"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(req.Schema, &schema); err != nil {
		logger.Warn("Schema field is not a list of column descriptors", zap.String("error", logging.SanitizeError(err)))
		if err := ErrorResponse(w, http.StatusUnprocessableEntity, "invalid_format", "The \"schema\" field must be a list of column descriptors"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	logger.Info("Scoring schema",
		zap.Int("columns", len(schema)),
		zap.Bool("weights_override", req.WeightsOverride != nil),
		zap.Bool("similarity_threshold_override", req.SimilarityThreshold != nil))

	breakdown, err := h.scoring.Score(schema, services.ScoreOptions{
		WeightsOverride:     req.WeightsOverride,
		SimilarityThreshold: req.SimilarityThreshold,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidWeights):
			if err := ErrorResponse(w, http.StatusUnprocessableEntity, "invalid_weights", err.Error()); err != nil {
				logger.Error("Failed to write error response", zap.Error(err))
			}
		case errors.Is(err, apperrors.ErrInvalidSchema):
			if err := ErrorResponse(w, http.StatusUnprocessableEntity, "invalid_schema", err.Error()); err != nil {
				logger.Error("Failed to write error response", zap.Error(err))
			}
		default:
			logger.Error("Scoring failed", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "An internal error has occurred"); err != nil {
				logger.Error("Failed to write error response", zap.Error(err))
			}
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, breakdown); err != nil {
		logger.Error("Failed to encode score response", zap.Error(err))
	}
}
