package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/AnglerBot_Go/internal/domain"
	"github.com/osse101/AnglerBot_Go/internal/fishing"
)

// CatchHandler exposes the catch calculator over HTTP
type CatchHandler struct {
	service fishing.Service
}

// NewCatchHandler creates a new catch handler
func NewCatchHandler(service fishing.Service) *CatchHandler {
	return &CatchHandler{service: service}
}

// HandleResolve resolves a single catch attempt
// @Summary Resolve a catch attempt
// @Description Computes success, quality, perfection and treasure capture for one attempt
// @Tags catch
// @Accept json
// @Produce json
// @Param request body domain.CatchRequest true "Catch attempt"
// @Success 200 {object} domain.CatchResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/catch/resolve [post]
func (h *CatchHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req domain.CatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Resolve catch"); err != nil {
		return
	}

	result, err := h.service.Resolve(r.Context(), &req)
	if err != nil {
		status, msg := mapServiceError(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandlePreview reports the probability model for given inputs
// @Summary Preview catch probabilities
// @Description Computes strength and the three attempt probabilities without rolling
// @Tags catch
// @Produce json
// @Param difficulty query int true "Fish difficulty"
// @Param level query int false "Fishing level"
// @Param cork_bobbers query int false "Cork bobber count"
// @Param lead_lures query int false "Lead lure count"
// @Param master_cast query bool false "Master cast flag"
// @Param training_rod query bool false "Training rod flag"
// @Param treasure query bool false "Treasure chest present"
// @Success 200 {object} domain.CatchPreview
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/catch/preview [get]
func (h *CatchHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("difficulty") == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "difficulty"))
		return
	}
	difficulty, err := strconv.Atoi(q.Get("difficulty"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "difficulty"))
		return
	}

	tackle, err := tackleFromQuery(q.Get("level"), q.Get("cork_bobbers"), q.Get("lead_lures"), q.Get("master_cast"), q.Get("training_rod"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	hasTreasure := q.Get("treasure") == "true"

	preview := h.service.Preview(r.Context(), tackle, difficulty, hasTreasure)
	respondJSON(w, http.StatusOK, preview)
}

// tackleFromQuery assembles a TackleProfile from optional query params.
// All-empty input yields a nil profile, exercising the bare-rod floor.
func tackleFromQuery(level, corks, lures, master, training string) (*domain.TackleProfile, error) {
	if level == "" && corks == "" && lures == "" && master == "" && training == "" {
		return nil, nil
	}

	profile := &domain.TackleProfile{}

	if level != "" {
		n, err := strconv.Atoi(level)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidQueryParam, "level")
		}
		profile.FishingLevel = n
	}

	for _, slot := range []struct {
		raw        string
		attachment domain.Attachment
	}{
		{corks, domain.AttachmentCorkBobber},
		{lures, domain.AttachmentLeadLure},
	} {
		if slot.raw == "" {
			continue
		}
		n, err := strconv.Atoi(slot.raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf(ErrMsgInvalidQueryParam, "attachment count")
		}
		for i := 0; i < n; i++ {
			profile.Attachments = append(profile.Attachments, slot.attachment)
		}
	}

	profile.MasterCast = master == "true"
	profile.TrainingRod = training == "true"

	return profile, nil
}
