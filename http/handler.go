package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/reeljournal/wikifilm"
)

// errorResponse is the wire shape of every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// handleLookup decodes a search request, runs the pipeline in the mode
// the caller asked for, and writes the JSON result.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()

	var req wikifilm.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, wikifilm.Errorf(wikifilm.EINVALID, "invalid request body: %v", err))
		return
	}

	var result any
	var err error
	if req.FullContent {
		result, err = s.Articles.Lookup(r.Context(), req)
	} else {
		result, err = s.Articles.LookupLegacy(r.Context(), req)
	}

	s.Logger.Info("wikipedia lookup",
		"title", req.Title,
		"year", req.Year,
		"mediaType", req.MediaType,
		"fullContent", req.FullContent,
		"duration", time.Since(begin),
		"err", err,
	)

	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// writeError maps domain error codes to HTTP statuses. Not-found keeps
// its dedicated wire code so clients can render a "couldn't find this on
// Wikipedia" state instead of a hard failure.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := wikifilm.ErrorCode(err)
	message := wikifilm.ErrorMessage(err)

	switch code {
	case wikifilm.ENOTFOUND:
		s.writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: "No Wikipedia article found for this title",
		})
	case wikifilm.EINVALID:
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
	default:
		s.Logger.Error("wikipedia lookup failed", "path", r.URL.Path, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: message})
	}
}

// writeJSON serializes v with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encoding response", "err", err)
	}
}
