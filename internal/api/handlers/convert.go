package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"chinese-numeral-converter/pkg/logger"
	"chinese-numeral-converter/pkg/numeral"
)

type FormatRequest struct {
	Value      string `json:"value"`
	Variant    string `json:"variant,omitempty"`
	Case       string `json:"case,omitempty"`
	Convention string `json:"convention,omitempty"`
}

type FormatResponse struct {
	Value            string  `json:"value"`
	Numeral          string  `json:"numeral"`
	Variant          string  `json:"variant"`
	Case             string  `json:"case"`
	Convention       string  `json:"convention"`
	ProcessingTimeMs float64 `json:"processing_time_ms"`
}

type ParseResponse struct {
	Numeral          string  `json:"numeral"`
	Value            string  `json:"value"`
	Convention       string  `json:"convention"`
	ProcessingTimeMs float64 `json:"processing_time_ms"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ConvertHandler struct {
	logger logger.Logger
}

func NewConvertHandler(log logger.Logger) *ConvertHandler {
	return &ConvertHandler{logger: log}
}

func (h *ConvertHandler) sendError(w http.ResponseWriter, statusCode int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Details: details})
}

func (h *ConvertHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

func parseVariant(s string) (numeral.Variant, error) {
	switch strings.ToLower(s) {
	case "", "traditional":
		return numeral.Traditional, nil
	case "simplified":
		return numeral.Simplified, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

func parseCase(s string) (numeral.Case, error) {
	switch strings.ToLower(s) {
	case "", "informal":
		return numeral.Informal, nil
	case "formal":
		return numeral.Formal, nil
	default:
		return 0, fmt.Errorf("unknown case %q", s)
	}
}

func parseConvention(s string) (numeral.Convention, error) {
	switch strings.ToLower(s) {
	case "", "ten-thousand", "tenthousand":
		return numeral.TenThousand, nil
	case "low":
		return numeral.Low, nil
	case "middle":
		return numeral.Middle, nil
	case "high":
		return numeral.High, nil
	default:
		return 0, fmt.Errorf("unknown convention %q", s)
	}
}

// FormatNumber renders a decimal string as a Chinese numeral phrase. The
// body value is always read as a big.Int, so the HTTP surface has no
// fixed-width ceiling of its own beyond what the chosen convention allows.
func (h *ConvertHandler) FormatNumber(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	variant, err := parseVariant(req.Variant)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid variant", err.Error())
		return
	}
	caseStyle, err := parseCase(req.Case)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid case", err.Error())
		return
	}
	convention, err := parseConvention(req.Convention)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid convention", err.Error())
		return
	}

	value, ok := new(big.Int).SetString(strings.TrimSpace(req.Value), 10)
	if !ok {
		h.sendError(w, http.StatusBadRequest, "invalid value", "value must be a base-10 integer")
		return
	}

	rendered, perr := h.safeFormat(value, variant, caseStyle, convention)
	if perr != "" {
		h.sendError(w, http.StatusBadRequest, "value cannot be rendered", perr)
		return
	}

	processingTime := float64(time.Since(startTime).Nanoseconds()) / 1e6
	h.logger.WithField("value", req.Value).
		WithField("processing_time_ms", fmt.Sprintf("%.3f", processingTime)).
		Info("number formatted")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FormatResponse{
		Value:            value.String(),
		Numeral:          rendered,
		Variant:          variant.String(),
		Case:             caseStyle.String(),
		Convention:       convention.String(),
		ProcessingTimeMs: processingTime,
	})
}

// safeFormat recovers the deliberate panic FormatSigned raises for a Low
// convention value at or above 10^16 and turns it into an ordinary error
// response instead of a 500.
func (h *ConvertHandler) safeFormat(value *big.Int, variant numeral.Variant, c numeral.Case, convention numeral.Convention) (rendered string, errMsg string) {
	defer func() {
		if rec := recover(); rec != nil {
			errMsg = fmt.Sprintf("%v", rec)
		}
	}()
	rendered = numeral.FormatSigned(value, variant, c, convention)
	return rendered, ""
}

// ParseNumber reads a Chinese numeral phrase from the query string and
// returns its decimal value.
func (h *ConvertHandler) ParseNumber(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	text := r.URL.Query().Get("numeral")
	if text == "" {
		h.sendError(w, http.StatusBadRequest, "missing numeral parameter", "")
		return
	}

	convention, err := parseConvention(r.URL.Query().Get("convention"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid convention", err.Error())
		return
	}

	value, perr := numeral.ParseSigned(text, convention)
	if perr != nil {
		h.logger.Error(fmt.Sprintf("parse failed: %v", perr))
		h.sendError(w, http.StatusBadRequest, "numeral could not be parsed", perr.Error())
		return
	}

	processingTime := float64(time.Since(startTime).Nanoseconds()) / 1e6
	h.logger.WithField("numeral", text).
		WithField("processing_time_ms", fmt.Sprintf("%.3f", processingTime)).
		Info("numeral parsed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ParseResponse{
		Numeral:          text,
		Value:            value.String(),
		Convention:       convention.String(),
		ProcessingTimeMs: processingTime,
	})
}
