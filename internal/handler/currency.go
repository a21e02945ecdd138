package handler

import (
	"net/http"
	"strconv"
)

// ConvertCurrency handles GET /api/currency/convert?amount=&from=&to=.
func (s *Server) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil {
		respondBadRequest(w, "amount must be a number")
		return
	}
	from := q.Get("from")
	to := q.Get("to")
	if from == "" || to == "" {
		respondBadRequest(w, "from and to are required")
		return
	}

	result, err := s.currency.Convert(r.Context(), amount, from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
