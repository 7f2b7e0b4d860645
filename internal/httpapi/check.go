package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/zaki1905/kirchhoff/internal/submission"
)

type equationsRequest struct {
	Set     int    `json:"set"`
	Name    string `json:"name"`
	Comment string `json:"comment"`

	// Equations holds the three typed Kirchhoff equations, junction rule
	// first by convention though any order is accepted.
	Equations []string `json:"equations"`
}

func (s *Server) handleCheckEquations(w http.ResponseWriter, r *http.Request) {
	var req equationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Equations) != 3 {
		http.Error(w, "equations must hold exactly 3 entries", http.StatusBadRequest)
		return
	}

	in := submission.EquationsInput{
		SetID:   req.Set,
		Name:    req.Name,
		Comment: req.Comment,
	}
	copy(in.Equations[:], req.Equations)

	out, err := s.svc.CheckEquations(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type currentsRequest struct {
	Set     int    `json:"set"`
	Name    string `json:"name"`
	Comment string `json:"comment"`

	// I1..I3 are the submitted branch currents in milliamps.
	I1 float64 `json:"i1"`
	I2 float64 `json:"i2"`
	I3 float64 `json:"i3"`
}

func (s *Server) handleCheckCurrents(w http.ResponseWriter, r *http.Request) {
	var req currentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := s.svc.CheckCurrents(r.Context(), submission.CurrentsInput{
		SetID:   req.Set,
		Name:    req.Name,
		Comment: req.Comment,
		I1:      req.I1,
		I2:      req.I2,
		I3:      req.I3,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
