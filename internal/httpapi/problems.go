package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// problemResponse carries what the form needs to render an assignment.
// Never the solved currents.
type problemResponse struct {
	Set     int     `json:"set"`
	V1      float64 `json:"v1"`
	V2      float64 `json:"v2"`
	R1      float64 `json:"r1"`
	R2      float64 `json:"r2"`
	R3      float64 `json:"r3"`
	Diagram string  `json:"diagram,omitempty"`
}

func (s *Server) handleProblem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "problem set must be a number", http.StatusBadRequest)
		return
	}

	set, err := s.table.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := problemResponse{
		Set: set.ID,
		V1:  set.Params.V1,
		V2:  set.Params.V2,
		R1:  set.Params.R1,
		R2:  set.Params.R2,
		R3:  set.Params.R3,
	}
	if s.diagramBase != "" {
		resp.Diagram = fmt.Sprintf("%s/circuit_set_%d.png", strings.TrimRight(s.diagramBase, "/"), set.ID)
	}
	writeJSON(w, http.StatusOK, resp)
}
