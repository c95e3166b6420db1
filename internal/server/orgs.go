package server

import (
	"log/slog"
	"net/http"

	"go.followtheprocess.codes/scaffold/internal/org"
)

// sampleCodeResponse is the body returned from /generate_sample_code.
type sampleCodeResponse struct {
	OrgID         string `json:"org_id"`
	OrgName       string `json:"org_name"`
	GeneratedCode string `json:"generated_code"`
}

func (s *Server) handleGenerateOrg(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	issued := org.New(name)
	s.store.CreateOrg(issued.ID)

	s.logger.Info("Issued organisation", slog.String("name", issued.Name), slog.String("org_id", issued.ID))

	writeJSON(w, http.StatusOK, issued)
}

func (s *Server) handleSampleCode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	orgID := query.Get("org_id")
	orgName := query.Get("org_name")

	if orgID == "" || orgName == "" {
		writeError(w, http.StatusBadRequest, "org_id and org_name are required")
		return
	}

	code, err := org.SampleCode(orgID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sampleCodeResponse{
		OrgID:         orgID,
		OrgName:       orgName,
		GeneratedCode: code,
	})
}
