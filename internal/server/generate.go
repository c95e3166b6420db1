package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
)

// generateRequest is the JSON form of a code generation request.
type generateRequest struct {
	Language   string          `json:"language"`
	Collection json.RawMessage `json:"collection"`
}

// generateResponse is the body returned from a successful code generation.
type generateResponse struct {
	Language      string `json:"language"`
	GeneratedCode string `json:"generated_code"`
}

// handleGenerateCode generates source code from an uploaded collection, either
// a multipart form with "file" and "language" fields or a JSON body.
func (s *Server) handleGenerateCode(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	collection, language, err := s.readGenerateRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	code, err := s.generator.Generate(bytes.NewReader(collection), language)
	if err != nil {
		s.logger.Debug("Code generation failed", slog.String("language", language), slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Debug("Generated code", slog.String("language", language), slog.Int("bytes", len(code)))

	writeJSON(w, http.StatusOK, generateResponse{Language: language, GeneratedCode: code})
}

// readGenerateRequest extracts the raw collection document and the target language
// from the request.
func (s *Server) readGenerateRequest(r *http.Request) ([]byte, string, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, "", fmt.Errorf("could not parse Content-Type: %w", err)
	}

	switch mediaType {
	case "application/json":
		var request generateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return nil, "", fmt.Errorf("could not decode request: %w", err)
		}

		return request.Collection, request.Language, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
			return nil, "", fmt.Errorf("could not parse form: %w", err)
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("could not read uploaded file: %w", err)
		}
		defer file.Close()

		contents, err := io.ReadAll(file)
		if err != nil {
			return nil, "", fmt.Errorf("could not read uploaded file: %w", err)
		}

		return contents, r.FormValue("language"), nil
	default:
		return nil, "", fmt.Errorf("unsupported Content-Type %q", mediaType)
	}
}
