// Package org issues organisations: a deterministic id derived from the name, a
// random API key and the set of endpoints the generated CRUD API serves.
package org

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/http"
	"strings"
	"text/template"

	"github.com/google/uuid"
)

//go:embed templates/fastapi.py.tmpl
var fastapiTempl string

// fastapiTemplate is the parsed FastAPI application template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var fastapiTemplate = template.Must(template.New("fastapi").Parse(fastapiTempl))

// CreatedMessage is the message returned alongside a newly issued organisation.
const CreatedMessage = "Org Created Successfully!"

// userIDPlaceholder is the path parameter appended to the base url for single user routes.
const userIDPlaceholder = "{org_user_id}"

// Org is a newly issued organisation.
type Org struct {
	// SampleEndpoints maps HTTP method to the route serving it
	SampleEndpoints map[string]string `json:"sample_endpoints"`

	// Message is a human readable confirmation
	Message string `json:"message"`

	// Name is the organisation name as given
	Name string `json:"organization_name"`

	// ID is the organisation id, see [ID]
	ID string `json:"org_id"`

	// APIKey is a freshly generated key, see [NewAPIKey]
	APIKey string `json:"api_key"`

	// BaseURL is the collection route for the organisation's users
	BaseURL string `json:"base_url"`
}

// New issues an organisation for name.
//
// The id is the same every time for the same name, the API key is not.
func New(name string) Org {
	id := ID(name)
	base := BaseURL(id)

	return Org{
		Message: CreatedMessage,
		Name:    name,
		ID:      id,
		APIKey:  NewAPIKey(),
		BaseURL: base,
		SampleEndpoints: map[string]string{
			http.MethodPost:   base,
			http.MethodGet:    base + userIDPlaceholder,
			http.MethodPut:    base + userIDPlaceholder,
			http.MethodDelete: base + userIDPlaceholder,
		},
	}
}

// ID returns the organisation id for name, a version 5 UUID in the DNS namespace.
func ID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(name)).String()
}

// NewAPIKey returns a random API key, a version 4 UUID as 32 hex characters.
func NewAPIKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// BaseURL returns the users collection route for the organisation id.
func BaseURL(id string) string {
	return fmt.Sprintf("/api/org/%s/users/", id)
}

// SampleCode renders a standalone FastAPI application serving the user CRUD
// routes for the organisation id.
func SampleCode(id string) (string, error) {
	buf := &bytes.Buffer{}
	if err := fastapiTemplate.Execute(buf, struct{ OrgID string }{OrgID: id}); err != nil {
		return "", fmt.Errorf("could not render sample code: %w", err)
	}

	return buf.String(), nil
}

// FileName returns the name of the file the sample code for an organisation
// is saved as, e.g. "acme_api.py".
func FileName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "_")) + "_api.py"
}
