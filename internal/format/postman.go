package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.followtheprocess.codes/scaffold/internal/spec"
)

// ErrMalformedCollection is returned (wrapped) when an imported document cannot
// yield a usable request: it's not a collection, it has no items, or one of the
// first item's headers is missing its key or value.
var ErrMalformedCollection = errors.New("malformed collection")

// Collection is the subset of a Postman v2 collection that scaffold reads.
//
// Everything not declared here is ignored, and of the items only the first
// is ever consulted.
type Collection struct {
	Info  CollectionInfo `json:"info"`
	Items []Item         `json:"item"`
}

// CollectionInfo is the collection metadata block.
type CollectionInfo struct {
	Name   string `json:"name,omitempty"`
	Schema string `json:"schema,omitempty"`
}

// Item is a single entry in a collection.
type Item struct {
	Name    *string         `json:"name,omitempty"`
	Request *PostmanRequest `json:"request,omitempty"`
}

// PostmanRequest is the request block of a collection item.
//
// Fields are pointers or raw JSON so that absent values can be told apart from
// empty ones.
type PostmanRequest struct {
	Method *string         `json:"method,omitempty"`
	Body   *PostmanBody    `json:"body,omitempty"`
	URL    json.RawMessage `json:"url,omitempty"`
	Header []PostmanHeader `json:"header,omitempty"`
}

// PostmanHeader is a single request header entry.
type PostmanHeader struct {
	Key   *string `json:"key,omitempty"`
	Value *string `json:"value,omitempty"`
}

// PostmanBody is the request body block, only raw mode is supported.
type PostmanBody struct {
	Raw  *string `json:"raw,omitempty"`
	Mode string  `json:"mode,omitempty"`
}

// postmanURL is the object form of a collection request url.
type postmanURL struct {
	Raw *string `json:"raw"`
}

// PostmanImporter is an [Importer] that reads a Postman collection and normalises
// its first request into a [spec.Request].
type PostmanImporter struct{}

// Import implements [Importer] for [PostmanImporter].
func (p PostmanImporter) Import(r io.Reader) (spec.Request, error) {
	var collection Collection

	if err := json.NewDecoder(r).Decode(&collection); err != nil {
		return spec.Request{}, fmt.Errorf("%w: could not decode JSON: %w", ErrMalformedCollection, err)
	}

	return Normalise(collection)
}

// Normalise extracts the canonical request descriptor from the first item of
// the collection, applying the defaults from package spec for anything absent.
//
// An empty collection, a first item with no request or a header entry lacking
// either key or value is an error wrapping [ErrMalformedCollection].
func Normalise(collection Collection) (spec.Request, error) {
	if len(collection.Items) == 0 {
		return spec.Request{}, fmt.Errorf("%w: collection has no items", ErrMalformedCollection)
	}

	item := collection.Items[0]

	if item.Request == nil {
		return spec.Request{}, fmt.Errorf("%w: first item has no request", ErrMalformedCollection)
	}

	request := spec.Request{
		Name:    spec.DefaultName,
		Method:  spec.DefaultMethod,
		URL:     rawURL(item.Request.URL),
		Headers: make(map[string]string, len(item.Request.Header)),
		Body:    spec.Body{},
	}

	if item.Name != nil {
		request.Name = *item.Name
	}

	if item.Request.Method != nil {
		request.Method = *item.Request.Method
	}

	for index, header := range item.Request.Header {
		switch {
		case header.Key == nil:
			return spec.Request{}, fmt.Errorf("%w: header %d has no key", ErrMalformedCollection, index)
		case header.Value == nil:
			return spec.Request{}, fmt.Errorf("%w: header %q has no value", ErrMalformedCollection, *header.Key)
		}

		request.Headers[*header.Key] = *header.Value
	}

	if item.Request.Body != nil && item.Request.Body.Raw != nil {
		request.Body = spec.Body(*item.Request.Body.Raw)
	}

	return request, nil
}

// rawURL resolves the url of a collection request, which may be the url object
// with a "raw" field or, in v2.1 collections, a plain string.
//
// Anything else, or a missing raw field, gives [spec.DefaultURL].
func rawURL(data json.RawMessage) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return spec.DefaultURL
	}

	switch data[0] {
	case '"':
		var url string
		if err := json.Unmarshal(data, &url); err != nil {
			return spec.DefaultURL
		}

		return url
	case '{':
		var url postmanURL
		if err := json.Unmarshal(data, &url); err != nil || url.Raw == nil {
			return spec.DefaultURL
		}

		return *url.Raw
	default:
		return spec.DefaultURL
	}
}
