package spec_test

import (
	"net/http"
	"testing"

	"go.followtheprocess.codes/scaffold/internal/spec"
	"go.followtheprocess.codes/test"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string       // Name of the test case
		want    string       // Expected string form
		request spec.Request // Request under test
	}{
		{
			name: "empty",
			request: spec.Request{
				Method: http.MethodGet,
				URL:    spec.DefaultURL,
			},
			want: "###\nGET http://example.com\n",
		},
		{
			name: "named",
			request: spec.Request{
				Name:   "Get user",
				Method: http.MethodGet,
				URL:    "https://api.com/users/1",
			},
			want: "### Get user\nGET https://api.com/users/1\n",
		},
		{
			name: "headers sorted",
			request: spec.Request{
				Name:   "Headers",
				Method: http.MethodDelete,
				URL:    "https://api.com/users/1",
				Headers: map[string]string{
					"X-Trace":       "abc",
					"Accept":        "application/json",
					"Authorization": "Bearer xxxxx",
				},
			},
			want: "### Headers\nDELETE https://api.com/users/1\nAccept: application/json\nAuthorization: Bearer xxxxx\nX-Trace: abc\n",
		},
		{
			name: "with body",
			request: spec.Request{
				Name:   "Create",
				Method: "post",
				URL:    "https://api.com/users",
				Body:   spec.Body(`{"name": "Jane"}`),
			},
			want: "### Create\npost https://api.com/users\n\n{\"name\": \"Jane\"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Diff(t, tt.request.String(), tt.want)
		})
	}
}

func TestHeaderKeys(t *testing.T) {
	request := spec.Request{
		Headers: map[string]string{
			"b": "2",
			"c": "3",
			"a": "1",
		},
	}

	keys := request.HeaderKeys()

	test.Equal(t, len(keys), 3)
	test.Equal(t, keys[0], "a")
	test.Equal(t, keys[1], "b")
	test.Equal(t, keys[2], "c")

	test.Equal(t, len(spec.Request{}.HeaderKeys()), 0)
}

func TestBody(t *testing.T) {
	var body spec.Body

	test.True(t, body.IsEmpty())

	text, err := body.MarshalText()
	test.Ok(t, err)
	test.Equal(t, string(text), "")

	test.Ok(t, body.UnmarshalText([]byte("raw text")))
	test.False(t, body.IsEmpty())
	test.Equal(t, body.String(), "raw text")
}
