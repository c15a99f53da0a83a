package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	Swagger string `json:"swagger"`
	Info    struct {
		Title string `json:"title"`
	} `json:"info"`
	Paths       map[string]map[string]swaggerOp `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]any `json:"properties"`
	} `json:"definitions"`
}

type swaggerOp struct {
	Tags      []string       `json:"tags"`
	Responses map[string]any `json:"responses"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()

	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "registered document must be valid JSON")
	return doc
}

func TestDocRegistered(t *testing.T) {
	doc := readDoc(t)

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Booking Backend API", doc.Info.Title)
}

func TestDocMatchesRoutes(t *testing.T) {
	doc := readDoc(t)

	want := map[string]string{
		"/api/book": "post",
		"/health":   "get",
		"/ready":    "get",
		"/live":     "get",
	}
	assert.Len(t, doc.Paths, len(want))
	for path, method := range want {
		op, ok := doc.Paths[path][method]
		if assert.True(t, ok, "%s %s missing", method, path) {
			assert.NotEmpty(t, op.Tags, path)
		}
	}

	book := doc.Paths["/api/book"]["post"]
	for _, code := range []string{"200", "400", "409", "413", "429", "500"} {
		assert.Contains(t, book.Responses, code)
	}
}

func TestDocDefinitions(t *testing.T) {
	doc := readDoc(t)

	bookResp, ok := doc.Definitions["http.bookResp"]
	require.True(t, ok)
	for _, field := range []string{"ok", "eventId", "htmlLink"} {
		assert.Contains(t, bookResp.Properties, field)
	}

	errResp, ok := doc.Definitions["response.ErrorResp"]
	require.True(t, ok)
	assert.Contains(t, errResp.Properties, "error")
}
