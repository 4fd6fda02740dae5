package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Host  string                    `json:"host"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec), "rendered template must be valid JSON")

	assert.Equal(t, "Autonomous Barman API", spec.Info.Title)
	assert.Equal(t, "localhost:8080", spec.Host)
	assert.Contains(t, spec.Paths["/api/v1/chat"], "post")
	assert.Contains(t, spec.Paths["/api/v1/cocktails"], "get")
	assert.Contains(t, spec.Paths["/api/v1/dispenser/status"], "get")
}
