package selx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldNamingConvention(t *testing.T) {
	id := Identity{Component: "form-1", Field: "city"}
	assert.Equal(t, "city", id.ValueField())
	assert.Equal(t, "city_text_input", id.TextField())
	assert.Equal(t, "form-1/city", id.String())
}
