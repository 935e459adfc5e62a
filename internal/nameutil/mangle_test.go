package nameutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "shapes_area", QualifiedName("shapes", "area"))
	assert.Equal(t, "", QualifiedName("", "area"))
	assert.Equal(t, "", QualifiedName("shapes", ""))
}
