package asr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName_IsIdempotentAndLowercases(t *testing.T) {
	assert.Equal(t, "radius", CanonicalName("Radius"))
	assert.Equal(t, "radius", CanonicalName("RADIUS"))
	assert.Equal(t, CanonicalName("Radius"), CanonicalName(CanonicalName("Radius")))
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"radius", false},
		{"area_2", false},
		{"$block_1", false},
		{"$associate_3", false},
		{"~~op~~+", false},
		{"~~op~~.dot.", false},
		{"", true},
		{"bad name", true},
		{"bad-name", true},
	}
	for _, tc := range cases {
		err := ValidateName(tc.name)
		if tc.wantErr {
			assert.Error(t, err, tc.name)
		} else {
			assert.NoError(t, err, tc.name)
		}
	}
}
