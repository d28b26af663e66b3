package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	cases := []struct {
		name     string
		password string
	}{
		{name: "common password", password: "password123"},
		{name: "special characters", password: "p@$$w0rd!#%&*()_+"},
		{name: "long password", password: "averylongpasswordwithlotsofcharacters1234567890!@#"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := HashPassword(tc.password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tc.password, hash)

			assert.True(t, CheckPasswordHash(tc.password, hash))
			assert.False(t, CheckPasswordHash(tc.password+"wrong", hash))
		})
	}
}
