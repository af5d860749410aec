package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ProfileOmitsPassword(t *testing.T) {
	u := User{Email: "a@b.com", Password: "secret1", FirstName: "A", LastName: "B"}

	p := u.Profile()
	assert.Equal(t, Profile{Email: "a@b.com", FirstName: "A", LastName: "B"}, p)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.JSONEq(t, `{"email":"a@b.com","firstName":"A","lastName":"B"}`, string(raw))
}

func TestProfile_Valid(t *testing.T) {
	assert.True(t, Profile{Email: "a@b.com"}.Valid())
	assert.False(t, Profile{FirstName: "A"}.Valid())
}
