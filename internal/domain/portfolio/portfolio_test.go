package portfolio

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPortfolio_Validate(t *testing.T) {
	valid := []string{"jane", "jane-doe", "jane-doe-42", "42"}
	for _, username := range valid {
		p := &Portfolio{Username: username}
		assert.NoError(t, p.Validate(), "username %q should be accepted", username)
	}

	invalid := []string{"", "Jane", "jane doe", "jane_doe", "jane.doe", "jäne"}
	for _, username := range invalid {
		p := &Portfolio{Username: username}
		assert.ErrorIs(t, p.Validate(), ErrInvalidUsername, "username %q should be rejected", username)
	}
}

func TestLookupKey_String(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, "username:jane-doe", ByUsername("jane-doe").String())
	assert.Equal(t, "id:"+id.String(), ByID(id).String())
	assert.Equal(t, "tenant:acme", ByTenant("acme").String())
}
