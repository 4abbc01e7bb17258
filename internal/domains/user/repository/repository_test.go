package repository_test

import (
	"rideflow/internal/domains/user/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailFilter(t *testing.T) {
	filter := repository.EmailFilter("asha@example.com")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(users.email = :email)", where)
	assert.Equal(t, map[string]any{"email": "asha@example.com"}, args)
}
