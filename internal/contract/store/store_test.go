package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/leasedesk/internal/contract/store"
)

func TestID(t *testing.T) {
	assert.Equal(t, "C-42", store.FormatID(42))

	id, err := store.ParseID("C-42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = store.ParseID("42")
	assert.Error(t, err)

	_, err = store.ParseID("C-x")
	assert.Error(t, err)
}
