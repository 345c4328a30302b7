package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-scout/internal/conversation"
)

func TestAvailable(t *testing.T) {
	var nilStore *Store
	assert.False(t, nilStore.Available())

	assert.False(t, (&Store{}).Available())
}

func TestSaveRequiresAvailableStore(t *testing.T) {
	_, err := (&Store{}).SaveCompleteInterview(context.Background(), conversation.InterviewRecord{})
	assert.Error(t, err)
}
