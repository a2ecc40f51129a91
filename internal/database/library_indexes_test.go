package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Index đã tồn tại không được coi là lỗi khi khởi động lại server.
func TestIsIndexExistsError(t *testing.T) {
	assert.True(t, isIndexExistsError(errors.New("Index with name 'caption_campaign_created' already exists")))
	assert.True(t, isIndexExistsError(errors.New("(IndexKeySpecsConflict) duplicate index")))

	assert.False(t, isIndexExistsError(nil))
	assert.False(t, isIndexExistsError(errors.New("connection refused")), "lỗi kết nối phải được trả về")
}
