// Package utility - Test chuyển đổi số từ query string và json.Number.
package utility

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestP2Int64(t *testing.T) {
	assert.Equal(t, int64(42), P2Int64("42"), "query param là string")
	assert.Equal(t, int64(42), P2Int64(json.Number("42")))
	assert.Equal(t, int64(42), P2Int64(int64(42)))
	assert.Equal(t, int64(42), P2Int64(42))
	assert.Equal(t, int64(0), P2Int64("abc"), "giá trị không parse được trả về 0")
	assert.Equal(t, int64(0), P2Int64(nil))
	assert.Equal(t, int64(0), P2Int64("3.5"), "int không chấp nhận phần thập phân")
}
