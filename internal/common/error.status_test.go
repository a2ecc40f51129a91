package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// Update/FindOne không khớp document phải ra 404, không phải 500.
func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	assert.ErrorIs(t, err, ErrNotFound, "ErrNoDocuments phải chuyển thành ErrNotFound")

	// Kể cả khi bị wrap ở tầng giữa
	wrapped := fmt.Errorf("decode result: %w", mongo.ErrNoDocuments)
	err = ConvertMongoError(wrapped)
	assert.ErrorIs(t, err, ErrNotFound, "ErrNoDocuments bị wrap vẫn phải chuyển thành ErrNotFound")

	var customErr *Error
	require.True(t, errors.As(err, &customErr), "Kết quả phải là *common.Error")
	assert.Equal(t, StatusNotFound, customErr.StatusCode, "Status code phải là 404")
}

// ErrNotFound đã chuẩn hóa thì giữ nguyên, không convert tiếp.
func TestConvertMongoError_PassThroughNotFound(t *testing.T) {
	err := ConvertMongoError(ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound, "ErrNotFound phải được giữ nguyên")
}

// Lỗi không nhận dạng được vẫn là lỗi hệ thống 500.
func TestConvertMongoError_UnknownError(t *testing.T) {
	err := ConvertMongoError(errors.New("connection reset by peer"))

	var customErr *Error
	require.True(t, errors.As(err, &customErr), "Kết quả phải là *common.Error")
	assert.Equal(t, StatusInternalServerError, customErr.StatusCode, "Lỗi không nhận dạng phải là 500")
	assert.NotErrorIs(t, err, ErrNotFound, "Lỗi không nhận dạng không được map thành 404")
}

func TestConvertMongoError_Nil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil), "nil phải trả về nil")
}
