// Package creditsvc - Test bảng chi phí và quy đổi ngân sách sang credit.
package creditsvc

import (
	"errors"
	"testing"

	creditmodels "adcraft/internal/api/credit/models"
	"adcraft/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCostFor(t *testing.T) {
	cases := []struct {
		operation string
		cost      int64
	}{
		{creditmodels.CreditOpCaption, 5},
		{creditmodels.CreditOpImage, 5},
		{creditmodels.CreditOpScript, 10},
		{creditmodels.CreditOpVideo, 10},
	}
	for _, tc := range cases {
		cost, err := CostFor(tc.operation)
		require.NoError(t, err, "operation %q", tc.operation)
		assert.Equal(t, tc.cost, cost, "chi phí cho %q", tc.operation)
	}
}

func TestCostFor_UnknownOperation(t *testing.T) {
	_, err := CostFor("hologram")
	assert.Error(t, err)
}

func TestCalcCredits_Brackets(t *testing.T) {
	cases := []struct {
		budget  float64
		credits int64
	}{
		{0, 0},
		{-50, 0},
		{100, 90},     // dưới 200: hệ số 0.9
		{199, 179},    // floor(199 * 0.9) = 179
		{199.99, 179}, // sát biên vẫn thuộc bậc dưới
		{200, 200},    // biên dưới của bậc 1.0
		{350, 350},
		{499.99, 499}, // floor ngay dưới biên 500
		{500, 600},    // biên dưới của bậc 1.2
		{1000, 1200},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.credits, CalcCredits(tc.budget), "credit cho ngân sách %v", tc.budget)
	}
}

func TestCalcCredits_FloorsFractional(t *testing.T) {
	// 150.5 * 0.9 = 135.45 → 135
	assert.Equal(t, int64(135), CalcCredits(150.5))
	// 500.5 * 1.2 = 600.6 → 600
	assert.Equal(t, int64(600), CalcCredits(500.5))
}

// Chỉ lỗi "không match filter" mới được disambiguate thành hết credit / 404;
// lỗi DB thật (timeout, mất kết nối) phải giữ nguyên.
func TestIsFilterMiss(t *testing.T) {
	assert.True(t, isFilterMiss(common.ErrNotFound), "ErrNotFound là filter miss")
	assert.True(t, isFilterMiss(common.ConvertMongoError(mongo.ErrNoDocuments)),
		"ErrNoDocuments đã convert cũng là filter miss")

	assert.False(t, isFilterMiss(common.ErrMongoTimeout), "Timeout không phải filter miss")
	assert.False(t, isFilterMiss(common.ErrMongoConnection), "Lỗi kết nối không phải filter miss")
	assert.False(t, isFilterMiss(errors.New("socket closed")), "Lỗi lạ không phải filter miss")
}
