package utility

import (
	"encoding/json"
	"strconv"
)

// P2Int64 chuyển đổi giá trị query param (string, json.Number hoặc số) thành int64.
// Giá trị không parse được trả về 0 để caller áp dụng default.
func P2Int64(input interface{}) int64 {
	switch v := input.(type) {
	case json.Number:
		result, err := v.Int64()
		if err != nil {
			return 0
		}
		return result
	case string:
		result, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return result
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
