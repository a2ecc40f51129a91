// Package events - Test phát và nhận sự kiện thay đổi dữ liệu.
package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmitDataChanged_DeliversToHandler(t *testing.T) {
	received := make(chan DataChangeEvent, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		received <- e
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "campaigns",
		Operation:      OpUpdate,
	})

	select {
	case e := <-received:
		assert.Equal(t, "campaigns", e.CollectionName)
		assert.Equal(t, OpUpdate, e.Operation)
	case <-time.After(2 * time.Second):
		t.Fatal("handler không nhận được event")
	}
}

func TestEmitDataChanged_PanickingHandlerDoesNotBlockOthers(t *testing.T) {
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.Operation == OpDelete {
			panic("handler lỗi")
		}
	})
	received := make(chan struct{}, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.Operation == OpDelete {
			received <- struct{}{}
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "captions",
		Operation:      OpDelete,
	})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("handler thứ hai không chạy khi handler khác panic")
	}
}
