package broadcast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-info/internal/model"
)

// fakeSubscriber 记录收到的消息，可配置写失败
type fakeSubscriber struct {
	messages []*Message
	failing  bool
	closed   bool
}

func (f *fakeSubscriber) WriteJSON(v interface{}) error {
	if f.failing {
		return errors.New("write failed")
	}
	f.messages = append(f.messages, v.(*Message))
	return nil
}

func (f *fakeSubscriber) Close() error {
	f.closed = true
	return nil
}

func testRecord() *model.TrafficRecord {
	return &model.TrafficRecord{
		Timestamp:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Domain:        "github.com",
		Protocol:      "HTTPS",
		UploadBytes:   100,
		DownloadBytes: 200,
	}
}

func TestBroadcastDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()
	first := &fakeSubscriber{}
	second := &fakeSubscriber{}
	hub.Register(first)
	hub.Register(second)

	record := testRecord()
	hub.Broadcast(record)

	for _, sub := range []*fakeSubscriber{first, second} {
		require.Len(t, sub.messages, 1)
		assert.Equal(t, MessageTypeTrafficUpdate, sub.messages[0].Type)
		assert.Equal(t, record, sub.messages[0].Data)
	}
}

func TestBroadcastDropsFailingSubscriber(t *testing.T) {
	hub := NewHub()
	healthy := &fakeSubscriber{}
	broken := &fakeSubscriber{failing: true}
	hub.Register(broken)
	hub.Register(healthy)

	// 一个订阅者写失败不影响其他订阅者
	hub.Broadcast(testRecord())
	require.Len(t, healthy.messages, 1)
	assert.True(t, broken.closed)
	assert.Equal(t, 1, hub.Count())

	// 失败的订阅者已被摘除，下一次推送正常
	hub.Broadcast(testRecord())
	assert.Len(t, healthy.messages, 2)
}

func TestUnregister(t *testing.T) {
	hub := NewHub()
	sub := &fakeSubscriber{}

	hub.Register(sub)
	assert.Equal(t, 1, hub.Count())

	hub.Unregister(sub)
	assert.Equal(t, 0, hub.Count())

	hub.Broadcast(testRecord())
	assert.Empty(t, sub.messages)
}
