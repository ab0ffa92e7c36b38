package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Codec сериализует снимки в JSON и сжимает zstd.
type Codec struct {
	mu  sync.Mutex
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCodec создаёт кодек.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Encode превращает снимок в сжатые байты.
func (c *Codec) Encode(s *Snapshot) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации снимка: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enc.EncodeAll(raw, make([]byte, 0, len(raw)/4)), nil
}

// Decode: обратное к Encode.
func (c *Codec) Decode(data []byte) (*Snapshot, error) {
	c.mu.Lock()
	raw, err := c.dec.DecodeAll(data, nil)
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("ошибка распаковки снимка: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("ошибка десериализации снимка: %w", err)
	}
	return &s, nil
}

// Close освобождает ресурсы декодера.
func (c *Codec) Close() {
	c.dec.Close()
	_ = c.enc.Close()
}
