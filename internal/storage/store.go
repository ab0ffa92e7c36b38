package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

// Store определяет интерфейс хранилища снимков мира. Снимки адресуются по
// имени ("world", "world-autosave"...), значение, байты от Codec.
type Store interface {
	// Save записывает снимок под именем name, заменяя прежний.
	Save(ctx context.Context, name string, data []byte) error

	// Load читает снимок. bool == false, если снимка нет.
	Load(ctx context.Context, name string) ([]byte, bool, error)

	// Delete удаляет снимок; отсутствие снимка не ошибка.
	Delete(ctx context.Context, name string) error

	// List возвращает имена всех снимков по алфавиту.
	List(ctx context.Context) ([]string, error)

	Close() error
}

// Options выбирает реализацию Store.
type Options struct {
	Driver    string // memory | badger | redis
	Path      string
	RedisAddr string
}

// Open создаёт хранилище по настройкам.
func Open(opts Options) (Store, error) {
	switch opts.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "badger":
		return NewBadgerStore(opts.Path)
	case "redis":
		cfg := DefaultRedisConfig()
		if opts.RedisAddr != "" {
			cfg.Addr = opts.RedisAddr
		}
		return NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("неизвестный драйвер хранилища: %q", opts.Driver)
	}
}

// Snapshots связывает Store и Codec.
type Snapshots struct {
	store Store
	codec *Codec
}

func NewSnapshots(store Store, codec *Codec) *Snapshots {
	return &Snapshots{store: store, codec: codec}
}

// Save кодирует и записывает снимок.
func (s *Snapshots) Save(ctx context.Context, name string, snap *Snapshot) error {
	data, err := s.codec.Encode(snap)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := s.store.Save(ctx, name, data); err != nil {
		return fmt.Errorf("сохранение снимка %s: %w", name, err)
	}
	log.Debug("💾 Снимок %s (тик %d, %d узлов, %d байт) сохранён за %v",
		name, snap.Tick, len(snap.Nodes), len(data), time.Since(start))
	return nil
}

// Load читает снимок и восстанавливает мир. Если снимка нет, возвращает
// nil, 0, nil.
func (s *Snapshots) Load(ctx context.Context, name string) (*world.World, uint64, error) {
	data, ok, err := s.store.Load(ctx, name)
	if err != nil || !ok {
		return nil, 0, err
	}
	snap, err := s.codec.Decode(data)
	if err != nil {
		return nil, 0, err
	}
	w, err := Restore(snap)
	if err != nil {
		return nil, 0, fmt.Errorf("восстановление снимка %s: %w", name, err)
	}
	return w, snap.Tick, nil
}
