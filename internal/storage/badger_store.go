package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

const badgerPrefix = "snapshot:"

// BadgerStore хранит снимки в BadgerDB.
type BadgerStore struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool
}

// NewBadgerStore открывает (или создаёт) базу в каталоге dbPath.
func NewBadgerStore(dbPath string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	log.Info("💽 BadgerDB открыта: %s", dbPath)
	return &BadgerStore{
		db:      db,
		dbPath:  dbPath,
		isReady: true,
	}, nil
}

// Close закрывает хранилище данных
func (bs *BadgerStore) Close() error {
	bs.mutex.Lock()
	defer bs.mutex.Unlock()

	if !bs.isReady {
		return nil
	}

	bs.isReady = false
	return bs.db.Close()
}

func (bs *BadgerStore) ready() error {
	if !bs.isReady {
		return fmt.Errorf("хранилище не готово")
	}
	return nil
}

// Save сохраняет снимок
func (bs *BadgerStore) Save(ctx context.Context, name string, data []byte) error {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	if err := bs.ready(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerPrefix+name), data)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}
	return nil
}

// Load загружает снимок
func (bs *BadgerStore) Load(ctx context.Context, name string) ([]byte, bool, error) {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	if err := bs.ready(); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var data []byte
	err := bs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerPrefix + name))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}
	return data, true, nil
}

// Delete удаляет снимок
func (bs *BadgerStore) Delete(ctx context.Context, name string) error {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	if err := bs.ready(); err != nil {
		return err
	}
	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(badgerPrefix + name))
	})
}

// List перечисляет имена снимков по префиксу ключа
func (bs *BadgerStore) List(ctx context.Context) ([]string, error) {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	if err := bs.ready(); err != nil {
		return nil, err
	}

	var names []string
	err := bs.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(badgerPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), badgerPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}
	return names, nil
}
