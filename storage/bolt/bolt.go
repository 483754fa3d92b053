// Package bolt is a Storage backed by a bbolt database.
package bolt

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/storage"

	"github.com/cockroachdb/errors"
	bolt "go.etcd.io/bbolt"
)

// DefaultBucket holds all the descriptions.
var DefaultBucket = []byte("dfas")

type Storage struct {
	Debug    bool
	filename string
	bucket   []byte
	db       *bolt.DB
}

func NewStorage(filename string) (*Storage, error) {
	return &Storage{
		filename: filename,
		bucket:   DefaultBucket,
	}, nil
}

func (s *Storage) Open(ctx context.Context) error {
	opts := &bolt.Options{
		Timeout: time.Second,
	}

	db, err := bolt.Open(s.filename, 0644, opts)
	if err != nil {
		return errors.Wrapf(err, "opening %s", s.filename)
	}
	s.db = db

	return s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
}

func (s *Storage) Close(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) logf(format string, args ...interface{}) {
	if s.Debug {
		log.Printf("BoltDB Storage."+format, args...)
	}
}

func (s *Storage) Put(ctx context.Context, desc *core.Description) error {
	if err := storage.Check(desc); err != nil {
		return err
	}
	js, err := json.Marshal(desc)
	if err != nil {
		return err
	}
	s.logf("Put %s %s", desc.Name, js)
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(desc.Name), js)
	})
}

func (s *Storage) Get(ctx context.Context, name string) (*core.Description, error) {
	s.logf("Get %s", name)
	var desc *core.Description
	err := s.db.View(func(tx *bolt.Tx) error {
		js := tx.Bucket(s.bucket).Get([]byte(name))
		if js == nil {
			return storage.NotFound(name)
		}
		desc = &core.Description{}
		if err := json.Unmarshal(js, desc); err != nil {
			return errors.Wrapf(err, "decoding %s", name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return desc, nil
}

func (s *Storage) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, 32)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logf("List found %d", len(names))
	return names, nil
}

func (s *Storage) Remove(ctx context.Context, name string) error {
	s.logf("Remove %s", name)
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b.Get([]byte(name)) == nil {
			return storage.NotFound(name)
		}
		return b.Delete([]byte(name))
	})
}
