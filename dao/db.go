package dao

import (
	"sync"
	"time"

	"github.com/asdine/storm/v3"
	bolt "go.etcd.io/bbolt"
)

var (
	once     sync.Once
	instance *storm.DB
)

//GetClient opens the submission store once and returns the shared client.
//The file is created on first use.
func GetClient(dbFilePath string) (*storm.DB, error) {
	var err error

	once.Do(func() {
		instance, err = storm.Open(dbFilePath, storm.BoltOptions(0600, &bolt.Options{Timeout: 10 * time.Second, ReadOnly: false}))
	})

	return instance, err
}
