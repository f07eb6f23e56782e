package dao

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/asdine/storm/v3"
	"github.com/gotx/contact-service/model"
	bolt "go.etcd.io/bbolt"
)

type SubmissionDao interface {
	//Put stores the record under its mission key, overwriting any previous version
	Put(record model.SubmissionRecord) error
	//GetOneByTaskId returns the record with the given task id, found is false when there is none
	GetOneByTaskId(taskId string) (model.SubmissionRecord, bool, error)
	//GetAll returns all stored submission records, skipping entries that fail to parse
	GetAll() ([]model.SubmissionRecord, error)
	//NextSequence increments the shared submission counter and returns its new value
	NextSequence() (int, error)
}

func NewSubmissionDao(db *storm.DB) SubmissionDao {
	return &submissionDao{db: db}
}

type submissionDao struct {
	db *storm.DB
}

func (d submissionDao) Put(record model.SubmissionRecord) error {
	return d.db.Set(model.Bucket, model.RecordKey(record.TaskID), &record)
}

func (d submissionDao) GetOneByTaskId(taskId string) (model.SubmissionRecord, bool, error) {
	var record model.SubmissionRecord
	err := d.db.Get(model.Bucket, model.RecordKey(taskId), &record)
	if err == storm.ErrNotFound {
		return record, false, nil
	}
	if err != nil {
		return record, false, err
	}
	return record, true, nil
}

func (d submissionDao) GetAll() ([]model.SubmissionRecord, error) {
	records := []model.SubmissionRecord{}
	prefix := []byte(model.RecordKeyPrefix)

	err := d.db.Bolt.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(model.Bucket))
		if b == nil {
			//nothing has been stored yet
			return nil
		}
		c := b.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var record model.SubmissionRecord
			if err := json.Unmarshal(v, &record); err != nil {
				continue
			}
			records = append(records, record)
		}
		return nil
	})

	return records, err
}

//NextSequence does the read-increment-write of the counter inside a single
//transaction. The counter value stays a string-encoded integer under
//stats:counter, next to the records in the same bucket.
func (d submissionDao) NextSequence() (seq int, err error) {
	err = d.db.Bolt.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(model.Bucket))
		if err != nil {
			return err
		}

		seq = 1
		if cur := b.Get([]byte(model.CounterKey)); cur != nil {
			if n, err := strconv.Atoi(string(cur)); err == nil {
				seq = n + 1
			}
		}

		return b.Put([]byte(model.CounterKey), []byte(strconv.Itoa(seq)))
	})
	return
}
