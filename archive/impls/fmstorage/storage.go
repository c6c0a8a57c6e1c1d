package fmstorage

import (
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libalgebra/archive"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

func NewFMArchiveStorage(root string, storage stg.FileStorage) archive.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		records: mwf.NewMemWithFile[map[uint64]*archive.Record, mwf.Serial, mwf.Lock](
			make(map[uint64]*archive.Record), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, "records.json"), storage),
	}
}

type fmStorageImpl struct {
	records *mwf.MemWithFile[map[uint64]*archive.Record, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Save(r *archive.Record) error {
	return impl.records.Change(func(oldM map[uint64]*archive.Record) (newM map[uint64]*archive.Record, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[uint64]*archive.Record)
		}

		if _, ok := newM[r.ID]; ok {
			err = commerr.ErrAlreadyExists

			return
		}

		newM[r.ID] = r

		return
	})
}

func (impl *fmStorageImpl) Load(id uint64) (r *archive.Record, err error) {
	impl.records.Read(func(m map[uint64]*archive.Record) {
		if rec, ok := m[id]; ok {
			r = rec
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmStorageImpl) List() (rs []*archive.Record, err error) {
	impl.records.Read(func(m map[uint64]*archive.Record) {
		for _, rec := range m {
			rs = append(rs, rec)
		}
	})

	return
}

func (impl *fmStorageImpl) Remove(id uint64) error {
	return impl.records.Change(func(oldM map[uint64]*archive.Record) (newM map[uint64]*archive.Record, err error) {
		newM = oldM

		if _, ok := newM[id]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, id)

		return
	})
}
