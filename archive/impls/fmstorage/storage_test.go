package fmstorage

import (
	"os"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libalgebra/archive"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/stretchr/testify/assert"
)

const (
	utRoot = "ut-data"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestFMArchiveStorage(t *testing.T) {
	stg := NewFMArchiveStorage("archive", rawfs.NewFSStorage(utRoot))

	r := &archive.Record{
		ID:       1001,
		Label:    "factored",
		Equation: "f(x) = 1x^2 - 3x + 2",
		Kind:     "two-real",
		Roots:    []float64{2, 1},
		SolvedAt: 1700000000,
	}

	err := stg.Save(r)
	assert.Nil(t, err)

	err = stg.Save(r)
	assert.ErrorIs(t, err, commerr.ErrAlreadyExists)

	got, err := stg.Load(1001)
	assert.Nil(t, err)
	assert.EqualValues(t, r.Equation, got.Equation)
	assert.EqualValues(t, r.Roots, got.Roots)

	_, err = stg.Load(9999)
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	rs, err := stg.List()
	assert.Nil(t, err)
	assert.Len(t, rs, 1)

	err = stg.Remove(1001)
	assert.Nil(t, err)

	err = stg.Remove(1001)
	assert.ErrorIs(t, err, commerr.ErrNotFound)
}

func TestFMArchiveStorageReload(t *testing.T) {
	stg := NewFMArchiveStorage("archive-reload", rawfs.NewFSStorage(utRoot))

	err := stg.Save(&archive.Record{ID: 7, Label: "lin", Kind: "one-real", Roots: []float64{2}})
	assert.Nil(t, err)

	// A fresh instance over the same root sees the persisted record.
	stg2 := NewFMArchiveStorage("archive-reload", rawfs.NewFSStorage(utRoot))

	got, err := stg2.Load(7)
	assert.Nil(t, err)
	assert.EqualValues(t, "lin", got.Label)
}
