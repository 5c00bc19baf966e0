package seqstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cqkv/seqstore/fio"
	"github.com/cqkv/seqstore/model"
)

const DataFileSuffix = ".dat"

type (
	ItemStore  = Store[model.Item, *model.Item]
	OrderStore = Store[model.Order, *model.Order]
	UserStore  = Store[model.User, *model.User]
)

// Dir holds one store per entity kind under a directory. The directory
// is locked while a Dir is open so a second Dir can not share its files.
type Dir struct {
	path string
	lock fio.FileLocker

	Items  *ItemStore
	Orders *OrderStore
	Users  *UserStore
}

func DataFileName(dirPath, kind string) string {
	return filepath.Join(dirPath, kind+DataFileSuffix)
}

func OpenDir(dirPath string, opts ...Option) (*Dir, error) {
	if dirPath == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		return nil, err
	}

	lock := fio.NewFlock(dirPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrDirIsUsing
	}

	o := newOptions(opts...)
	return &Dir{
		path:   dirPath,
		lock:   lock,
		Items:  newStore[model.Item](DataFileName(dirPath, model.KindItem), o),
		Orders: newStore[model.Order](DataFileName(dirPath, model.KindOrder), o),
		Users:  newStore[model.User](DataFileName(dirPath, model.KindUser), o),
	}, nil
}

func (d *Dir) Path() string {
	return d.path
}

// Close closes every store and releases the directory lock
func (d *Dir) Close() error {
	return errors.Join(
		d.Items.Close(),
		d.Orders.Close(),
		d.Users.Close(),
		d.lock.Unlock(),
	)
}

// ReadKind reads every record of the named kind
func (d *Dir) ReadKind(kind string) ([]model.Entity, error) {
	switch kind {
	case model.KindItem:
		records, err := d.Items.ReadAll()
		return asEntities(records, err)
	case model.KindOrder:
		records, err := d.Orders.ReadAll()
		return asEntities(records, err)
	case model.KindUser:
		records, err := d.Users.ReadAll()
		return asEntities(records, err)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// HeaderKind reads the header of the named kind's file
func (d *Dir) HeaderKind(kind string) (model.Header, bool, error) {
	switch kind {
	case model.KindItem:
		return d.Items.ReadHeader()
	case model.KindOrder:
		return d.Orders.ReadHeader()
	case model.KindUser:
		return d.Users.ReadHeader()
	}
	return model.Header{}, false, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func asEntities[P model.Entity](records []P, err error) ([]model.Entity, error) {
	if err != nil {
		return nil, err
	}
	entities := make([]model.Entity, len(records))
	for i, r := range records {
		entities[i] = r
	}
	return entities, nil
}
