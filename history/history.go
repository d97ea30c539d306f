// Package history persists recently executed operation scripts so they can be replayed.
package history

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/nerdlist/nerdlist/arraylist"
	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/nerdlist/nerdlist/key"
	"github.com/nerdlist/nerdlist/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Record is one executed script.
type Record struct {
	Kind     string    `json:"kind"`
	Capacity int       `json:"capacity"`
	Lines    []string  `json:"lines"`
	Failures int       `json:"failures"`
	At       time.Time `json:"at"`
}

var (
	cacher     *gache.Cache[[]Record]
	cacherOnce sync.Once
)

func cache() *gache.Cache[[]Record] {
	cacherOnce.Do(func() {
		cacher = gache.New[[]Record](
			&gache.Options{
				Path:       where.History(),
				FileSystem: &filesystem.GacheFs{},
			},
		)
	})
	return cacher
}

// Get returns every remembered script, oldest first.
func Get() ([]Record, error) {
	cached, expired, err := cache().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []Record{}, nil
	}
	return cached, nil
}

// Remember appends record, evicting the oldest entries beyond history.size.
func Remember(record Record) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	size := viper.GetInt(key.HistorySize)
	if size < 1 {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	records, err := arraylist.New[Record](size)
	if err != nil {
		return err
	}
	defer records.Destroy()

	for _, r := range append(saved, record) {
		if err := records.Insert(r); err != nil {
			return err
		}
		for records.Len() > size {
			if err := records.Delete(0); err != nil {
				return err
			}
		}
	}

	return cache().Set(records.Snapshot())
}

// Last returns the most recently remembered script.
func Last() (mo.Option[Record], error) {
	saved, err := Get()
	if err != nil {
		return mo.None[Record](), err
	}
	if len(saved) == 0 {
		return mo.None[Record](), nil
	}
	return mo.Some(saved[len(saved)-1]), nil
}

// Clear forgets every remembered script.
func Clear() error {
	return cache().Set([]Record{})
}
