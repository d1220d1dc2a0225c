package core

import (
	"sync"
	"time"
)

// Entry represents a single log message with all its metadata
type Entry struct {
	Time      time.Time
	Level     Level
	Message   string
	Rank      int
	WorldSize int
	// TagRank prepends "[rank/worldSize] " to the formatted message.
	TagRank bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Level = NotSetLevel
	e.Rank = 0
	e.WorldSize = 0
	e.TagRank = false
	entryPool.Put(e)
}
