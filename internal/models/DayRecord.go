package models

import "sort"

type DayRecord struct {
	Messages int      `json:"messages"`
	Links    []string `json:"links"`
}

func NewDayRecord() *DayRecord {
	return &DayRecord{Links: make([]string, 0)}
}

func (r *DayRecord) HasLink(link string) bool {
	for _, l := range r.Links {
		if l == link {
			return true
		}
	}
	return false
}

func (r *DayRecord) Conversations() int {
	return len(r.Links)
}

func (r *DayRecord) Clone() *DayRecord {
	links := make([]string, len(r.Links))
	copy(links, r.Links)
	return &DayRecord{Messages: r.Messages, Links: links}
}

// Document maps a YYYY-MM-DD date key to the activity recorded that day.
type Document map[string]*DayRecord

func NewDocument() Document {
	return make(Document)
}

// Get returns the record for key, or a detached empty record when none exists.
func (d Document) Get(key string) *DayRecord {
	if rec, ok := d[key]; ok && rec != nil {
		return rec
	}
	return NewDayRecord()
}

// Ensure returns the stored record for key, creating it when absent.
func (d Document) Ensure(key string) *DayRecord {
	rec, ok := d[key]
	if !ok || rec == nil {
		rec = NewDayRecord()
		d[key] = rec
	}
	return rec
}

func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, rec := range d {
		if rec == nil {
			out[k] = NewDayRecord()
			continue
		}
		out[k] = rec.Clone()
	}
	return out
}

// Normalize fills in fields missing from records decoded off disk.
func (d Document) Normalize() {
	for k, rec := range d {
		if rec == nil {
			d[k] = NewDayRecord()
			continue
		}
		if rec.Links == nil {
			rec.Links = make([]string, 0)
		}
	}
}

// Keys returns the date keys in ascending order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ContainsLink reports whether link was logged on any of the given days.
func (d Document) ContainsLink(link string, keys []string) bool {
	for _, k := range keys {
		if rec, ok := d[k]; ok && rec != nil && rec.HasLink(link) {
			return true
		}
	}
	return false
}
