package main

import (
	"sort"
)

// tally counts token occurrences, remembering the order of first sight.
type tally struct {
	data  map[string]*item
	total int
}

type item struct {
	key   string
	count int
	first int
}

func newTally() *tally {
	t := new(tally)
	t.data = make(map[string]*item)
	return t
}

func (t *tally) add(key string) {
	t.total++
	if i, ok := t.data[key]; ok {
		i.count++
		return
	}
	t.data[key] = &item{
		key:   key,
		count: 1,
		first: len(t.data),
	}
}

func (t *tally) count() int {
	return len(t.data)
}

func (t *tally) getTotal() int {
	return t.total
}

// getItens returns the items most frequent first, ties broken by first
// appearance.
func (t *tally) getItens() []*item {
	itens := make([]*item, 0, len(t.data))
	for _, item := range t.data {
		itens = append(itens, item)
	}
	sort.Slice(itens, func(a, b int) bool {
		if itens[a].count != itens[b].count {
			return itens[a].count > itens[b].count
		}
		return itens[a].first < itens[b].first
	})
	return itens
}

func (i *item) getKey() string {
	return i.key
}

func (i *item) getCount() int {
	return i.count
}
