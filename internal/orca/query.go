package orca

import (
	"net/url"
	"strconv"
	"strings"

	"whirlscope/internal/model"
)

// queryBuilder emits query pairs in insertion order. net/url.Values sorts
// keys on Encode, which would break the parameter order the API documents,
// so pairs are encoded by hand. Array-valued filters become repeated keys,
// one pair per element.
type queryBuilder struct {
	pairs []string
}

func (q *queryBuilder) add(key, value string) {
	q.pairs = append(q.pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q *queryBuilder) addString(key string, v *string) {
	if v != nil {
		q.add(key, *v)
	}
}

func (q *queryBuilder) addBool(key string, v *bool) {
	if v != nil {
		q.add(key, strconv.FormatBool(*v))
	}
}

func (q *queryBuilder) addUint32(key string, v *uint32) {
	if v != nil {
		q.add(key, strconv.FormatUint(uint64(*v), 10))
	}
}

func (q *queryBuilder) addFloat64(key string, v *float64) {
	if v != nil {
		q.add(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func (q *queryBuilder) addUint64Slice(key string, values []uint64) {
	for _, v := range values {
		q.add(key, strconv.FormatUint(v, 10))
	}
}

func (q *queryBuilder) addStringSlice(key string, values []string) {
	for _, v := range values {
		q.add(key, v)
	}
}

func (q *queryBuilder) addPeriods(key string, values []model.TimePeriod) {
	for _, v := range values {
		q.add(key, v.String())
	}
}

func (q *queryBuilder) encode() string {
	return strings.Join(q.pairs, "&")
}
