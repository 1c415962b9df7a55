package matcher

import (
	"strconv"
	"strings"

	"github.com/mongoryhq/mongory-go/value"
)

// newArrayRecordNode builds the matcher used when a field's actual record
// value turns out to be an array. An Array condition matches if the whole
// array equals it or some element does; a scalar or Regex condition (as in
// {"tags": "x"}) is tested against each element; a Map condition is split
// by splitArrayRecordTable. Grounded on
// mongory_matcher_array_record_new in array_record_matcher.c.
func newArrayRecordNode(pool *value.Pool, condition *value.Value, externCtx any) (Node, *value.Error) {
	switch condition.Kind {
	case value.KindMap:
		parsedTable, elemMatchTable := splitArrayRecordTable(condition.Map())
		if elemMatchTable.Len() > 0 {
			parsedTable.Set("$elemMatch", value.FromMap(elemMatchTable))
		}
		return compileConditionMap(pool, value.FromMap(parsedTable), externCtx)
	case value.KindArray:
		eqWhole := newEqNode(condition)
		eqElem := newElemMatchNode([]Node{newEqNode(condition)})
		return newOrNode([]Node{eqWhole, eqElem}), nil
	case value.KindRegex:
		regexNode, err := newRegexNode(condition)
		if err != nil {
			return nil, err
		}
		return newElemMatchNode([]Node{regexNode}), nil
	default:
		return newElemMatchNode([]Node{newEqNode(condition)}), nil
	}
}

// splitArrayRecordTable partitions a condition table's keys: explicit
// "$elemMatch" contents and plain field names both describe a per-element
// test and fold into elemMatchTable (plain names get an implied
// $elemMatch); every other "$"-prefixed operator or numeric array-index key
// describes a test against the array itself and stays in parsedTable.
// Grounded on mongory_matcher_array_record_parse_table_foreach.
func splitArrayRecordTable(m *value.Map) (parsedTable, elemMatchTable *value.Map) {
	parsedTable = value.NewMap()
	elemMatchTable = value.NewMap()

	m.Each(func(key string, val *value.Value) {
		switch {
		case key == "$elemMatch":
			if val.Kind == value.KindMap {
				elemMatchTable.Merge(val.Map())
			}
		case strings.HasPrefix(key, "$"), isNumericKey(key):
			parsedTable.Set(key, val)
		default:
			elemMatchTable.Set(key, val)
		}
	})
	return parsedTable, elemMatchTable
}

func isNumericKey(key string) bool {
	if key == "" {
		return false
	}
	_, err := strconv.Atoi(key)
	return err == nil
}
