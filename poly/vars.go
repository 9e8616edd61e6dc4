package poly

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/symnorm"
)

func identifierComparator(a, b interface{}) int {
	return utils.UInt32Comparator(uint32(a.(symnorm.Identifier)), uint32(b.(symnorm.Identifier)))
}

// UnionVars returns the sorted union of two variable lists.
func UnionVars(a, b []symnorm.Identifier) []symnorm.Identifier {
	set := treeset.NewWith(identifierComparator)
	for _, v := range a {
		set.Add(v)
	}
	for _, v := range b {
		set.Add(v)
	}
	return toIdentifiers(set)
}

// SortVars returns a sorted, duplicate-free copy of a variable list.
func SortVars(vars []symnorm.Identifier) []symnorm.Identifier {
	return UnionVars(vars, nil)
}

func toIdentifiers(set *treeset.Set) []symnorm.Identifier {
	vals := set.Values()
	ids := make([]symnorm.Identifier, len(vals))
	for i, v := range vals {
		ids[i] = v.(symnorm.Identifier)
	}
	return ids
}

func sameVars(a, b []symnorm.Identifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func indexOf(vars []symnorm.Identifier, v symnorm.Identifier) int {
	for i, w := range vars {
		if w == v {
			return i
		}
	}
	return -1
}

// IsSubset is a predicate: is every variable of a contained in b?
func IsSubset(a, b []symnorm.Identifier) bool {
	for _, v := range a {
		if indexOf(b, v) < 0 {
			return false
		}
	}
	return true
}
