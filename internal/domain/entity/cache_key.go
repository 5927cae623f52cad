package entity

import "strings"

// CacheKeySeparator joins the parts of a CacheKey.
const CacheKeySeparator = ":"

// CacheKey is an ordered tuple naming a cached query result.
type CacheKey []string

// NewCacheKey builds a key from its parts.
func NewCacheKey(parts ...string) CacheKey {
	return CacheKey(parts)
}

// String joins the parts with ':'.
func (k CacheKey) String() string {
	return strings.Join(k, CacheKeySeparator)
}

// Equal reports element-wise equality.
func (k CacheKey) Equal(other CacheKey) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}

	return true
}

// HasPrefix reports whether prefix is a leading sub-tuple of k.
func (k CacheKey) HasPrefix(prefix CacheKey) bool {
	if len(prefix) > len(k) {
		return false
	}

	return prefix.Equal(k[:len(prefix)])
}
