// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"fmt"
	"testing"
	"time"
)

func TestSuggestionCachePutGet(t *testing.T) {
	t.Parallel()

	cache := newSuggestionCache(time.Minute, 10)
	want := []Suggestion{{Item: ClothingItem{ID: "x"}}}

	cache.put("key", want)
	got, ok := cache.get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Item.ID != "x" {
		t.Errorf("cached value mismatch: %v", got)
	}
}

func TestSuggestionCacheExpiry(t *testing.T) {
	t.Parallel()

	cache := newSuggestionCache(10*time.Millisecond, 10)
	cache.put("key", []Suggestion{})

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.get("key"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestSuggestionCacheDisabled(t *testing.T) {
	t.Parallel()

	cache := newSuggestionCache(0, 10)
	cache.put("key", []Suggestion{})

	if _, ok := cache.get("key"); ok {
		t.Error("disabled cache should always miss")
	}
	if cache.len() != 0 {
		t.Errorf("disabled cache stored %d entries", cache.len())
	}
}

func TestSuggestionCacheEviction(t *testing.T) {
	t.Parallel()

	cache := newSuggestionCache(time.Minute, 3)
	for i := 0; i < 5; i++ {
		cache.put(fmt.Sprintf("key-%d", i), []Suggestion{})
	}

	if cache.len() > 3 {
		t.Errorf("cache size %d exceeds max 3", cache.len())
	}
}

func TestSuggestionCacheKeyStable(t *testing.T) {
	t.Parallel()

	wardrobe := testWardrobe()
	a := SuggestionRequest{Item: wardrobe[0], Wardrobe: wardrobe, Occasion: "work"}

	// Same pool in a different order produces the same key.
	reversed := make([]ClothingItem, len(wardrobe))
	for i, item := range wardrobe {
		reversed[len(wardrobe)-1-i] = item
	}
	b := SuggestionRequest{Item: wardrobe[0], Wardrobe: reversed, Occasion: "work"}

	if suggestionCacheKey(&a) != suggestionCacheKey(&b) {
		t.Error("cache key should not depend on wardrobe order")
	}

	c := SuggestionRequest{Item: wardrobe[0], Wardrobe: wardrobe, Occasion: "party"}
	if suggestionCacheKey(&a) == suggestionCacheKey(&c) {
		t.Error("different occasions must produce different keys")
	}
}

func TestSuggestionCacheKeyProfileContents(t *testing.T) {
	t.Parallel()

	wardrobe := testWardrobe()
	none := SuggestionRequest{Item: wardrobe[0], Wardrobe: wardrobe}

	liked := none
	liked.Profile = &PreferenceProfile{PreferredColors: []string{"#1a2b5c"}}

	avoided := none
	avoided.Profile = &PreferenceProfile{AvoidedColors: []string{"#1a2b5c"}}

	if suggestionCacheKey(&none) == suggestionCacheKey(&liked) {
		t.Error("profile presence must change the key")
	}
	if suggestionCacheKey(&liked) == suggestionCacheKey(&avoided) {
		t.Error("different profile contents must produce different keys")
	}

	// The same preferences in a different slice order are equivalent.
	x := none
	x.Profile = &PreferenceProfile{PreferredColors: []string{"#000000", "#ffffff"}}
	y := none
	y.Profile = &PreferenceProfile{PreferredColors: []string{"#ffffff", "#000000"}}
	if suggestionCacheKey(&x) != suggestionCacheKey(&y) {
		t.Error("cache key should not depend on preference order")
	}
}

func TestSuggestionCacheKeyItemAttributes(t *testing.T) {
	t.Parallel()

	wardrobe := testWardrobe()
	a := SuggestionRequest{Item: wardrobe[0], Wardrobe: wardrobe}

	// Same IDs, but one item's color changed under a reused ID.
	mutated := make([]ClothingItem, len(wardrobe))
	copy(mutated, wardrobe)
	mutated[1].Colors = []string{"#ff0000"}
	b := SuggestionRequest{Item: wardrobe[0], Wardrobe: mutated}

	if suggestionCacheKey(&a) == suggestionCacheKey(&b) {
		t.Error("mutated item attributes must produce a different key")
	}
}
