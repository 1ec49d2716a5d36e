package key_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/uikit/ui/key"
)

type item struct {
	key.Mark
	Name string
}

type plain struct {
	Name string
}

func TestGenerate_SameObject(t *testing.T) {
	obj := &plain{Name: "a"}

	k1 := key.Generate(obj)
	k2 := key.Generate(obj)

	require.NotEmpty(t, k1)
	assert.Equal(t, k1, k2)

	_, err := uuid.Parse(k1)
	assert.NoError(t, err, "keys are UUIDs")
}

func TestGenerate_DistinctObjects(t *testing.T) {
	a := &plain{Name: "same"}
	b := &plain{Name: "same"}

	assert.NotEqual(t, key.Generate(a), key.Generate(b), "equal values, different identities")
}

func TestGenerate_Nil(t *testing.T) {
	var p *plain
	assert.Empty(t, key.Generate(p))
}

func TestOf(t *testing.T) {
	obj := &plain{Name: "a"}

	tests := []struct {
		name   string
		value  any
		wantOK bool
	}{
		{"pointer", obj, true},
		{"nil", nil, false},
		{"nil pointer", (*plain)(nil), false},
		{"string", "text", false},
		{"int", 42, false},
		{"struct value", plain{Name: "a"}, false},
		{"slice", []int{1, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := key.Of(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.NotEmpty(t, k)
			} else {
				assert.Empty(t, k)
			}
		})
	}
}

func TestOf_AgreesWithGenerate(t *testing.T) {
	obj := &plain{Name: "a"}

	k, ok := key.Of(obj)
	require.True(t, ok)
	assert.Equal(t, key.Generate(obj), k)
}

func TestGenerate_Concurrent(t *testing.T) {
	obj := &plain{Name: "shared"}

	const workers = 32
	results := make([]string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = key.Generate(obj)
		}(i)
	}
	wg.Wait()

	for _, k := range results {
		assert.Equal(t, results[0], k)
	}
}

func TestAttach_KeepWithoutKey(t *testing.T) {
	obj := &item{Name: "a"}

	got := key.Attach(obj, key.Keep)

	assert.Same(t, obj, got)
	require.NotEmpty(t, obj.IdentityKey)
	assert.Equal(t, key.Generate(obj), obj.IdentityKey, "keep mode reuses the table key")
}

func TestAttach_KeepWithKey(t *testing.T) {
	obj := key.Attach(&item{Name: "a"}, key.Keep)
	before := obj.IdentityKey

	key.Attach(obj, key.Keep)

	assert.Equal(t, before, obj.IdentityKey)
}

func TestAttach_New(t *testing.T) {
	obj := key.Attach(&item{Name: "a"}, key.Keep)
	before := obj.IdentityKey

	got := key.Attach(obj, key.New)

	assert.Same(t, obj, got)
	require.NotEmpty(t, obj.IdentityKey)
	assert.NotEqual(t, before, obj.IdentityKey)
}

func TestAttach_NewOnCopy(t *testing.T) {
	original := key.Attach(&item{Name: "a"}, key.Keep)
	copied := *original

	key.Attach(&copied, key.New)

	assert.NotEqual(t, original.IdentityKey, copied.IdentityKey)
}

func TestAttach_Nil(t *testing.T) {
	var obj *item
	assert.Nil(t, key.Attach(obj, key.New))
}

func TestGet(t *testing.T) {
	t.Run("without stored key", func(t *testing.T) {
		obj := &item{Name: "a"}

		k1, ok := key.Get(obj)
		require.True(t, ok)
		k2, _ := key.Get(obj)

		assert.Equal(t, k1, k2)
		assert.Empty(t, obj.IdentityKey, "get does not store")
	})

	t.Run("with stored key", func(t *testing.T) {
		obj := key.Attach(&item{Name: "a"}, key.New)

		k, ok := key.Get(obj)
		require.True(t, ok)
		assert.Equal(t, obj.IdentityKey, k)
	})

	t.Run("preset key", func(t *testing.T) {
		obj := &item{Mark: key.Mark{IdentityKey: "card-1"}}

		k, _ := key.Get(obj)
		assert.Equal(t, "card-1", k)
	})

	t.Run("not an object", func(t *testing.T) {
		_, ok := key.Get("text")
		assert.False(t, ok)
	})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    key.Mode
		wantErr error
	}{
		{"keep", key.Keep, nil},
		{"", key.Keep, nil},
		{"new", key.New, nil},
		{"fresh", key.Keep, key.ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := key.ParseMode(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in == "new", got.String() == "new")
		})
	}
}
