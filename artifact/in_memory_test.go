package artifact

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hupe1980/primereport/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var _ core.ArtifactStore = (*InMemoryStore)(nil)

func TestInMemoryStore_SaveGetIsolation(t *testing.T) {
	svc := NewInMemoryStore()
	data := []byte("2\n3\n")
	require.NoError(t, svc.Save("primes.txt", data))
	// mutate original slice
	data[0] = '9'
	out, err := svc.Get("primes.txt")
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n", string(out)) // should not reflect mutation
	// mutate returned slice
	out[0] = 'x'
	out2, _ := svc.Get("primes.txt")
	assert.Equal(t, "2\n3\n", string(out2)) // stored copy unchanged
}

func TestInMemoryStore_Overwrite(t *testing.T) {
	svc := NewInMemoryStore()
	require.NoError(t, svc.Save("a", []byte("2\n3\n5\n")))
	require.NoError(t, svc.Save("a", []byte("2\n")))
	out, err := svc.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "2\n", string(out))
}

func TestInMemoryStore_ListAndDelete(t *testing.T) {
	svc := NewInMemoryStore()
	require.NoError(t, svc.Save("b", []byte("1")))
	require.NoError(t, svc.Save("a", []byte("2")))
	ids, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, svc.Delete("a"))
	_, err = svc.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete("a"), ErrNotFound)

	ids, _ = svc.List()
	assert.Equal(t, []string{"b"}, ids)
}

func TestInMemoryStore_RejectsBadNames(t *testing.T) {
	svc := NewInMemoryStore()
	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		assert.ErrorIs(t, svc.Save(name, nil), ErrInvalidName, "name %q", name)
	}
}

func TestInMemoryStore_Concurrency(t *testing.T) {
	svc := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := svc.Save(fmt.Sprintf("a%d", i%10), []byte("data")); err != nil {
				t.Errorf("save err: %v", err)
			}
			_, _ = svc.List()
		}()
	}
	wg.Wait()
	ids, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, ids, 10)
}
