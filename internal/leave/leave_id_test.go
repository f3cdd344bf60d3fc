package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	leaveerrors "go-leave/internal/leave/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idRepo only answers the two calls IDAllocator makes.
type idRepo struct {
	Repository
	count    int64
	countErr error
	taken    map[string]bool
}

func (r *idRepo) Count(context.Context) (int64, error) {
	return r.count, r.countErr
}

func (r *idRepo) ExistsID(_ context.Context, id string) (bool, error) {
	return r.taken[id], nil
}

func TestIDAllocator_Allocate(t *testing.T) {
	now := time.UnixMilli(1773135000000)
	clock := func() time.Time { return now }
	ctx := context.Background()

	t.Run("millis and count", func(t *testing.T) {
		a := NewIDAllocator(&idRepo{count: 4}, clock)

		id, err := a.Allocate(ctx)

		require.NoError(t, err)
		assert.Equal(t, "LR17731350000005", id)
	})

	t.Run("collision gets suffix", func(t *testing.T) {
		a := NewIDAllocator(&idRepo{count: 4, taken: map[string]bool{"LR17731350000005": true}}, clock)
		a.suffix = func() string { return "abc12" }

		id, err := a.Allocate(ctx)

		require.NoError(t, err)
		assert.Equal(t, "LR17731350000005_abc12", id)
	})

	t.Run("random suffix shape", func(t *testing.T) {
		s := randomSuffix()
		assert.Len(t, s, idSuffixLength)
		assert.Regexp(t, "^[0-9a-z]+$", s)
	})

	t.Run("gives up when every candidate is taken", func(t *testing.T) {
		a := NewIDAllocator(&idRepo{taken: map[string]bool{
			"LR17731350000001":       true,
			"LR17731350000001_zzzzz": true,
		}}, clock)
		a.suffix = func() string { return "zzzzz" }

		_, err := a.Allocate(ctx)

		assert.True(t, errors.Is(err, leaveerrors.ErrIDAllocation))
	})

	t.Run("count failure", func(t *testing.T) {
		a := NewIDAllocator(&idRepo{countErr: errors.New("db down")}, clock)

		_, err := a.Allocate(ctx)

		assert.True(t, errors.Is(err, leaveerrors.ErrIDAllocation))
	})
}
