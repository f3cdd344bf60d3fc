package leave

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	leaveerrors "go-leave/internal/leave/errors"
)

const (
	idPrefix          = "LR"
	idSuffixAlphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixLength    = 5
	maxSuffixAttempts = 5
)

// IDAllocator builds ids of the form LR<unix millis><count+1>. A candidate
// that already exists gets a random "_xxxxx" suffix.
type IDAllocator struct {
	repo   Repository
	now    func() time.Time
	suffix func() string
}

func NewIDAllocator(repo Repository, now func() time.Time) *IDAllocator {
	if now == nil {
		now = time.Now
	}
	return &IDAllocator{repo: repo, now: now, suffix: randomSuffix}
}

func (a *IDAllocator) Allocate(ctx context.Context) (string, error) {
	count, err := a.repo.Count(ctx)
	if err != nil {
		return "", leaveerrors.ErrIDAllocation.WithCause(err)
	}

	candidate := fmt.Sprintf("%s%d%d", idPrefix, a.now().UnixMilli(), count+1)
	exists, err := a.repo.ExistsID(ctx, candidate)
	if err != nil {
		return "", leaveerrors.ErrIDAllocation.WithCause(err)
	}
	if !exists {
		return candidate, nil
	}

	for i := 0; i < maxSuffixAttempts; i++ {
		id := candidate + "_" + a.suffix()
		exists, err := a.repo.ExistsID(ctx, id)
		if err != nil {
			return "", leaveerrors.ErrIDAllocation.WithCause(err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", leaveerrors.ErrIDAllocation.WithCause(fmt.Errorf("no free id for %s after %d attempts", candidate, maxSuffixAttempts))
}

func randomSuffix() string {
	b := make([]byte, idSuffixLength)
	for i := range b {
		b[i] = idSuffixAlphabet[rand.IntN(len(idSuffixAlphabet))]
	}
	return string(b)
}
