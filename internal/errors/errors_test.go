package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errCatalog = New("catalog unavailable")

func TestWrap_KeepsCause(t *testing.T) {
	err := Wrapf(errCatalog, "GET %s", "/produtos")

	assert.Equal(t, "GET /produtos: catalog unavailable", err.Error())
	assert.True(t, Is(err, errCatalog))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsCause")
}

func TestJoin_MatchesEveryBranch(t *testing.T) {
	err := Wrap(Join(errCatalog, context.DeadlineExceeded), "fetch products")

	assert.True(t, Is(err, errCatalog))
	assert.True(t, Is(err, context.DeadlineExceeded))
	assert.False(t, Is(err, context.Canceled))
}

func TestWithStack(t *testing.T) {
	assert.NoError(t, WithStack(nil))

	err := WithStack(errCatalog)
	assert.Equal(t, errCatalog.Error(), err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStack")
}

func TestErrorf(t *testing.T) {
	err := Errorf("unknown product %q", "p9")

	assert.Equal(t, `unknown product "p9"`, err.Error())
}
