package bee_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/bee"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := bee.Errorf(bee.ENOTFOUND, "key %q not found", "test")

	assert.Equal(t, bee.ENOTFOUND, bee.ErrorCode(err))
	assert.Equal(t, "key \"test\" not found", bee.ErrorMessage(err))
	assert.Empty(t, bee.ErrorSource(err))
}

func TestSourceErrorf(t *testing.T) {
	t.Parallel()

	err := bee.SourceErrorf(bee.EFORMAT, "data.json", "unexpected %s", "EOF")

	assert.Equal(t, bee.EFORMAT, bee.ErrorCode(err))
	assert.Equal(t, "data.json", bee.ErrorSource(err))
	assert.Equal(t, "unexpected EOF", bee.ErrorMessage(err))
	assert.Contains(t, err.Error(), "source=data.json")
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", bee.Errorf(bee.EPERMISSION, "permission denied"))

	assert.Equal(t, bee.EPERMISSION, bee.ErrorCode(err))
	assert.Equal(t, "permission denied", bee.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, bee.EINTERNAL, bee.ErrorCode(err))
	assert.Equal(t, "boom", bee.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bee.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bee.ErrorMessage(nil))
}
