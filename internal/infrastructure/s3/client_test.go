package s3infra

import (
	"errors"
	"fmt"
	"testing"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&s3types.NoSuchKey{}))
	assert.True(t, isNotFound(&s3types.NotFound{}))
	assert.True(t, isNotFound(fmt.Errorf("get object: %w", &s3types.NoSuchKey{})))
	assert.False(t, isNotFound(errors.New("connection reset")))
	assert.False(t, isNotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
}

func TestIsPreconditionFailed(t *testing.T) {
	assert.True(t, isPreconditionFailed(&smithy.GenericAPIError{Code: "PreconditionFailed"}))
	assert.True(t, isPreconditionFailed(fmt.Errorf("put object: %w", &smithy.GenericAPIError{Code: "PreconditionFailed"})))
	assert.False(t, isPreconditionFailed(&smithy.GenericAPIError{Code: "SlowDown"}))
	assert.False(t, isPreconditionFailed(errors.New("connection reset")))
}
