package globaltables

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

var (
	// ErrNoTableName a table resource in the descriptor has no configured table name
	ErrNoTableName = errors.New("table resource has no table name")

	// ErrNoRegion no deploy region was configured
	ErrNoRegion = errors.New("no deploy region configured")
)

// the legacy replica API reports an existing replica through a validation
// error message rather than a dedicated error code
const legacyReplicaExistsFragment = "replicas already existed as tables"

// isGlobalTableExists reports whether the error is the benign conflict
// returned by CreateGlobalTable when the global table is already in place.
func isGlobalTableExists(err error) bool {
	if awsErr, ok := err.(awserr.Error); ok {
		return awsErr.Code() == dynamodb.ErrCodeGlobalTableAlreadyExistsException
	}

	return false
}

// isReplicaExists reports whether the error is the benign conflict returned
// by UpdateGlobalTable when the region is already a replica.
func isReplicaExists(err error) bool {
	if awsErr, ok := err.(awserr.Error); ok {
		return awsErr.Code() == dynamodb.ErrCodeReplicaAlreadyExistsException
	}

	return false
}

// isLegacyReplicaExists reports whether the error is the validation error
// raised by the legacy UpdateTable replica API when the replica already
// exists as a table in the target region.
func isLegacyReplicaExists(err error) bool {
	if awsErr, ok := err.(awserr.Error); ok {
		return awsErr.Code() == "ValidationException" &&
			strings.Contains(awsErr.Message(), legacyReplicaExistsFragment)
	}

	return false
}
