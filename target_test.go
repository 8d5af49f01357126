package globaltables

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newLegacyTarget(fake *fakeDynamo, tables, regions []string) *LegacyTarget {
	session := NewWithFactory(func(region string) dynamodbiface.DynamoDBAPI {
		return fake
	})

	return &LegacyTarget{
		session:       session,
		hooks:         defaultHooks,
		logger:        zerolog.Nop(),
		tables:        tables,
		regions:       regions,
		masterRegion:  DefaultMasterRegion,
		targetVersion: DefaultTargetVersion,
	}
}

func TestLegacyTarget_SequentialRegionOrder(t *testing.T) {
	assert := require.New(t)

	fake := &fakeDynamo{}

	target := newLegacyTarget(fake, []string{"deploy-locks"},
		[]string{"eu-west-2", "eu-central-1", "ca-central-1", "ap-southeast-2"})

	err := target.Replicate(context.Background())
	assert.NoError(err)

	assert.Equal([]string{
		"DescribeTable:deploy-locks",
		"UpdateTable:deploy-locks:eu-central-1",
		"UpdateTable:deploy-locks:ca-central-1",
		"UpdateTable:deploy-locks:ap-southeast-2",
	}, fake.calls)
}

func TestLegacyTarget_SkipsTableAtTargetVersion(t *testing.T) {
	assert := require.New(t)

	fake := &fakeDynamo{versions: map[string]string{"deploy-locks": DefaultTargetVersion}}

	target := newLegacyTarget(fake, []string{"deploy-locks"}, DefaultLegacyRegions)

	err := target.Replicate(context.Background())
	assert.NoError(err)

	assert.Empty(fake.ops("UpdateTable"))
}

func TestLegacyTarget_ReplicaExistsAsTableIsSuccess(t *testing.T) {
	assert := require.New(t)

	fake := &fakeDynamo{
		updateTableErr: awserr.New("ValidationException",
			"Failed to create a the new replica of table with name: 'deploy-locks' because one or more replicas already existed as tables.", nil),
	}

	target := newLegacyTarget(fake, []string{"deploy-locks"},
		[]string{"eu-west-2", "eu-central-1", "ca-central-1"})

	err := target.Replicate(context.Background())
	assert.NoError(err)

	// both non-master regions are still attempted
	assert.Len(fake.ops("UpdateTable"), 2)
}

func TestLegacyTarget_UnexpectedValidationErrorAborts(t *testing.T) {
	assert := require.New(t)

	boom := awserr.New("ValidationException", "one or more parameter values were invalid", nil)

	fake := &fakeDynamo{updateTableErr: boom}

	target := newLegacyTarget(fake, []string{"deploy-locks"},
		[]string{"eu-west-2", "eu-central-1", "ca-central-1"})

	err := target.Replicate(context.Background())
	assert.Equal(boom, err)

	// the failure stops the region sequence for the table
	assert.Equal([]string{"UpdateTable:deploy-locks:eu-central-1"}, fake.ops("UpdateTable"))
}
