package globaltables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testDescriptorYAML = `
service: checkout
provider:
  region: eu-west-2
custom:
  globalTables:
    enabled: true
resources:
  UsersTable:
    Type: AWS::DynamoDB::Table
    Properties:
      TableName: users
  OrdersTable:
    Type: AWS::DynamoDB::Table
    Properties:
      TableName: orders
  Assets:
    Type: AWS::S3::Bucket
`

func TestParseDescriptor(t *testing.T) {
	assert := require.New(t)

	desc, err := ParseDescriptor([]byte(testDescriptorYAML))
	assert.NoError(err)

	assert.Equal("checkout", desc.Service)
	assert.Equal("eu-west-2", desc.Provider.Region)
	assert.True(desc.Custom.GlobalTables.IsEnabled())

	names, err := desc.TableNames()
	assert.NoError(err)
	assert.Equal([]string{"orders", "users"}, names)
}

func TestParseDescriptor_Malformed(t *testing.T) {
	assert := require.New(t)

	_, err := ParseDescriptor([]byte("resources: [not: a: mapping"))
	assert.Error(err)
}

func TestTableNames_MissingTableName(t *testing.T) {
	assert := require.New(t)

	desc := &Descriptor{
		Resources: map[string]Resource{
			"OrdersTable": {Type: TableResourceType},
		},
	}

	_, err := desc.TableNames()
	assert.ErrorIs(err, ErrNoTableName)
	assert.Contains(err.Error(), "OrdersTable")
}

func TestSettings_IsEnabled(t *testing.T) {
	assert := require.New(t)

	assert.True(Settings{}.IsEnabled())

	enabled := false
	assert.False(Settings{Enabled: &enabled}.IsEnabled())

	enabled = true
	assert.True(Settings{Enabled: &enabled}.IsEnabled())
}

func TestParseDescriptor_DisabledFlag(t *testing.T) {
	assert := require.New(t)

	desc, err := ParseDescriptor([]byte("custom:\n  globalTables:\n    enabled: false\n"))
	assert.NoError(err)

	assert.False(desc.Custom.GlobalTables.IsEnabled())
}
