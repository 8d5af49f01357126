package globaltables

import (
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// ClientFactory builds a DynamoDB client bound to the given region.
type ClientFactory func(region string) dynamodbiface.DynamoDBAPI

// DynaSession hands out one DynamoDB client per region, constructing them
// lazily through the configured factory.
type DynaSession struct {
	factory ClientFactory

	mu      sync.Mutex
	clients map[string]dynamodbiface.DynamoDBAPI
}

// New construct a session with the default AWS backed client factory
func New(cfgs ...*aws.Config) *DynaSession {
	sess := session.Must(session.NewSession(cfgs...))

	return NewWithFactory(func(region string) dynamodbiface.DynamoDBAPI {
		return dynamodb.New(sess, aws.NewConfig().WithRegion(region))
	})
}

// NewWithFactory construct a session using the supplied client factory
func NewWithFactory(factory ClientFactory) *DynaSession {
	return &DynaSession{
		factory: factory,
		clients: make(map[string]dynamodbiface.DynamoDBAPI),
	}
}

// Client returns the DynamoDB client for the given region.
func (ds *DynaSession) Client(region string) dynamodbiface.DynamoDBAPI {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if svc, ok := ds.clients[region]; ok {
		return svc
	}

	svc := ds.factory(region)
	ds.clients[region] = svc

	return svc
}
