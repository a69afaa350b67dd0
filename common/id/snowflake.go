package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node used for request ids.
// Only the first call takes effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	if err != nil {
		return fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return nil
}

// NewRequestID returns a time-ordered id for correlating one request's logs.
// It panics if Init has not succeeded.
func NewRequestID() string {
	if node == nil {
		panic("id: Init must be called before NewRequestID")
	}
	return node.Generate().String()
}
