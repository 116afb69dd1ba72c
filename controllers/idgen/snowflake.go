package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("failed to init snowflake node: %v", err)
	}
}

// NextID returns a new snowflake ID as a string, used for collision-free
// upload filenames.
func NextID() string {
	return node.Generate().String()
}
