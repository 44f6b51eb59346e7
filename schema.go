package bitfield

import (
	_ "embed"
	"fmt"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/node/bindnode"
	"github.com/ipld/go-ipld-prime/schema"
)

var (
	//go:embed layout.ipldsch
	schemaBytes []byte

	layoutType      schema.Type
	LayoutPrototype schema.TypedPrototype
)

func init() {
	ts, err := ipld.LoadSchemaBytes(schemaBytes)
	if err != nil {
		panic(fmt.Errorf("failed to load schema: %w", err))
	}
	layoutType = ts.TypeByName("Layout")
	LayoutPrototype = bindnode.Prototype((*Layout)(nil), layoutType)
}
