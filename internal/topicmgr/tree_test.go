package topicmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Node {
	return Branch("root",
		Branch("system", Leaf("ping", "command.ping")),
		Branch("tables",
			Leaf("list", "command.list_tables"),
			Leaf("get", "command.get_table"),
		),
	)
}

func TestNode_Leaves(t *testing.T) {
	leaves := sampleTree().Leaves()

	assert.Equal(t, 3, leaves.Len())
	assert.True(t, leaves.Has("command.get_table"))
	assert.False(t, leaves.Has("tables"), "grouping keys are not leaves")
	assert.Equal(t, []string{"command.get_table", "command.list_tables", "command.ping"}, leaves.Sorted())
}

func TestNode_LeavesDedupesByValue(t *testing.T) {
	tree := Branch("root",
		Branch("a", Leaf("x", "same.value")),
		Branch("b", Leaf("y", "same.value")),
	)

	assert.Equal(t, 1, tree.Leaves().Len())
	assert.Equal(t, 2, tree.LeafCount())
}

func TestNode_WalkPaths(t *testing.T) {
	var paths [][]string
	var values []string
	sampleTree().Walk(func(path []string, value string) {
		paths = append(paths, path)
		values = append(values, value)
	})

	assert.Equal(t, [][]string{{"system", "ping"}, {"tables", "list"}, {"tables", "get"}}, paths)
	assert.Equal(t, []string{"command.ping", "command.list_tables", "command.get_table"}, values)
}

func TestNode_Lookup(t *testing.T) {
	tree := sampleTree()

	node, ok := tree.Lookup("tables", "get")
	require.True(t, ok)
	assert.True(t, node.IsLeaf())
	assert.Equal(t, "command.get_table", node.Value())

	_, ok = tree.Lookup("tables", "delete")
	assert.False(t, ok)

	_, ok = tree.Lookup("system", "ping", "deeper")
	assert.False(t, ok, "leaves have no children")

	assert.Equal(t, []string{"system", "tables"}, tree.Keys())
}

func TestBranch_PanicsOnDuplicateKey(t *testing.T) {
	assert.Panics(t, func() {
		Branch("root", Leaf("a", "x"), Leaf("a", "y"))
	})
}
