package graph

import (
	"fmt"

	"github.com/pfdlens/pfdlens/internal/model"
)

// Node and Edge follow the vis-network dataset shape so the payload can be
// handed to the frontend as-is.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
}

type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Title string `json:"title"`
}

type Network struct {
	Nodes   []Node `json:"nodes"`
	Edges   []Edge `json:"edges"`
	Physics bool   `json:"physics"`
}

// Build turns an extraction result into an undirected node-link graph: one
// node per equipment instance, one edge per connection. Edge endpoints are
// taken from the connection record as-is; a dangling id passes through to the
// rendering layer untouched.
func Build(result *model.ExtractionResult) *Network {
	net := &Network{
		Nodes:   make([]Node, 0, len(result.Equipment)),
		Edges:   make([]Edge, 0, len(result.Connections)),
		Physics: true,
	}
	for _, eq := range result.Equipment {
		label := fmt.Sprintf("%s: %s", eq.ID, eq.Type)
		net.Nodes = append(net.Nodes, Node{ID: eq.ID, Label: label, Title: label})
	}
	for _, conn := range result.Connections {
		net.Edges = append(net.Edges, Edge{
			From:  conn.FromID,
			To:    conn.ToID,
			Title: fmt.Sprintf("%s to %s", conn.FromType, conn.ToType),
		})
	}
	return net
}
